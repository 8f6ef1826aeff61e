package auth

import (
	"errors"
	"time"

	"devconnect/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the JWT payload. It embeds RegisteredClaims so expiration
// and issuance metadata are centralized.
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is the only failure callers ever see: signature problems
// and expiry are deliberately indistinguishable to the client.
var ErrInvalidToken = errors.New("token is not valid")

// GenerateToken issues a signed identity token for the given user. Tokens
// are stateless and cannot be revoked; expiry is the only termination.
func GenerateToken(userID uint64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.GlobalConfig.JWT.Expire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GlobalConfig.JWT.Secret))
}

// ParseToken validates signature + expiry and returns the embedded claims.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GlobalConfig.JWT.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
