// Package gravatar derives default avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"strings"
)

// URL returns the Gravatar URL for an email: 200px, PG rated, with the
// "mystery man" fallback for addresses without a registered image.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	q := url.Values{}
	q.Set("s", "200")
	q.Set("r", "pg")
	q.Set("d", "mm")
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?%s", hash, q.Encode())
}
