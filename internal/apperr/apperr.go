// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP handlers, plus the single place where errors become responses.
package apperr

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInternal
)

// Error is a classified application error. Messages is used by validation
// errors that report every violated field; Message covers everything else.
type Error struct {
	Kind     Kind
	Message  string
	Messages []string
	Status   int // optional HTTP status override
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports one or more violated fields, one message per field.
func Validation(msgs ...string) *Error {
	return &Error{Kind: KindValidation, Message: msgs[0], Messages: msgs}
}

// BadRequest is a 400 with a single {"msg":...} body, used for contract
// violations that are not field-level validation (already liked, not liked).
func BadRequest(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NotFound defaults to 404; callers that must keep the historical 400
// mapping (profile lookups) pass an explicit status.
func NotFound(msg string, status ...int) *Error {
	e := &Error{Kind: KindNotFound, Message: msg}
	if len(status) > 0 {
		e.Status = status[0]
	}
	return e
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Server Error", Err: err}
}

func (e *Error) httpStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		// The platform has always answered 401 here, not 403.
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err in the contract shape: validation failures as
// {"errors":[{"msg":...}]}, everything else as {"msg":...}. Unclassified
// errors are logged and masked as a generic server error.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}
	if appErr.Kind == KindInternal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}
	if appErr.Kind == KindValidation && len(appErr.Messages) > 0 {
		list := make([]gin.H, 0, len(appErr.Messages))
		for _, m := range appErr.Messages {
			list = append(list, gin.H{"msg": m})
		}
		c.JSON(appErr.httpStatus(), gin.H{"errors": list})
		return
	}
	c.JSON(appErr.httpStatus(), gin.H{"msg": appErr.Message})
}
