package response

import (
	"errors"
	"strings"
)

// Error is a domain failure that already knows its HTTP status and a
// machine-readable code.
type Error struct {
	Code int
	Key  string
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

// NewError derives Key from the message: "blog not found" -> "BLOG_NOT_FOUND".
func NewError(code int, err string) error {
	return &Error{Code: code, Key: toKey(err), Err: errors.New(err)}
}

func NewErrorWithKey(code int, key string, err string) error {
	return &Error{Code: code, Key: key, Err: errors.New(err)}
}

func toKey(msg string) string {
	return strings.ToUpper(strings.Join(strings.Fields(msg), "_"))
}
