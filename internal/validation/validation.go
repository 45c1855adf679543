// Package validation holds the pure field validators applied to raw input
// before it reaches persistence.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/morisawa/ideapool/internal/constants"
)

// ErrInvalidInput is the base error every validator failure wraps, so
// callers can map any validation failure to a 400 with a single errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	ErrInvalidName      = fmt.Errorf("%w: invalid name", ErrInvalidInput)
	ErrInvalidContent   = fmt.Errorf("%w: invalid content", ErrInvalidInput)
	ErrPasswordTooShort = fmt.Errorf("%w: too short password", ErrInvalidInput)
	ErrInvalidScore     = fmt.Errorf("%w: expected integer parameter between 1 and 10", ErrInvalidInput)
)

var (
	emailPattern   = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	nameBanPattern = regexp.MustCompile(`[@_!#$%^&*()<>?/\\|}{~:]`)
)

// Email checks the local@domain.tld shape. The accepted grammar is
// deliberately narrow: word characters with optional single . or -
// separators, and a 2-3 letter suffix.
func Email(email string) (string, error) {
	if email == "" || !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Name requires more than 3 characters and bans punctuation that has no
// business in a display name.
func Name(name string) (string, error) {
	if len(name) <= 3 || nameBanPattern.MatchString(name) {
		return "", ErrInvalidName
	}
	return name, nil
}

// Content requires a length in (3, 255].
func Content(content string) (string, error) {
	if len(content) <= 3 || len(content) > 255 {
		return "", ErrInvalidContent
	}
	return content, nil
}

// Password requires more than 3 characters. No complexity rule.
func Password(password string) (string, error) {
	if len(password) <= 3 {
		return "", ErrPasswordTooShort
	}
	return password, nil
}

// Score checks an idea score is in [1, 10]. Parse failures on the wire are
// rejected earlier by JSON binding; this covers the range half.
func Score(value int) (int, error) {
	if value < constants.MinScore || value > constants.MaxScore {
		return 0, ErrInvalidScore
	}
	return value, nil
}
