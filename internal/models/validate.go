package models

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,80}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateUsername reports whether username is 3 to 80 letters, digits or underscores.
func ValidateUsername(username string) bool {
	return validate.Var(username, "required,username") == nil
}

// ValidateEmail reports whether email is a syntactically valid address.
func ValidateEmail(email string) bool {
	return validate.Var(email, "required,email,max=120") == nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateContent trims content and checks its length in runes.
func ValidateContent(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)
	n := utf8.RuneCountInString(trimmed)
	return trimmed, n >= MinContentLength && n <= MaxContentLength
}

// ValidateCategory trims an optional category. Empty is valid and yields nil.
func ValidateCategory(category string) (*string, bool) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return nil, true
	}
	if utf8.RuneCountInString(trimmed) > MaxCategoryLength {
		return nil, false
	}
	return &trimmed, true
}

// ValidScore reports whether score lies in [0, 1].
func ValidScore(score float64) bool {
	return score >= 0 && score <= 1
}
