// Package validate holds the client-side checks run before any form is
// submitted. A failed check is an *AlertError whose Message is shown to the
// user as a blocking alert; no request is sent.
package validate

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

// Alert texts.
const (
	MsgRequiredFields   = "Please fill all required fields."
	MsgInvalidEmail     = "You have entered an invalid email address."
	MsgPasswordMismatch = "Password doesn't match."
	MsgNothingToApply   = "No changes to apply."
	MsgInvalidUserID    = "Invalid user id."
)

var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// AlertError is a validation failure. Cause, when set, is the underlying
// ozzo-validation error.
type AlertError struct {
	Message string
	Cause   error
}

func (e *AlertError) Error() string { return e.Message }

func (e *AlertError) Unwrap() error { return e.Cause }

func alert(msg string, cause error) error {
	return &AlertError{Message: msg, Cause: cause}
}

// IsAlert reports whether err is a validation failure and returns its text.
func IsAlert(err error) (string, bool) {
	var ae *AlertError
	if errors.As(err, &ae) {
		return ae.Message, true
	}
	return "", false
}

// Required fails with MsgRequiredFields if any value in fields is empty.
func Required(fields map[string]string) error {
	rules := validation.Errors{}
	for name, value := range fields {
		rules[name] = validation.Validate(value, validation.Required)
	}
	if err := rules.Filter(); err != nil {
		return alert(MsgRequiredFields, err)
	}
	return nil
}

// Email fails with MsgInvalidEmail unless value looks like an address.
// Matching is case-insensitive.
func Email(value string) error {
	err := validation.Validate(strings.ToLower(value), validation.Required, validation.Match(emailPattern))
	if err != nil {
		return alert(MsgInvalidEmail, err)
	}
	return nil
}

// UserID fails with MsgInvalidUserID unless id is a UUID.
func UserID(id string) error {
	err := validation.Validate(id, validation.Required, validation.By(func(v interface{}) error {
		s, _ := v.(string)
		_, err := uuid.Parse(s)
		return err
	}))
	if err != nil {
		return alert(MsgInvalidUserID, err)
	}
	return nil
}
