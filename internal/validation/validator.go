// Package validation checks request payloads before they reach the store.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/portfolio/backend/internal/model"
)

const (
	MsgContactRequired    = "Name, email, subject, and message are required"
	MsgInvalidEmail       = "Invalid email format"
	MsgProjectRequired    = "Title, description, and technologies are required"
	MsgExperienceRequired = "Title, company, location, start_date, end_date, and description are required"
	MsgBlankUpdate        = "Updated fields cannot be empty"
)

// emailPattern is a minimal syntactic check: something@something.something
// with no whitespace and a single @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error reports an invalid payload. Fields lists the offending JSON field names.
type Error struct {
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// tagMessages maps a format tag to the message reported when it fails.
var tagMessages = map[string]string{
	"contactemail": MsgInvalidEmail,
}

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the notblank and contactemail tags registered.
// Field errors are reported by JSON name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("contactemail", contactEmail)
	return &Validator{v: v}
}

// IsValidEmail reports whether s passes the contact email check.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Contact validates a contact submission. Missing fields are reported before
// a malformed email.
func (v *Validator) Contact(in model.ContactInput) error {
	return v.check(in, MsgContactRequired)
}

// MissingContactFields returns the required contact fields that are absent
// or blank, in declaration order.
func (v *Validator) MissingContactFields(in model.ContactInput) []string {
	var verr *Error
	if errors.As(v.Contact(in), &verr) && verr.Message == MsgContactRequired {
		return verr.Fields
	}
	return nil
}

func (v *Validator) Project(in model.ProjectInput) error {
	return v.check(in, MsgProjectRequired)
}

func (v *Validator) Experience(in model.ExperienceInput) error {
	return v.check(in, MsgExperienceRequired)
}

// ProjectPatch rejects supplied fields that are blank.
func (v *Validator) ProjectPatch(p model.ProjectPatch) error {
	return v.check(p, MsgBlankUpdate)
}

func (v *Validator) ExperiencePatch(p model.ExperiencePatch) error {
	return v.check(p, MsgBlankUpdate)
}

func (v *Validator) check(s any, requiredMsg string) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	var missing []string
	var malformed *Error
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "notblank", "required":
			missing = append(missing, fe.Field())
		default:
			if malformed == nil {
				msg, ok := tagMessages[fe.Tag()]
				if !ok {
					msg = fmt.Sprintf("Invalid %s", fe.Field())
				}
				malformed = &Error{Message: msg, Fields: []string{fe.Field()}}
			}
		}
	}
	if len(missing) > 0 {
		return &Error{Message: requiredMsg, Fields: missing}
	}
	return malformed
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func contactEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
