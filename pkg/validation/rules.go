package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed check reported back to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	alphaSpaceRe      = regexp.MustCompile(`^[A-Za-z\s]+$`)
	digitsRe          = regexp.MustCompile(`^[0-9]+$`)
	passwordCharsetRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
)

// check pairs a validator tag with the message reported when it fails.
type check struct {
	tag string
	msg string
}

// chain is an ordered list of checks over one request field.
// Every check runs; failures are collected, not short-circuited.
type chain struct {
	field  string
	trim   bool
	checks []check
}

var (
	nameChain = chain{
		field: "name",
		checks: []check{
			{"required", "Name is required"},
			{"min=2,max=50", "Name must be between 2 and 50 characters"},
			{"alphaspace", "Name must contain only letters and spaces"},
		},
	}
	emailChain = chain{
		field: "email",
		trim:  true,
		checks: []check{
			{"email", "Please enter valid email"},
		},
	}
	passwordChain = chain{
		field: "password",
		checks: []check{
			{"required", "Password is required"},
			{"min=8", "Password must be at least 8 characters long"},
			{"strongpwd", "Password must contain at least one uppercase letter, one lowercase letter, one digit, and one special character"},
		},
	}
	phoneChain = chain{
		field: "phone",
		checks: []check{
			{"required", "Phone number is required"},
			{"digits", "Phone number must contain only numeric characters"},
			{"len=10", "Phone number must be 10 digits"},
		},
	}
	idQueryChain = chain{
		field: "id",
		checks: []check{
			{"required", "Id is Required..."},
		},
	}
)

// Validator evaluates the per-field rule chains used by the HTTP layer.
type Validator struct {
	v *validator.Validate
}

// New builds the validator and registers the custom tags the chains rely on.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("alphaspace", matches(alphaSpaceRe))
	_ = v.RegisterValidation("digits", matches(digitsRe))
	_ = v.RegisterValidation("strongpwd", strongPassword)
	return &Validator{v: v}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// strongPassword requires one lowercase letter, one uppercase letter, one
// digit and one symbol from @$!%*?&, with no characters outside that alphabet.
func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return passwordCharsetRe.MatchString(s) &&
		strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") &&
		strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
		strings.ContainsAny(s, "0123456789") &&
		strings.ContainsAny(s, "@$!%*?&")
}

func (vd *Validator) run(c chain, value string) []FieldError {
	if c.trim {
		value = strings.TrimSpace(value)
	}
	var errs []FieldError
	for _, ck := range c.checks {
		if err := vd.v.Var(value, ck.tag); err != nil {
			errs = append(errs, FieldError{Field: c.field, Message: ck.msg})
		}
	}
	return errs
}

// Name validates a user name: required, 2-50 characters, letters and spaces only.
func (vd *Validator) Name(value string) []FieldError { return vd.run(nameChain, value) }

// Email validates email syntax after trimming surrounding whitespace.
func (vd *Validator) Email(value string) []FieldError { return vd.run(emailChain, value) }

// Password validates length and required character classes.
func (vd *Validator) Password(value string) []FieldError { return vd.run(passwordChain, value) }

// Phone validates a 10 digit numeric phone number.
func (vd *Validator) Phone(value string) []FieldError { return vd.run(phoneChain, value) }

// IDQuery validates the id query parameter used by the query-based lookup.
func (vd *Validator) IDQuery(value string) []FieldError { return vd.run(idQueryChain, value) }

// Collect flattens per-field results into one ordered error list.
func Collect(groups ...[]FieldError) []FieldError {
	var errs []FieldError
	for _, g := range groups {
		errs = append(errs, g...)
	}
	return errs
}
