// Package validator validates request payloads with go-playground/validator
// and reports every failing field at once.
package validator

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
)

const passwordRuleMessage = "Password must be 8 to 25 characters long and contain at least one uppercase letter, one lowercase letter, one digit, and one special character"

var (
	engine       *validator.Validate
	engineOnce   sync.Once
	registerOnce sync.Once
)

// Engine returns the shared validator used by the service layer. Rules are
// read from `validate` struct tags and fields are reported by their JSON name.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.SetTagName("validate")
		engine.RegisterTagNameFunc(jsonFieldName)
		registerRules(engine)
	})
	return engine
}

// Register registers the custom rules with the Gin binding engine so that
// query and form binding can use them too. Calls after the first are no-ops.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerRules(v)
		}
	})
}

func registerRules(v *validator.Validate) {
	_ = v.RegisterValidation("investment_type", validateInvestmentType)
	_ = v.RegisterValidation("strong_password", validateStrongPassword)
	_ = v.RegisterValidation("future", validateFuture)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	switch models.InvestmentType(fl.Field().String()) {
	case models.InvestmentTypeBonds, models.InvestmentTypeCertificates:
		return true
	}
	return false
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if n := len([]rune(password)); n < 8 || n > 25 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func validateFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

// FieldError describes one failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string { return f.Field + ": " + f.Message }

// Result holds either a validated value or the list of field errors that
// prevented validation.
type Result[T any] struct {
	Value  T
	Errors []FieldError
}

// OK reports whether validation succeeded.
func (r Result[T]) OK() bool { return len(r.Errors) == 0 }

// Err returns nil on success, otherwise a BAD_REQUEST AppError whose message
// lists every field error.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	parts := make([]string, len(r.Errors))
	for i, fe := range r.Errors {
		parts[i] = fe.String()
	}
	return apperrors.WithMetaData(
		apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid data: "+strings.Join(parts, ", ")),
		r.Errors,
	)
}

// Normalizer is implemented by payloads that clean themselves up
// (trimming, lower-casing) before validation.
type Normalizer interface {
	Normalize()
}

// Validate normalizes and validates input.
func Validate[T any](input T) Result[T] {
	if n, ok := any(&input).(Normalizer); ok {
		n.Normalize()
	}

	err := Engine().Struct(input)
	if err == nil {
		return Result[T]{Value: input}
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return Result[T]{Value: input, Errors: []FieldError{{Field: "body", Message: err.Error()}}}
	}

	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, FieldError{Field: fieldPath(fe), Message: messageFor(fe)})
	}
	return Result[T]{Value: input, Errors: fieldErrs}
}

// fieldPath drops the struct name from the namespace, keeping nested paths
// such as bank[0].accountNumber.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid", "uuid4", "uuid7":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	case "investment_type":
		return fmt.Sprintf("must be one of %s, %s", models.InvestmentTypeBonds, models.InvestmentTypeCertificates)
	case "strong_password":
		return passwordRuleMessage
	case "future":
		return "must be a date in the future"
	case "nefield":
		return "cannot be equal to the " + lowerFirst(param)
	case "ltefield":
		return "must be less than or equal to " + lowerFirst(param)
	case "min", "gte":
		return lowerBoundMessage(fe.Kind(), param)
	case "max", "lte":
		return upperBoundMessage(fe.Kind(), param)
	case "gt":
		return "must be greater than " + param
	case "lt":
		return "must be less than " + param
	case "len":
		return "must have length " + param
	}
	return "failed on the " + fe.Tag() + " rule"
}

func lowerBoundMessage(kind reflect.Kind, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("must be at least %s characters", param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain at least %s item(s)", param)
	}
	return "must be greater than or equal to " + param
}

func upperBoundMessage(kind reflect.Kind, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("must be at most %s characters", param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain at most %s item(s)", param)
	}
	return "must be less than or equal to " + param
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// DecodeError turns a JSON decoding failure into a BAD_REQUEST that names
// the offending field.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperrors.WithMessagef(apperrors.ErrBadRequest, "Invalid data: %s: expected %s but received %s", field, typeErr.Type.String(), typeErr.Value)
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid data: body: malformed JSON")
	}

	var timeErr *time.ParseError
	if stderrors.As(err, &timeErr) {
		return apperrors.WithMessagef(apperrors.ErrBadRequest, "Invalid data: date %q is not a valid RFC 3339 timestamp", timeErr.Value)
	}

	return apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid data: "+err.Error())
}
