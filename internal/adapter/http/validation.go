package http

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strings"

	"masar-mortgage/internal/domain/mortgage"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Rule    string       `json:"rule,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

var reBankID = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("bankid", func(fl validator.FieldLevel) bool {
		return reBankID.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("sector", func(fl validator.FieldLevel) bool {
		return mortgage.EmploymentSector(strings.ToLower(strings.TrimSpace(fl.Field().String()))).Valid()
	})
	_ = v.RegisterValidation("proptype", func(fl validator.FieldLevel) bool {
		_, ok := mortgage.ParsePropertyType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("propstate", func(fl validator.FieldLevel) bool {
		return mortgage.PropertyState(strings.ToLower(strings.TrimSpace(fl.Field().String()))).Valid()
	})
	// finite and at most 2 decimal places
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "bankid":
			out = append(out, FieldError{Field: field, Message: "must be a lowercase bank id"})
		case "sector":
			out = append(out, FieldError{Field: field, Message: "must be one of government, military, private, retired"})
		case "proptype":
			out = append(out, FieldError{Field: field, Message: "must be one of apartment, villa, townhouse, land"})
		case "propstate":
			out = append(out, FieldError{Field: field, Message: "must be one of ready, offplan, selfbuild"})
		case "money":
			out = append(out, FieldError{Field: field, Message: "must be a finite amount with at most 2 decimal places"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of " + e.Param()})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte", "min":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte", "max":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
