package qualification

import (
	"reflect"
	"regexp"
	"strings"

	"travelhub/models"

	"github.com/go-playground/validator/v10"
)

// SubmitInput is the provider qualification application as received from the
// client. Validation is field-keyed and exhaustive, one pass collects every
// violation.
type SubmitInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone10"`

	BusinessName    string `json:"business_name" validate:"required"`
	BusinessAddress string `json:"business_address" validate:"required"`
	BusinessCity    string `json:"business_city" validate:"required"`
	BusinessState   string `json:"business_state" validate:"required"`
	BusinessZip     string `json:"business_zip" validate:"required,zipcode"`
	BusinessPhone   string `json:"business_phone" validate:"required,phone10"`
	BusinessEmail   string `json:"business_email" validate:"required,email"`
	BusinessWebsite string `json:"business_website" validate:"omitempty,website"`

	RegistrationNumber string `json:"registration_number" validate:"required,min=5"`
	LicenseNumber      string `json:"license_number" validate:"required,min=3"`
	TaxID              string `json:"tax_id" validate:"required,taxid"`

	ProviderType   string  `json:"provider_type" validate:"required,servicetype"`
	ServiceDetails string  `json:"service_details" validate:"required"`
	Experience     float64 `json:"experience" validate:"required,gt=0"`
	AdditionalInfo string  `json:"additional_info"`
}

var (
	nonDigits      = regexp.MustCompile(`\D`)
	zipPattern     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	taxIDPattern   = regexp.MustCompile(`^\d{9,12}$`)
	websitePattern = regexp.MustCompile(`^https?://.+`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Phones are accepted in any formatting as long as they carry 10 digits.
	v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		digits := nonDigits.ReplaceAllString(fl.Field().String(), "")
		return len(digits) == 10
	})
	v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("taxid", func(fl validator.FieldLevel) bool {
		return taxIDPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("website", func(fl validator.FieldLevel) bool {
		return websitePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("servicetype", func(fl validator.FieldLevel) bool {
		return models.IsValidServiceType(fl.Field().String())
	})
	return v
}

// validateSubmitInput runs the full pass and maps each violation to a message
// keyed by the field's json name.
func validateSubmitInput(v *validator.Validate, input *SubmitInput) *ValidationError {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: map[string]string{"request": err.Error()}}
	}

	fields := make(map[string]string, len(violations))
	for _, violation := range violations {
		fields[violation.Field()] = messageFor(violation)
	}
	return &ValidationError{Fields: fields}
}

func messageFor(v validator.FieldError) string {
	switch v.Tag() {
	case "required", "gt":
		switch v.Field() {
		case "experience":
			return "Experience must be greater than zero"
		default:
			return "This field is required"
		}
	case "email":
		return "Must be a valid email address"
	case "phone10":
		return "Must be a 10-digit phone number"
	case "zipcode":
		return "Must be a valid zip code"
	case "taxid":
		return "Must be 9 to 12 digits"
	case "website":
		return "Must start with http:// or https://"
	case "servicetype":
		return "Unknown provider type"
	case "min":
		return "Must be at least " + v.Param() + " characters"
	default:
		return "Invalid value"
	}
}
