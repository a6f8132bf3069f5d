package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("dateformat", validateDateFormat)
	v.RegisterValidation("timeformat", validateTimeFormat)
	v.RegisterValidation("priority", validatePriority)
	v.RegisterValidation("iconname", validateIconName)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #FF3B30", field)
	case "dateformat":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", field)
	case "timeformat":
		return fmt.Sprintf("%s must be in HH:MM format", field)
	case "priority":
		return fmt.Sprintf("%s must be one of: None, Low, Medium, High", field)
	case "iconname":
		return fmt.Sprintf("%s contains invalid characters (only lowercase letters, numbers, and - are allowed)", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateDateFormat validates YYYY-MM-DD format
func validateDateFormat(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return datePattern.MatchString(date)
}

// validateTimeFormat validates 24h HH:MM format
func validateTimeFormat(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	timePattern := regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	return timePattern.MatchString(t)
}

// validatePriority validates reminder priority levels
func validatePriority(fl validator.FieldLevel) bool {
	priority := fl.Field().String()
	validPriorities := map[string]bool{
		"None":   true,
		"Low":    true,
		"Medium": true,
		"High":   true,
	}
	return validPriorities[priority]
}

// validateIconName validates glyph identifiers like "list-bulleted"
func validateIconName(fl validator.FieldLevel) bool {
	icon := fl.Field().String()
	validIcon := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	return validIcon.MatchString(icon)
}
