package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"study-assistant/models"

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

var categoryNamePattern = regexp.MustCompile(`^[\p{L}\p{N}\s\-_.,&()/]+$`)

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
	v.RegisterValidation("categoryname", validateCategoryName)
	v.RegisterValidation("dateformat", validateDateFormat)
	v.RegisterValidation("timestamp", validateTimestamp)
	v.RegisterValidation("chatrole", validateChatRole)
	v.RegisterValidation("contenttype", validateContentType)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   fe.Field(),
			Message: msgForTag(fe),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
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
	case "categoryname":
		return fmt.Sprintf("%s contains invalid characters (only letters, numbers, spaces, and -_.,&()/ are allowed)", field)
	case "dateformat":
		return fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", field)
	case "timestamp":
		return fmt.Sprintf("%s must be in YYYY-MM-DD HH:MM:SS format", field)
	case "chatrole":
		return fmt.Sprintf("%s must be either 'user' or 'model'", field)
	case "contenttype":
		return fmt.Sprintf("%s must be one of: explain, summarize, practice_questions, quote, other", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateCategoryName allows letters (any language), numbers, spaces and a
// few separators.
func validateCategoryName(fl validator.FieldLevel) bool {
	return categoryNamePattern.MatchString(fl.Field().String())
}

// validateDateFormat validates YYYY-MM-DD and rejects impossible dates
func validateDateFormat(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

func validateTimestamp(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.TimestampLayout, fl.Field().String())
	return err == nil
}

func validateChatRole(fl validator.FieldLevel) bool {
	switch models.ChatRole(fl.Field().String()) {
	case models.ChatRoleUser, models.ChatRoleModel:
		return true
	}
	return false
}

func validateContentType(fl validator.FieldLevel) bool {
	switch models.ContentType(fl.Field().String()) {
	case models.ContentTypeExplain, models.ContentTypeSummarize, models.ContentTypePracticeQuestions,
		models.ContentTypeQuote, models.ContentTypeOther:
		return true
	}
	return false
}
