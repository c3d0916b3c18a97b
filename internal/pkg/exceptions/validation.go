package exceptions

import (
	"errors"
	"healthagent-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	fieldName := firstErr.Field()
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}

// FormatIntakeValidationErrors keeps the first failing rule of every field and maps it to
// the form message. Fields are keyed by their JSON name.
func FormatIntakeValidationErrors(err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fields
	}

	for _, fieldErr := range validationErrors {
		fieldName := fieldErr.Field()
		if _, exists := fields[fieldName]; exists {
			continue
		}
		messages, ok := constvars.IntakeValidationErrorMessages[fieldName]
		if !ok {
			continue
		}
		message, ok := messages[fieldErr.Tag()]
		if !ok {
			message = messages["required"]
		}
		fields[fieldName] = message
	}
	return fields
}
