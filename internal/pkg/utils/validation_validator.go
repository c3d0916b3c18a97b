package utils

import (
	"context"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/exceptions"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	personNameRegex = regexp.MustCompile(constvars.RegexPersonName)
	usZIPCodeRegex  = regexp.MustCompile(constvars.RegexUSZIPCode)
	nationalIDRegex = regexp.MustCompile(constvars.RegexNationalID)
	dateISORegex    = regexp.MustCompile(constvars.RegexDateISO)
)

const maxPlausibleAge = 120

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("person_name", validatePersonName)
	validate.RegisterValidation("zip_code", validateUSZIPCode)
	validate.RegisterValidation("national_id", validateNationalID)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterValidationCtx("not_future_date", validateNotFutureDate)
	validate.RegisterValidationCtx("plausible_age", validatePlausibleAge)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateStructCtx(ctx context.Context, s interface{}) error {
	return validate.StructCtx(ctx, s)
}

// ValidateIntake checks a trimmed copy of the form against reference, which stands in for
// today. The result maps JSON field names to the first failing rule's message and is empty
// when the form may be submitted.
func ValidateIntake(intake *requests.PatientIntake, reference time.Time) map[string]string {
	if intake == nil {
		intake = &requests.PatientIntake{}
	}
	trimmed := *intake
	SanitizePatientIntake(&trimmed)

	ctx := WithReferenceDate(context.Background(), reference)
	err := validate.StructCtx(ctx, &trimmed)
	return exceptions.FormatIntakeValidationErrors(err)
}

func validatePersonName(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

func validateUSZIPCode(fl validator.FieldLevel) bool {
	return usZIPCodeRegex.MatchString(fl.Field().String())
}

func validateNationalID(fl validator.FieldLevel) bool {
	return nationalIDRegex.MatchString(fl.Field().String())
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateISORegex.MatchString(value) {
		return false
	}
	_, err := ParseCalendarDate(value, time.UTC)
	return err == nil
}

func birthAndReference(ctx context.Context, fl validator.FieldLevel) (time.Time, time.Time, bool) {
	reference := ReferenceDateFromContext(ctx)
	birth, err := ParseCalendarDate(fl.Field().String(), reference.Location())
	if err != nil {
		return time.Time{}, reference, false
	}
	return birth, reference, true
}

func validateNotFutureDate(ctx context.Context, fl validator.FieldLevel) bool {
	birth, reference, ok := birthAndReference(ctx, fl)
	if !ok {
		return false
	}
	return !birth.After(reference)
}

func validatePlausibleAge(ctx context.Context, fl validator.FieldLevel) bool {
	birth, reference, ok := birthAndReference(ctx, fl)
	if !ok {
		return false
	}
	age := AgeOn(birth, reference)
	return age >= 0 && age <= maxPlausibleAge
}
