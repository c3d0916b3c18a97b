package utils

import (
	"healthagent-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var referenceDay = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func validIntake() requests.PatientIntake {
	return requests.PatientIntake{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1960-01-01",
		Gender:      "Female",
		ZipCode:     "54305",
		NationalID:  "123456789",
	}
}

func TestValidateIntake_Valid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*requests.PatientIntake)
	}{
		{"baseline", func(*requests.PatientIntake) {}},
		{"hyphen and apostrophe", func(i *requests.PatientIntake) { i.LastName = "O'Neil-Smith" }},
		{"inner space", func(i *requests.PatientIntake) { i.FirstName = "Mary Ann" }},
		{"two characters", func(i *requests.PatientIntake) { i.FirstName = "Al" }},
		{"thirty characters", func(i *requests.PatientIntake) { i.LastName = "Abcdefghijabcdefghijabcdefghij" }},
		{"zip plus four", func(i *requests.PatientIntake) { i.ZipCode = "54305-1234" }},
		{"male", func(i *requests.PatientIntake) { i.Gender = "Male" }},
		{"surrounding whitespace", func(i *requests.PatientIntake) { i.FirstName = "  Jane  "; i.NationalID = " 123456789 " }},
		{"born today", func(i *requests.PatientIntake) { i.DateOfBirth = "2025-06-15" }},
		{"exactly 120", func(i *requests.PatientIntake) { i.DateOfBirth = "1905-06-15" }},
		{"120 with birthday tomorrow", func(i *requests.PatientIntake) { i.DateOfBirth = "1904-06-16" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intake := validIntake()
			tt.modify(&intake)
			assert.Empty(t, ValidateIntake(&intake, referenceDay))
		})
	}
}

func TestValidateIntake_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*requests.PatientIntake)
		field   string
		message string
	}{
		{"missing first name", func(i *requests.PatientIntake) { i.FirstName = "   " }, "firstName", "First name is required."},
		{"missing last name", func(i *requests.PatientIntake) { i.LastName = "" }, "lastName", "Last name is required."},
		{"name with digit", func(i *requests.PatientIntake) { i.FirstName = "J4ne" }, "firstName", "Only letters, spaces, apostrophes, hyphens. 2-30 chars."},
		{"name starting with hyphen", func(i *requests.PatientIntake) { i.LastName = "-Doe" }, "lastName", "Only letters, spaces, apostrophes, hyphens. 2-30 chars."},
		{"single character name", func(i *requests.PatientIntake) { i.FirstName = "J" }, "firstName", "Only letters, spaces, apostrophes, hyphens. 2-30 chars."},
		{"thirty one characters", func(i *requests.PatientIntake) { i.LastName = "Abcdefghijabcdefghijabcdefghijk" }, "lastName", "Only letters, spaces, apostrophes, hyphens. 2-30 chars."},
		{"missing date", func(i *requests.PatientIntake) { i.DateOfBirth = "" }, "dateOfBirth", "Date of birth is required."},
		{"unparseable date", func(i *requests.PatientIntake) { i.DateOfBirth = "01/01/1960" }, "dateOfBirth", "Invalid date."},
		{"impossible day", func(i *requests.PatientIntake) { i.DateOfBirth = "1999-02-30" }, "dateOfBirth", "Invalid date."},
		{"tomorrow", func(i *requests.PatientIntake) { i.DateOfBirth = "2025-06-16" }, "dateOfBirth", "Date cannot be in the future."},
		{"far future", func(i *requests.PatientIntake) { i.DateOfBirth = "2090-01-01" }, "dateOfBirth", "Date cannot be in the future."},
		{"older than 120", func(i *requests.PatientIntake) { i.DateOfBirth = "1904-06-15" }, "dateOfBirth", "Please enter a realistic date of birth."},
		{"missing gender", func(i *requests.PatientIntake) { i.Gender = "" }, "gender", "Please select a gender option."},
		{"unknown gender", func(i *requests.PatientIntake) { i.Gender = "Other" }, "gender", "Please select a gender option."},
		{"missing zip", func(i *requests.PatientIntake) { i.ZipCode = "" }, "zipCode", "Zip code is required."},
		{"short zip", func(i *requests.PatientIntake) { i.ZipCode = "5430" }, "zipCode", "Enter a valid US ZIP (12345 or 12345-6789)."},
		{"bad plus four", func(i *requests.PatientIntake) { i.ZipCode = "54305-12" }, "zipCode", "Enter a valid US ZIP (12345 or 12345-6789)."},
		{"missing ssn", func(i *requests.PatientIntake) { i.NationalID = "" }, "nationalId", "SSN is required."},
		{"eight digit ssn", func(i *requests.PatientIntake) { i.NationalID = "12345678" }, "nationalId", "SSN must be exactly 9 digits."},
		{"ten digit ssn", func(i *requests.PatientIntake) { i.NationalID = "1234567890" }, "nationalId", "SSN must be exactly 9 digits."},
		{"ssn with letters", func(i *requests.PatientIntake) { i.NationalID = "12345678a" }, "nationalId", "SSN must be exactly 9 digits."},
		{"dashed ssn", func(i *requests.PatientIntake) { i.NationalID = "123-45-6789" }, "nationalId", "SSN must be exactly 9 digits."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intake := validIntake()
			tt.modify(&intake)

			errs := ValidateIntake(&intake, referenceDay)

			assert.Equal(t, map[string]string{tt.field: tt.message}, errs)
		})
	}
}

func TestValidateIntake_EmptyForm(t *testing.T) {
	errs := ValidateIntake(&requests.PatientIntake{}, referenceDay)

	assert.Equal(t, map[string]string{
		"firstName":   "First name is required.",
		"lastName":    "Last name is required.",
		"dateOfBirth": "Date of birth is required.",
		"gender":      "Please select a gender option.",
		"zipCode":     "Zip code is required.",
		"nationalId":  "SSN is required.",
	}, errs)
}

func TestValidateIntake_DoesNotMutateInput(t *testing.T) {
	intake := validIntake()
	intake.FirstName = "  Jane  "

	ValidateIntake(&intake, referenceDay)

	assert.Equal(t, "  Jane  ", intake.FirstName)
}

func TestValidateIntake_Deterministic(t *testing.T) {
	intake := validIntake()
	intake.DateOfBirth = "2030-01-01"
	intake.ZipCode = "abc"

	assert.Equal(t, ValidateIntake(&intake, referenceDay), ValidateIntake(&intake, referenceDay))
}

func TestAgeOn(t *testing.T) {
	birth := time.Date(1960, time.March, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 64, AgeOn(birth, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 65, AgeOn(birth, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 64, AgeOn(birth, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)))
}
