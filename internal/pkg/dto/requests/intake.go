package requests

// PatientIntake is the identity form a user fills in before an analysis.
type PatientIntake struct {
	FirstName   string `json:"firstName" validate:"required,person_name"`
	LastName    string `json:"lastName" validate:"required,person_name"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,calendar_date,not_future_date,plausible_age"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female"`
	ZipCode     string `json:"zipCode" validate:"required,zip_code"`
	NationalID  string `json:"nationalId" validate:"required,national_id"`
}
