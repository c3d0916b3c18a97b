package normalizer

import (
	"fmt"
	"healthagent-service/internal/app/models"
	"strings"
)

const (
	EntityDiabetes      = "Diabetes Status"
	EntityAge           = "Age"
	EntityAgeGroup      = "Age Group"
	EntitySmoking       = "Smoking Status"
	EntityAlcohol       = "Alcohol Use"
	EntityBloodPressure = "Blood Pressure"
)

const (
	MetricStatusPositive = "positive"
	MetricStatusNegative = "negative"
	MetricStatusWarning  = "warning"
	MetricStatusNeutral  = "neutral"
)

const (
	RiskLevelLow      = "Low Risk"
	RiskLevelModerate = "Moderate Risk"
	RiskLevelHigh     = "High Risk"
)

func entityLookup(entities []models.Entity) map[string]string {
	lookup := make(map[string]string, len(entities))
	for _, entity := range entities {
		lookup[entity.Type] = strings.ToLower(strings.TrimSpace(entity.Value))
	}
	return lookup
}

func isUnknown(value string) bool {
	return value == "" || value == "unknown"
}

// HealthMetrics turns the entity list into dashboard cards. Unknown values are neutral.
func HealthMetrics(entities []models.Entity) []models.HealthMetric {
	lookup := entityLookup(entities)

	yesNoCard := func(id, label, entityType, badStatus, goodText, badText string) models.HealthMetric {
		value := lookup[entityType]
		card := models.HealthMetric{ID: id, Label: label, Value: strings.ToUpper(value)}
		switch {
		case isUnknown(value):
			card.Value = strings.ToUpper(UnknownMetricValue)
			card.Status = MetricStatusNeutral
			card.Description = fmt.Sprintf("No %s information available", strings.ToLower(label))
		case value == "no":
			card.Status = MetricStatusPositive
			card.Description = goodText
		default:
			card.Status = badStatus
			card.Description = badText
		}
		return card
	}

	ageGroup := lookup[EntityAgeGroup]
	if isUnknown(ageGroup) {
		ageGroup = UnknownMetricValue
	}
	ageCard := models.HealthMetric{
		ID:          "age",
		Label:       EntityAgeGroup,
		Value:       strings.ToUpper(ageGroup),
		Status:      MetricStatusNeutral,
		Description: fmt.Sprintf("%s demographic classification", ageGroup),
	}
	if age, ok := lookup[EntityAge]; ok && !isUnknown(age) {
		ageCard.Value = fmt.Sprintf("%s (%s)", strings.ToUpper(ageGroup), age)
		ageCard.Description = fmt.Sprintf("%s demographic classification, age %s", ageGroup, age)
	}

	bloodPressure := lookup[EntityBloodPressure]
	bloodPressureCard := models.HealthMetric{
		ID:          "blood_pressure",
		Label:       EntityBloodPressure,
		Value:       strings.ToUpper(bloodPressure),
		Status:      MetricStatusPositive,
		Description: "Normal blood pressure",
	}
	switch {
	case isUnknown(bloodPressure):
		bloodPressureCard.Value = strings.ToUpper(UnknownMetricValue)
		bloodPressureCard.Status = MetricStatusNeutral
		bloodPressureCard.Description = "No blood pressure information available"
	case bloodPressure == "diagnosed":
		bloodPressureCard.Status = MetricStatusWarning
		bloodPressureCard.Description = "Hypertension under medical supervision"
	}

	return []models.HealthMetric{
		yesNoCard("diabetes", EntityDiabetes, EntityDiabetes, MetricStatusWarning,
			"No diabetes indicators detected", "Diabetes condition identified"),
		ageCard,
		yesNoCard("smoking", EntitySmoking, EntitySmoking, MetricStatusNegative,
			"Non-smoker profile confirmed", "Smoking habit identified"),
		yesNoCard("alcohol", "Alcohol Consumption", EntityAlcohol, MetricStatusWarning,
			"No alcohol consumption reported", "Alcohol consumption reported"),
		bloodPressureCard,
	}
}

const UnknownMetricValue = "unknown"

// EntityRiskLevel counts diabetes, smoking, alcohol and a diagnosed blood pressure as risk
// factors. Anything other than an explicit "no" counts.
func EntityRiskLevel(entities []models.Entity) string {
	lookup := entityLookup(entities)

	factors := 0
	for _, entityType := range []string{EntityDiabetes, EntitySmoking, EntityAlcohol} {
		if lookup[entityType] != "no" {
			factors++
		}
	}
	if lookup[EntityBloodPressure] == "diagnosed" {
		factors++
	}

	switch {
	case factors == 0:
		return RiskLevelLow
	case factors <= 2:
		return RiskLevelModerate
	default:
		return RiskLevelHigh
	}
}
