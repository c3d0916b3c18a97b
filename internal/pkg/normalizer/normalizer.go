package normalizer

import (
	"fmt"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/constvars"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

type Normalizer struct {
	fields FieldMap
}

func New(fields FieldMap) *Normalizer {
	return &Normalizer{fields: fields}
}

var defaultNormalizer = New(DefaultFieldMap())

// Normalize reshapes a raw analysis response with the default field map.
func Normalize(raw []byte) *models.AnalysisResult {
	return defaultNormalizer.Normalize(raw)
}

// Normalize never fails. Malformed JSON, missing sections and wrongly typed values all
// come out as empty slices, zero counts or "Unknown".
func (n *Normalizer) Normalize(raw []byte) *models.AnalysisResult {
	var root gjson.Result
	if gjson.ValidBytes(raw) {
		root = gjson.ParseBytes(raw)
	}
	if !root.IsObject() {
		root = gjson.Result{}
	}
	if n.fields.Root != "" {
		if nested := root.Get(n.fields.Root); nested.IsObject() {
			root = nested
		}
	}

	medical := records(root, n.fields.Medical.Records)
	pharmacy := records(root, n.fields.Pharmacy.Records)
	diagnosisMeanings := meanings(root, n.fields.Medical.DiagnosisMeanings)
	serviceMeanings := meanings(root, n.fields.Medical.ServiceMeanings)
	ndcMeanings := meanings(root, n.fields.Pharmacy.NDCMeanings)
	medicationMeanings := meanings(root, n.fields.Pharmacy.MedicationMeanings)

	result := &models.AnalysisResult{
		ICD10Data:        n.diagnosisRecords(medical, diagnosisMeanings),
		ServiceCodeData:  n.serviceCodeRecords(medical, serviceMeanings),
		NDCData:          n.ndcRecords(pharmacy, ndcMeanings),
		MedicationData:   n.medicationRecords(pharmacy, medicationMeanings),
		Entities:         n.entities(root),
		HealthTrajectory: n.healthTrajectory(root),
		HeartRisk:        n.heartRisk(root),
	}
	result.HealthMetrics = HealthMetrics(result.Entities)
	result.EntityRiskLevel = EntityRiskLevel(result.Entities)
	result.ExtractionSummary = models.ExtractionSummary{
		TotalRecords:    count(root, n.fields.Medical.TotalRecords),
		ServiceCodes:    countServiceCodes(result.ServiceCodeData),
		DiagnosisCodes:  len(diagnosisMeanings),
		UniqueProviders: distinct(medical, n.fields.Medical.Provider),
	}
	result.PharmacySummary = models.PharmacySummary{
		TotalRecords:      count(root, n.fields.Pharmacy.TotalRecords),
		NDCCodes:          len(ndcMeanings),
		MedicationCodes:   len(medicationMeanings),
		UniquePrescribers: distinct(pharmacy, n.fields.Pharmacy.PrescribingProvider),
	}
	return result
}

func recordPath(record gjson.Result, dataPathField, label string, index int) string {
	if path := text(record, dataPathField); path != "" {
		return path
	}
	return fmt.Sprintf("%s[%d]", label, index)
}

// diagnosisRecords emits one record per code in each claim's delimited code list. Position is
// the 1-based index in the split list, so skipped blanks leave gaps.
func (n *Normalizer) diagnosisRecords(claims []gjson.Result, lookup map[string]string) []models.ICD10Record {
	fields := n.fields.Medical
	out := make([]models.ICD10Record, 0)
	for i, claim := range claims {
		date := text(claim, fields.ClaimDate)
		provider := text(claim, fields.Provider)
		zip := text(claim, fields.ProviderZip)
		source := text(claim, fields.Source)
		path := recordPath(claim, fields.DataPath, fields.RecordsLabel, i)

		for position, token := range codeList(claim, fields.DiagnosisCodes) {
			code := strings.TrimSpace(token)
			if code == "" {
				continue
			}
			out = append(out, models.ICD10Record{
				Code:     code,
				Meaning:  lookup[code],
				Date:     date,
				Provider: provider,
				Zip:      zip,
				Position: position + 1,
				Source:   source,
				Path:     path,
			})
		}
	}
	return out
}

func (n *Normalizer) serviceCodeRecords(claims []gjson.Result, lookup map[string]string) []models.ServiceCodeRecord {
	fields := n.fields.Medical
	out := make([]models.ServiceCodeRecord, 0)
	for i, claim := range claims {
		path := recordPath(claim, fields.DataPath, fields.RecordsLabel, i)
		for _, line := range records(claim, fields.ClaimLines) {
			code := text(line, fields.LineServiceCode)
			out = append(out, models.ServiceCodeRecord{
				ServiceCode:        code,
				ServiceDescription: lookup[code],
				Date:               text(line, fields.LineEndDate),
				Path:               path,
			})
		}
	}
	return out
}

func (n *Normalizer) ndcRecords(claims []gjson.Result, lookup map[string]string) []models.NDCRecord {
	fields := n.fields.Pharmacy
	out := make([]models.NDCRecord, 0, len(claims))
	for i, claim := range claims {
		code := text(claim, fields.NDC)
		out = append(out, models.NDCRecord{
			Code:        code,
			Label:       text(claim, fields.Label),
			FillDate:    text(claim, fields.FillDate),
			Description: lookup[code],
			Path:        recordPath(claim, fields.DataPath, fields.RecordsLabel, i),
		})
	}
	return out
}

// medicationRecords is a second view over the pharmacy claims. Medication meanings are keyed by
// drug label; the NDC code is tried when the label has no entry.
func (n *Normalizer) medicationRecords(claims []gjson.Result, lookup map[string]string) []models.MedicationRecord {
	fields := n.fields.Pharmacy
	out := make([]models.MedicationRecord, 0, len(claims))
	for i, claim := range claims {
		code := text(claim, fields.NDC)
		label := text(claim, fields.Label)
		description, ok := lookup[label]
		if !ok {
			description = lookup[code]
		}
		out = append(out, models.MedicationRecord{
			Code:                code,
			Label:               label,
			FillDate:            text(claim, fields.FillDate),
			Description:         description,
			BillingProvider:     text(claim, fields.BillingProvider),
			PrescribingProvider: text(claim, fields.PrescribingProvider),
			Path:                recordPath(claim, fields.DataPath, fields.RecordsLabel, i),
		})
	}
	return out
}

func (n *Normalizer) entities(root gjson.Result) []models.Entity {
	fields := n.fields.Entities
	object := root.Get(fields.Object)
	if !object.IsObject() {
		object = gjson.Result{}
	}

	out := []models.Entity{
		{Type: EntityDiabetes, Value: textOr(object, fields.Diabetes, constvars.UnknownValue)},
	}
	if age := text(object, fields.Age); age != "" {
		out = append(out, models.Entity{Type: EntityAge, Value: age})
	}
	return append(out,
		models.Entity{Type: EntityAgeGroup, Value: textOr(object, fields.AgeGroup, constvars.UnknownValue)},
		models.Entity{Type: EntitySmoking, Value: textOr(object, fields.Smoking, constvars.UnknownValue)},
		models.Entity{Type: EntityAlcohol, Value: textOr(object, fields.Alcohol, constvars.UnknownValue)},
		models.Entity{Type: EntityBloodPressure, Value: textOr(object, fields.BloodPressure, constvars.UnknownValue)},
	)
}

func (n *Normalizer) healthTrajectory(root gjson.Result) models.HealthTrajectory {
	fields := n.fields.Trajectory
	trajectory := models.HealthTrajectory{Entries: make([]models.TrajectoryEntry, 0)}

	value := root.Get(fields.Path)
	switch {
	case value.Type == gjson.String:
		trajectory.Narrative = value.Str
	case value.IsArray():
		for _, entry := range value.Array() {
			if !entry.IsObject() {
				continue
			}
			trajectory.Entries = append(trajectory.Entries, models.TrajectoryEntry{
				Date:    text(entry, fields.Date),
				Summary: text(entry, fields.Summary),
				Details: entry.Get(fields.Details).String(),
			})
		}
	}
	return trajectory
}

func (n *Normalizer) heartRisk(root gjson.Result) models.HeartRisk {
	risk := models.HeartRisk{
		Level: textOr(root, n.fields.Risk.Level, constvars.UnknownValue),
	}
	if raw, ok := fraction(root, n.fields.Risk.Score); ok && !math.IsNaN(raw) {
		score := math.Round(raw * 100)
		risk.Score = int(math.Max(0, math.Min(100, score)))
	}
	return risk
}

func countServiceCodes(lines []models.ServiceCodeRecord) int {
	total := 0
	for _, line := range lines {
		if line.ServiceCode != "" {
			total++
		}
	}
	return total
}

func distinct(claims []gjson.Result, field string) int {
	seen := make(map[string]struct{})
	for _, claim := range claims {
		if name := text(claim, field); name != "" {
			seen[name] = struct{}{}
		}
	}
	return len(seen)
}
