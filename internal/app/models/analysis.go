package models

type AnalysisResult struct {
	ICD10Data         []ICD10Record       `json:"icd10Data"`
	ServiceCodeData   []ServiceCodeRecord `json:"serviceCodeData"`
	NDCData           []NDCRecord         `json:"ndcData"`
	MedicationData    []MedicationRecord  `json:"medicationData"`
	Entities          []Entity            `json:"entities"`
	HealthMetrics     []HealthMetric      `json:"healthMetrics"`
	EntityRiskLevel   string              `json:"entityRiskLevel"`
	HealthTrajectory  HealthTrajectory    `json:"healthTrajectory"`
	HeartRisk         HeartRisk           `json:"heartRisk"`
	ExtractionSummary ExtractionSummary   `json:"extractionSummary"`
	PharmacySummary   PharmacySummary     `json:"pharmacySummary"`
}

type ICD10Record struct {
	Code     string `json:"code"`
	Meaning  string `json:"meaning"`
	Date     string `json:"date"`
	Provider string `json:"provider"`
	Zip      string `json:"zip"`
	Position int    `json:"position"`
	Source   string `json:"source"`
	Path     string `json:"path"`
}

type ServiceCodeRecord struct {
	ServiceCode        string `json:"serviceCode"`
	ServiceDescription string `json:"serviceDescription"`
	Date               string `json:"date"`
	Path               string `json:"path"`
}

type NDCRecord struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	FillDate    string `json:"fillDate"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

type MedicationRecord struct {
	Code                string `json:"code"`
	Label               string `json:"label"`
	FillDate            string `json:"fillDate"`
	Description         string `json:"description"`
	BillingProvider     string `json:"billingProvider"`
	PrescribingProvider string `json:"prescribingProvider"`
	Path                string `json:"path"`
}

type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type HealthMetric struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// HealthTrajectory is either a free-text narrative or a list of dated entries, depending on the backend revision.
type HealthTrajectory struct {
	Narrative string            `json:"narrative"`
	Entries   []TrajectoryEntry `json:"entries"`
}

type TrajectoryEntry struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
	Details string `json:"details"`
}

type HeartRisk struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

type ExtractionSummary struct {
	TotalRecords    int `json:"totalRecords"`
	ServiceCodes    int `json:"serviceCodes"`
	DiagnosisCodes  int `json:"diagnosisCodes"`
	UniqueProviders int `json:"uniqueProviders"`
}

type PharmacySummary struct {
	TotalRecords      int `json:"totalRecords"`
	NDCCodes          int `json:"ndcCodes"`
	MedicationCodes   int `json:"medicationCodes"`
	UniquePrescribers int `json:"uniquePrescribers"`
}
