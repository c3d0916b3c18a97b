package normalizer

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// FieldMap names every backend field the normalizer reads, as gjson paths. Record-level
// paths are relative to the record, everything else is relative to Root.
type FieldMap struct {
	Root       string           `yaml:"root"`
	Medical    MedicalFields    `yaml:"medical"`
	Pharmacy   PharmacyFields   `yaml:"pharmacy"`
	Entities   EntityFields     `yaml:"entities"`
	Trajectory TrajectoryFields `yaml:"trajectory"`
	Risk       RiskFields       `yaml:"risk"`
}

type MedicalFields struct {
	Records           string `yaml:"records"`
	RecordsLabel      string `yaml:"records_label"`
	ClaimDate         string `yaml:"claim_date"`
	Provider          string `yaml:"provider"`
	ProviderZip       string `yaml:"provider_zip"`
	DiagnosisCodes    string `yaml:"diagnosis_codes"`
	Source            string `yaml:"source"`
	DataPath          string `yaml:"data_path"`
	ClaimLines        string `yaml:"claim_lines"`
	LineServiceCode   string `yaml:"line_service_code"`
	LineEndDate       string `yaml:"line_end_date"`
	TotalRecords      string `yaml:"total_records"`
	DiagnosisMeanings string `yaml:"diagnosis_meanings"`
	ServiceMeanings   string `yaml:"service_meanings"`
}

type PharmacyFields struct {
	Records             string `yaml:"records"`
	RecordsLabel        string `yaml:"records_label"`
	NDC                 string `yaml:"ndc"`
	Label               string `yaml:"label"`
	FillDate            string `yaml:"fill_date"`
	BillingProvider     string `yaml:"billing_provider"`
	PrescribingProvider string `yaml:"prescribing_provider"`
	DataPath            string `yaml:"data_path"`
	TotalRecords        string `yaml:"total_records"`
	NDCMeanings         string `yaml:"ndc_meanings"`
	MedicationMeanings  string `yaml:"medication_meanings"`
}

type EntityFields struct {
	Object        string `yaml:"object"`
	Diabetes      string `yaml:"diabetes"`
	Age           string `yaml:"age"`
	AgeGroup      string `yaml:"age_group"`
	Smoking       string `yaml:"smoking"`
	Alcohol       string `yaml:"alcohol"`
	BloodPressure string `yaml:"blood_pressure"`
}

type TrajectoryFields struct {
	Path    string `yaml:"path"`
	Date    string `yaml:"date"`
	Summary string `yaml:"summary"`
	Details string `yaml:"details"`
}

type RiskFields struct {
	Score string `yaml:"score"`
	Level string `yaml:"level"`
}

func DefaultFieldMap() FieldMap {
	return FieldMap{
		Root: "analysis_results",
		Medical: MedicalFields{
			Records:           "structured_extractions.medical.hlth_srvc_records",
			RecordsLabel:      "medical_claims",
			ClaimDate:         "clm_rcvd_dt",
			Provider:          "billg_prov_nm",
			ProviderZip:       "billg_prov_zip_cd",
			DiagnosisCodes:    "diag_1_50_cd",
			Source:            "source_file",
			DataPath:          "data_path",
			ClaimLines:        "claim_lines",
			LineServiceCode:   "hlth_srvc_cd",
			LineEndDate:       "clm_line_srvc_end_dt",
			TotalRecords:      "structured_extractions.medical.extraction_summary.total_hlth_srvc_records",
			DiagnosisMeanings: "structured_extractions.medical.code_meanings.diagnosis_code_meanings",
			ServiceMeanings:   "structured_extractions.medical.code_meanings.service_code_meanings",
		},
		Pharmacy: PharmacyFields{
			Records:             "structured_extractions.pharmacy.ndc_records",
			RecordsLabel:        "pharmacy_claims",
			NDC:                 "ndc",
			Label:               "lbl_nm",
			FillDate:            "rx_filled_dt",
			BillingProvider:     "billg_prov_nm",
			PrescribingProvider: "prscrbg_prov_nm",
			DataPath:            "data_path",
			TotalRecords:        "structured_extractions.pharmacy.extraction_summary.total_ndc_records",
			NDCMeanings:         "structured_extractions.pharmacy.code_meanings.ndc_code_meanings",
			MedicationMeanings:  "structured_extractions.pharmacy.code_meanings.medication_meanings",
		},
		Entities: EntityFields{
			Object:        "entity_extraction",
			Diabetes:      "diabetics",
			Age:           "age",
			AgeGroup:      "age_group",
			Smoking:       "smoking",
			Alcohol:       "alcohol",
			BloodPressure: "blood_pressure",
		},
		Trajectory: TrajectoryFields{
			Path:    "health_trajectory",
			Date:    "date",
			Summary: "summary",
			Details: "details",
		},
		Risk: RiskFields{
			Score: "heart_attack_prediction.raw_risk_score",
			Level: "heart_attack_prediction.risk_category",
		},
	}
}

// LoadFieldMap reads a YAML override and lays it over the defaults. Keys left out of the
// file, or set to an empty string, keep their default path.
func LoadFieldMap(path string) (FieldMap, error) {
	fieldMap := DefaultFieldMap()
	if path == "" {
		return fieldMap, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fieldMap, fmt.Errorf("read field map %s: %w", path, err)
	}
	return ParseFieldMap(content)
}

func ParseFieldMap(content []byte) (FieldMap, error) {
	fieldMap := DefaultFieldMap()

	var override FieldMap
	if err := yaml.Unmarshal(content, &override); err != nil {
		return fieldMap, fmt.Errorf("parse field map: %w", err)
	}

	mergeStrings(reflect.ValueOf(&fieldMap).Elem(), reflect.ValueOf(override))
	return fieldMap, nil
}

func mergeStrings(dst, src reflect.Value) {
	for i := 0; i < dst.NumField(); i++ {
		field := dst.Field(i)
		switch field.Kind() {
		case reflect.String:
			if value := src.Field(i).String(); value != "" {
				field.SetString(value)
			}
		case reflect.Struct:
			mergeStrings(field, src.Field(i))
		}
	}
}
