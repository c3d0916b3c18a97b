package normalizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldMap_OverridesOnlyGivenKeys(t *testing.T) {
	content := []byte(`
root: result
medical:
  records: medical.claims
  diagnosis_codes: icd_codes
pharmacy:
  records: ""
risk:
  score: risk.value
`)

	fieldMap, err := ParseFieldMap(content)
	require.NoError(t, err)

	defaults := DefaultFieldMap()
	assert.Equal(t, "result", fieldMap.Root)
	assert.Equal(t, "medical.claims", fieldMap.Medical.Records)
	assert.Equal(t, "icd_codes", fieldMap.Medical.DiagnosisCodes)
	assert.Equal(t, "risk.value", fieldMap.Risk.Score)

	assert.Equal(t, defaults.Medical.ClaimDate, fieldMap.Medical.ClaimDate)
	assert.Equal(t, defaults.Pharmacy.Records, fieldMap.Pharmacy.Records)
	assert.Equal(t, defaults.Risk.Level, fieldMap.Risk.Level)
	assert.Equal(t, defaults.Entities, fieldMap.Entities)
}

func TestParseFieldMap_InvalidYAML(t *testing.T) {
	_, err := ParseFieldMap([]byte("medical: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFieldMap(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		fieldMap, err := LoadFieldMap("")
		require.NoError(t, err)
		assert.Equal(t, DefaultFieldMap(), fieldMap)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fields.yaml")
		require.NoError(t, os.WriteFile(path, []byte("entities:\n  diabetes: diabetes_flag\n"), 0o600))

		fieldMap, err := LoadFieldMap(path)
		require.NoError(t, err)
		assert.Equal(t, "diabetes_flag", fieldMap.Entities.Diabetes)
		assert.Equal(t, "entity_extraction", fieldMap.Entities.Object)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFieldMap(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
