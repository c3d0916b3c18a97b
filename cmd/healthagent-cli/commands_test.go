package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	return cmd, out
}

func TestRunValidate(t *testing.T) {
	today = "2025-06-15"
	defer func() { today = "" }()

	t.Run("Valid form", func(t *testing.T) {
		cmd, out := newTestCmd(`{"firstName":"Jane","lastName":"Doe","dateOfBirth":"1980-04-12","gender":"Female","zipCode":"02139","nationalId":"123456789"}`)

		err := runValidate(cmd, nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{"valid":true,"errors":{}}`, out.String())
	})

	t.Run("Invalid form exits non-zero", func(t *testing.T) {
		cmd, out := newTestCmd(`{"firstName":"Jane","lastName":"Doe","dateOfBirth":"2030-01-01","gender":"Female","zipCode":"02139","nationalId":"123456789"}`)

		err := runValidate(cmd, []string{"-"})

		assert.ErrorIs(t, err, errIntakeInvalid)
		assert.JSONEq(t, `{"valid":false,"errors":{"dateOfBirth":"Date cannot be in the future."}}`, out.String())
	})

	t.Run("Bad reference date", func(t *testing.T) {
		today = "15/06/2025"
		defer func() { today = "2025-06-15" }()
		cmd, _ := newTestCmd(`{}`)

		err := runValidate(cmd, nil)

		assert.Error(t, err)
	})
}

func TestRunNormalize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	cmd, out := newTestCmd("")

	err := runNormalize(cmd, []string{path})

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"icd10Data":[]`)
}

func TestRunNormalize_MissingFile(t *testing.T) {
	cmd, _ := newTestCmd("")

	err := runNormalize(cmd, []string{filepath.Join(t.TempDir(), "missing.json")})

	assert.Error(t, err)
}

func TestRunParseReply(t *testing.T) {
	t.Run("Reply with a chart", func(t *testing.T) {
		cmd, out := newTestCmd("Here you go.***GRAPH_START***{\"graph_type\":\"timeline\",\"title\":\"Meds\"}***GRAPH_END*** Done.")

		err := runParseReply(cmd, nil)

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"text":"Here you go. Done."`)
		assert.Contains(t, out.String(), `"graph_type":"timeline"`)
		assert.Contains(t, out.String(), `"family":"line"`)
	})

	t.Run("Plain reply", func(t *testing.T) {
		cmd, out := newTestCmd("No chart here.")

		err := runParseReply(cmd, nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{"text":"No chart here."}`, out.String())
	})
}
