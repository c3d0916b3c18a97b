package main

import (
	"errors"
	"fmt"
	"healthagent-service/internal/pkg/chart"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/normalizer"
	"healthagent-service/internal/pkg/utils"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	today        string
	fieldMapFile string
)

var errIntakeInvalid = errors.New("intake is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate [intake.json]",
	Short: "Validate a patient intake form",
	Long:  `Prints the per-field error messages. Exits non-zero when any field is invalid.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [analysis.json]",
	Short: "Normalize a raw analysis service response",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNormalize,
}

var parseReplyCmd = &cobra.Command{
	Use:   "parse-reply [reply.txt]",
	Short: "Split an assistant reply into text and an embedded chart",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParseReply,
}

func runValidate(cmd *cobra.Command, args []string) error {
	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	intake := new(requests.PatientIntake)
	if err := json.Unmarshal(content, intake); err != nil {
		return fmt.Errorf("decode intake: %w", err)
	}
	utils.SanitizePatientIntake(intake)

	reference := utils.CalendarDay(time.Now())
	if today != "" {
		reference, err = utils.ParseCalendarDate(today, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
	}

	fieldErrors := utils.ValidateIntake(intake, reference)
	result := &responses.IntakeValidation{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	}
	if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.Valid {
		return errIntakeInvalid
	}
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	fieldMap, err := normalizer.LoadFieldMap(fieldMapFile)
	if err != nil {
		return err
	}

	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), normalizer.New(fieldMap).Normalize(content))
}

func runParseReply(cmd *cobra.Command, args []string) error {
	content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	reply := chart.ParseReply(string(content))
	output := struct {
		chart.Reply
		Family chart.Family `json:"family,omitempty"`
	}{Reply: reply}
	if reply.Chart != nil {
		output.Family = chart.FamilyOf(reply.Chart.GraphType)
	}
	return writeJSON(cmd.OutOrStdout(), output)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return content, nil
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(value)
}
