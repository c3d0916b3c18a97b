package utils

import (
	"bufio"
	"errors"
	"fmt"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/exceptions"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
			)
		}
	} else if err != nil {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	if customErr != nil {
		response.Fields = customErr.Fields
		appEnvironment := GetEnvString("APP_ENV", "development")
		if appEnvironment != "production" {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	}
	json.NewEncoder(w).Encode(response)
}

// BuildCSVResponse streams a table as a CSV download, header row first. Every cell is
// quoted so spreadsheet tools never reinterpret codes like "00123" or "E11.9".
func BuildCSVResponse(w http.ResponseWriter, filename string, header []string, rows [][]string) error {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCSVCharsetUTF8)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(constvars.StatusOK)

	buffered := bufio.NewWriter(w)
	if err := writeQuotedCSVLine(buffered, header); err != nil {
		return exceptions.ErrWriteCSV(err)
	}
	for _, row := range rows {
		if err := writeQuotedCSVLine(buffered, row); err != nil {
			return exceptions.ErrWriteCSV(err)
		}
	}
	if err := buffered.Flush(); err != nil {
		return exceptions.ErrWriteCSV(err)
	}
	return nil
}

func writeQuotedCSVLine(w *bufio.Writer, cells []string) error {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	_, err := w.WriteString(strings.Join(quoted, ",") + "\n")
	return err
}
