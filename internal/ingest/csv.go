// Package ingest turns an uploaded CSV into the ledger-record shape the
// engine consumes. Parsing is fail-fast: an unknown account type or an
// unparseable value or year aborts the whole file with a descriptive error
// naming the offending row and field. The engine itself never coerces types.
package ingest

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finanalyzer/internal/engineerror"
	"finanalyzer/internal/logging"
	"finanalyzer/internal/models"
)

// csvRow maps one CSV line. Fields come in as strings so conversion errors
// can be reported per row and field instead of as an opaque csv failure.
type csvRow struct {
	ID          string `csv:"id"`
	AccountName string `csv:"accountName"`
	Value       string `csv:"value"`
	Year        string `csv:"year"`
	Type        string `csv:"type"`
}

// Reader converts ledger CSV files into validated LedgerRecord slices.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a Reader.
func NewReader(logger logging.Logger) *Reader {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Reader{logger: logger}
}

// ReadFile reads and validates a ledger CSV file.
func (rd *Reader) ReadFile(path string) ([]models.LedgerRecord, error) {
	rd.logger.WithField(logging.FieldFile, path).Info("Reading ledger CSV file")

	file, err := os.Open(path)
	if err != nil {
		return nil, &engineerror.IngestError{Path: path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			rd.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	records, err := rd.Read(file)
	if err != nil {
		return nil, &engineerror.IngestError{Path: path, Err: err}
	}
	return records, nil
}

// Read reads and validates ledger CSV data from a stream (e.g. an HTTP
// upload).
func (rd *Reader) Read(r io.Reader) ([]models.LedgerRecord, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV: %w", err)
	}

	records := make([]models.LedgerRecord, 0, len(rows))
	for i, row := range rows {
		record, err := convertRow(i+1, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	rd.logger.WithField(logging.FieldRecords, len(records)).Info("Ledger CSV parsed")
	return records, nil
}

// convertRow validates one row. rowNum is 1-based over data rows, matching
// what a user sees in a spreadsheet below the header.
func convertRow(rowNum int, row csvRow) (models.LedgerRecord, error) {
	accountType, err := models.ParseAccountType(strings.TrimSpace(row.Type))
	if err != nil {
		return models.LedgerRecord{}, &engineerror.RecordError{
			Row: rowNum, Field: "type", Value: row.Type, Err: err,
		}
	}

	value, err := decimal.NewFromString(strings.TrimSpace(row.Value))
	if err != nil {
		return models.LedgerRecord{}, &engineerror.RecordError{
			Row: rowNum, Field: "value", Value: row.Value, Err: err,
		}
	}

	year, err := strconv.Atoi(strings.TrimSpace(row.Year))
	if err != nil {
		return models.LedgerRecord{}, &engineerror.RecordError{
			Row: rowNum, Field: "year", Value: row.Year, Err: err,
		}
	}

	id := strings.TrimSpace(row.ID)
	if id == "" {
		id = uuid.NewString()
	}

	return models.LedgerRecord{
		ID:          id,
		AccountName: strings.ToUpper(strings.TrimSpace(row.AccountName)),
		Value:       value,
		Year:        year,
		Type:        accountType,
	}, nil
}
