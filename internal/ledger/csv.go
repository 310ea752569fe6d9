package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bankist-dev/bankist/internal/model"
)

// Header is the CSV header for movement statements.
const Header = "date,type,amount"

// DateFormat is the ISO-8601 layout used for statement dates.
const DateFormat = "2006-01-02T15:04:05.000Z07:00"

const (
	numFields = 3
	colDate   = 0
	colType   = 1
	colAmount = 2
)

// ReadMovements reads a statement CSV, header included.
func ReadMovements(r io.Reader) ([]model.Movement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if got := strings.Join(records[0], ","); got != Header {
		return nil, fmt.Errorf("row 1: expected header %q, got %q", Header, got)
	}

	var movs []model.Movement
	for i, rec := range records[1:] {
		m, err := UnmarshalMovement(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		movs = append(movs, m)
	}
	return movs, nil
}

// WriteMovements writes a statement CSV including the header.
func WriteMovements(w io.Writer, movs []model.Movement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, m := range movs {
		if err := cw.Write(MarshalMovement(m)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalMovement converts a Movement to a CSV row.
func MarshalMovement(m model.Movement) []string {
	row := make([]string, numFields)
	row[colDate] = m.Date.UTC().Format(DateFormat)
	row[colType] = string(m.Kind())
	row[colAmount] = m.Amount.String()
	return row
}

// UnmarshalMovement converts a CSV row to a Movement. The type column is
// informational; the sign of the amount is authoritative.
func UnmarshalMovement(record []string) (model.Movement, error) {
	if len(record) != numFields {
		return model.Movement{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(time.RFC3339Nano, record[colDate])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := parsePlain(record[colAmount])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.NewMovement(amount, date), nil
}
