package ledger

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fingen-dev/fingen/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,amount,date,category,description,isExpense,paymentMethod"

// bom marks the file as UTF-8 for spreadsheet tools.
const bom = "\ufeff"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colID      = 0
	colAmount  = 1
	colDate    = 2
	colCat     = 3
	colDesc    = 4
	colExpense = 5
	colPayment = 6
)

// WriteRecords writes a BOM, the header, and one row per record.
func WriteRecords(w io.Writer, records []model.Record) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("writing byte-order mark: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecords reads a transactions.csv stream. A leading BOM is optional.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, []byte(bom)) {
		if _, err := br.Discard(len(bom)); err != nil {
			return nil, fmt.Errorf("skipping byte-order mark: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if got := strings.Join(rows[0], ","); got != Header {
		return nil, fmt.Errorf("unexpected header %q", got)
	}

	records := make([]model.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colID] = rec.ID
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colDate] = rec.Date.Format(dateFormat)
	row[colCat] = rec.Category
	row[colDesc] = rec.Description
	row[colExpense] = strconv.FormatBool(rec.IsExpense)
	row[colPayment] = rec.PaymentMethod
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	date, err := time.Parse(dateFormat, row[colDate])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	isExpense, err := strconv.ParseBool(row[colExpense])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing isExpense %q: %w", row[colExpense], err)
	}

	return model.Record{
		ID:            row[colID],
		Amount:        amount,
		Date:          date,
		Category:      row[colCat],
		Description:   row[colDesc],
		IsExpense:     isExpense,
		PaymentMethod: row[colPayment],
	}, nil
}
