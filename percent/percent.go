// Package percent decodes account transaction histories exported by
// Percent.com as CSV files.
//
// The file starts with a header row and lists transactions newest first:
//
//	Date,Transaction Type,Description,Amount
//	2024-02-09,Interest,Interest payment (WSF1 2023-9),12.34
//	2023-09-15,Investment,Investment (WSF1 2023-9),-1000.00
package percent

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/realrate"
)

// Column names of the history file.
const (
	ColDate        = "Date"
	ColType        = "Transaction Type"
	ColDescription = "Description"
	ColAmount      = "Amount"
	ColCode        = "Code" // optional
)

// Transfer transaction types: cash moved in or out of the account, not
// related to any investment.
var transfers = map[string]bool{
	"withdrawal - ach":  true,
	"deposit - ach":     true,
	"withdrawal - wire": true,
	"deposit - wire":    true,
}

// IsTransfer reports whether a transaction type is a cash transfer to or
// from the account.
func IsTransfer(label string) bool {
	return transfers[strings.ToLower(strings.TrimSpace(label))]
}

// IsTransferRow is IsTransfer on a row.
func IsTransferRow(row realrate.Row) bool { return IsTransfer(row.Type) }

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Decode reads a history and returns its rows in file order.
//
// Columns are located by name in the header, extra columns are ignored.
func Decode(r io.Reader) ([]realrate.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // some exports have trailing empty columns.
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty history: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read history header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// some exports start with a byte order mark.
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		index[name] = i
	}
	for _, name := range []string{ColDate, ColType, ColDescription, ColAmount} {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("history header %q: %w %q", strings.Join(header, ","), ErrMissingColumn, name)
		}
	}
	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []realrate.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read history: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		rows = append(rows, realrate.Row{
			Line:        line,
			Date:        field(record, ColDate),
			Type:        field(record, ColType),
			Description: field(record, ColDescription),
			Amount:      field(record, ColAmount),
			Code:        field(record, ColCode),
		})
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
