package percent

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/realrate"
	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	input := "\ufeffDate,Transaction Type,Description,Amount,Balance\n" +
		"2024-02-09,Interest,Interest payment (WSF1 2023-9),12.34,112.34\n" +
		"\n" +
		"2024-01-15, Deposit - ACH ,\"Deposit, from bank\",\"1,000.00\"\n" +
		"2023-09-15,Investment,Investment (WSF1 2023-9),-1000.00,0\n"

	got, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	want := []realrate.Row{
		{Line: 2, Date: "2024-02-09", Type: "Interest", Description: "Interest payment (WSF1 2023-9)", Amount: "12.34"},
		{Line: 4, Date: "2024-01-15", Type: "Deposit - ACH", Description: "Deposit, from bank", Amount: "1,000.00"},
		{Line: 5, Date: "2023-09-15", Type: "Investment", Description: "Investment (WSF1 2023-9)", Amount: "-1000.00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Columns(t *testing.T) {
	t.Run("any order, with code", func(t *testing.T) {
		input := "Amount,Code,Description,Transaction Type,Date\n" +
			"5.00,AHL 2024-1,Fee,Fee,2024-03-01\n"
		got, err := Decode(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Decode() failed: %v", err)
		}
		want := []realrate.Row{{Line: 2, Date: "2024-03-01", Type: "Fee", Description: "Fee", Amount: "5.00", Code: "AHL 2024-1"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
		}
	})

	for _, input := range []string{
		"",
		"Date,Description,Amount\n2024-01-01,Interest (A),1.00\n",
		"date,transaction type,description,amount\n",
	} {
		if _, err := Decode(strings.NewReader(input)); !errors.Is(err, ErrMissingColumn) {
			t.Errorf("Decode(%q) error = %v, want %v", input, err, ErrMissingColumn)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	input := "Date,Transaction Type,Description,Amount\n2024-01-01,Interest,\"unterminated,1.00\n"
	if _, err := Decode(strings.NewReader(input)); err == nil {
		t.Errorf("Decode() expected an error on an unterminated quote")
	}
}

func TestIsTransfer(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"Deposit - ACH", true},
		{"Withdrawal - ACH", true},
		{" deposit - wire", true},
		{"Withdrawal - Wire", true},
		{"Investment", false},
		{"Interest", false},
		{"Deposit", false},
	}
	for _, tt := range tests {
		if got := IsTransfer(tt.label); got != tt.want {
			t.Errorf("IsTransfer(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
	if !IsTransferRow(realrate.Row{Type: "Deposit - ACH"}) {
		t.Errorf("IsTransferRow() = false, want true")
	}
}
