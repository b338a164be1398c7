package realrate

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m     Money
		want  string
		whole string
	}{
		{M(1000, "USD"), "$1,000.00", "$1,000"},
		{M(1234.567, "USD"), "$1,234.57", "$1,235"},
		{M(-25.5, "USD"), "-$25.50", "-$26"},
		{M(0, "USD"), "$0.00", "$0"},
		// rounding residuals keep their sign.
		{M(-0.001, "USD"), "-$0.00", "-$0"},
		{M(-0.01, "USD"), "-$0.01", "-$0"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.m, got, tt.want)
		}
		if got := tt.m.Whole(); got != tt.whole {
			t.Errorf("%#v.Whole() = %q, want %q", tt.m, got, tt.whole)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(1000, "USD"), M(333.33, "USD")
	if got, want := a.Sub(b).Sub(b).Sub(b), M(0.01, "USD"); !got.Equal(want) {
		t.Errorf("1000 - 3×333.33 = %#v, want %#v", got, want)
	}
	if got := M(0, "").Add(b); got.Currency() != "USD" {
		t.Errorf("M(0, \"\").Add() currency = %q, want USD", got.Currency())
	}
	if got, want := b.MulDays(3), decimal.RequireFromString("999.99"); !got.Equal(want) {
		t.Errorf("MulDays(3) = %v, want %v", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("adding USD to EUR did not panic")
		}
	}()
	a.Add(M(1, "EUR"))
}

func TestMoneyMarshalJSON(t *testing.T) {
	data, err := json.Marshal(M(1234.5, "USD"))
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if want := `{"currency":"USD","amount":"1234.5"}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}
