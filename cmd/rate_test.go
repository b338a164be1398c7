package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/realrate"
)

// history is newest first, as exported.
const history = `Date,Transaction Type,Description,Amount
2024-02-15,Deposit - ACH,Deposit from bank,500.00
2024-01-01,Interest,Interest (AAA 2023-1),100.00
2023-12-01,Principal,Principal (BBB 2023-2),1000.00
2023-12-01,Interest,Interest (BBB 2023-2),50.00
2023-12-01,Mystery,Something odd,1.00
2023-08-23,Investment,Investment (BBB 2023-2),-1000.00
2023-01-01,Investment,Investment (AAA 2023-1),-1000.00
`

func writeHistory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRateCmd_Markdown(t *testing.T) {
	path := writeHistory(t, history)
	c := &rateCmd{currency: "USD", raw: true}

	var out, logs bytes.Buffer
	if err := c.run(&out, &logs, path, realrate.NewDate(2024, 1, 1)); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"# Effective interest rates on 2024-01-01",
		"AAA 2023-1",
		"BBB 2023-2",
		"10.0%",
		"$1,000",
		"Mean effective rate 14.1% is weighted by initial principal.",
		`\* = effective rate will increase if interest is paid after 2024-01-01.`,
		"## Unhandled rows",
		"Mystery",
		"1 rows after 2024-01-01 ignored.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected logs:\n%s", logs.String())
	}
}

func TestRateCmd_JSON(t *testing.T) {
	path := writeHistory(t, history)
	c := &rateCmd{currency: "USD", json: true}

	var out, logs bytes.Buffer
	if err := c.run(&out, &logs, path, realrate.NewDate(2024, 1, 1)); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	var v any
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}

	tests := []struct {
		path string
		want any
	}{
		{"$.asOf", "2024-01-01"},
		{"$.currency", "USD"},
		{"$.investments[0].code", "AAA 2023-1"},
		{"$.investments[0].rate", "0.1"},
		{"$.investments[0].provisional", false},
		{"$.investments[1].code", "BBB 2023-2"},
		{"$.investments[1].rate", "0.1825"},
		{"$.investments[1].provisional", true},
		{"$.investments[1].payoffDate", "2023-12-01"},
		{"$.investments[1].balance.amount", "0"},
		{"$.summary.meanRate", "0.14125"},
		{"$.summary.principal.amount", "2000"},
		{"$.unhandled[0].type", "Mystery"},
		{"$.future", 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := jsonpath.Get(tc.path, v)
			if err != nil {
				t.Fatalf("jsonpath.Get(%q) failed: %v", tc.path, err)
			}
			if got != tc.want {
				t.Errorf("%s = %v (%T), want %v (%T)", tc.path, got, got, tc.want, tc.want)
			}
		})
	}
}

func TestRateCmd_Transfers(t *testing.T) {
	path := writeHistory(t, history)
	asOf := realrate.NewDate(2024, 3, 1)

	tests := []struct {
		name      string
		transfers bool
		want      string
	}{
		{"hidden", false, "1 transfer rows not shown."},
		{"listed", true, "Deposit - ACH"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &rateCmd{currency: "USD", raw: true, transfers: tc.transfers}
			var out, logs bytes.Buffer
			if err := c.run(&out, &logs, path, asOf); err != nil {
				t.Fatalf("run() failed: %v", err)
			}
			if !strings.Contains(out.String(), tc.want) {
				t.Errorf("output does not contain %q:\n%s", tc.want, out.String())
			}
		})
	}
}

func TestRateCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing column",
			content: "Date,Description,Amount\n2024-01-01,Interest (A),1.00\n",
			want:    "missing column",
		},
		{
			name:    "bad amount",
			content: "Date,Transaction Type,Description,Amount\n2024-01-01,Interest,Interest (A),abc\n",
			want:    "line 2: invalid amount",
		},
		{
			name:    "bad date",
			content: "Date,Transaction Type,Description,Amount\n01/02/2024,Interest,Interest (A),1.00\n",
			want:    "line 2: invalid date",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeHistory(t, tc.content)
			c := &rateCmd{currency: "USD", raw: true}
			var out, logs bytes.Buffer
			err := c.run(&out, &logs, path, realrate.NewDate(2024, 1, 1))
			if err == nil {
				t.Fatalf("run() expected an error, got output:\n%s", out.String())
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("run() error = %v, want it to contain %q", err, tc.want)
			}
			if out.Len() != 0 {
				t.Errorf("run() wrote a partial report:\n%s", out.String())
			}
		})
	}
}

func TestRateCmd_SkippedIsWarned(t *testing.T) {
	// ZZZ has no initial deposit, AAA is still reported.
	content := `Date,Transaction Type,Description,Amount
2024-01-01,Interest,Interest (ZZZ 2023-9),5.00
2024-01-01,Interest,Interest (AAA 2023-1),100.00
2023-01-01,Investment,Investment (AAA 2023-1),-1000.00
`
	path := writeHistory(t, content)
	c := &rateCmd{currency: "USD", raw: true}
	var out, logs bytes.Buffer
	if err := c.run(&out, &logs, path, realrate.NewDate(2024, 1, 1)); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "## Skipped investments") || !strings.Contains(out.String(), "ZZZ 2023-9") {
		t.Errorf("skipped investment not reported:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "AAA 2023-1") {
		t.Errorf("valid investment not reported:\n%s", out.String())
	}
	if !strings.Contains(logs.String(), "level=warning") {
		t.Errorf("skipped investment not logged:\n%s", logs.String())
	}
}

func TestRateCmd_AsOf(t *testing.T) {
	tests := []struct {
		date    string
		want    realrate.Date
		wantErr bool
	}{
		{"", realrate.Today(), false},
		{"2024-02-16", realrate.NewDate(2024, 2, 16), false},
		{"-1d", realrate.Today().Add(-1), false},
		{"16/02/2024", realrate.Date{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			c := &rateCmd{date: tc.date}
			got, err := c.asOf()
			if (err != nil) != tc.wantErr {
				t.Fatalf("asOf() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("asOf() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPrintMarkdown(t *testing.T) {
	var raw, styled bytes.Buffer
	printMarkdown(&raw, "# Title\n\nsome text\n", true)
	printMarkdown(&styled, "# Title\n\nsome text\n", false)

	if raw.String() != "# Title\n\nsome text\n" {
		t.Errorf("raw output = %q", raw.String())
	}
	if !strings.Contains(styled.String(), "some text") {
		t.Errorf("styled output lost the content: %q", styled.String())
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range Names {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("Completion() has no sub command %q", name)
		}
	}
}
