// Package renderer turns rate reports into markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/realrate"
	md "github.com/nao1215/markdown"
)

// ProvisionalMark follows a rate that will increase once the interest accrued
// since the last payment is paid.
const ProvisionalMark = "*"

// ReportMarkdown renders the effective rate of every investment, the totals
// and everything that was not interpreted.
func ReportMarkdown(r *realrate.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Effective interest rates on %s", r.AsOf))

	if len(r.Investments) == 0 {
		doc.PlainText("No investment found.")
	} else {
		rows := make([][]string, 0, len(r.Investments)+1)
		for _, inv := range r.Investments {
			rows = append(rows, []string{
				inv.ID,
				inv.Principal.Whole(),
				inv.Interest.Whole(),
				inv.Fees.Whole(),
				inv.Balance.Whole(),
				rate(inv.Rate, inv.Provisional),
			})
		}
		s := r.Summary
		rows = append(rows, []string{
			"Total",
			s.Principal.Whole(),
			s.Interest.Whole(),
			s.Fees.Whole(),
			s.Balance.Whole(),
			s.MeanRate.String(),
		})
		doc.Table(md.TableSet{
			Header: []string{"Code", "Initial P", "Interest", "Fees", "Balance", "Effective rate"},
			Rows:   rows,
		})
	}

	doc.PlainText("")
	doc.PlainText(SummaryLine(r.Summary))
	if r.Summary.AnyProvisional {
		doc.PlainText("")
		doc.PlainText(fmt.Sprintf(`\%s = effective rate will increase if interest is paid after %s.`, ProvisionalMark, r.AsOf))
	}

	if len(r.Skipped) > 0 {
		doc.H2("Skipped investments")
		for _, s := range r.Skipped {
			doc.PlainText(fmt.Sprintf("- %s", s))
		}
	}

	if len(r.Unhandled) > 0 {
		doc.H2("Unhandled rows")
		rows := make([][]string, 0, len(r.Unhandled))
		for _, row := range r.Unhandled {
			rows = append(rows, []string{strconv.Itoa(row.Line), row.Date, row.Type, row.Description, row.Amount})
		}
		doc.Table(md.TableSet{
			Header: []string{"Line", "Date", "Transaction Type", "Description", "Amount"},
			Rows:   rows,
		})
	}

	if r.Hidden > 0 || r.Future > 0 {
		doc.PlainText("")
		if r.Hidden > 0 {
			doc.PlainText(fmt.Sprintf("%d transfer rows not shown.", r.Hidden))
		}
		if r.Future > 0 {
			doc.PlainText(fmt.Sprintf("%d rows after %s ignored.", r.Future, r.AsOf))
		}
	}

	return doc.String()
}

// SummaryLine describes the mean rate of a portfolio.
func SummaryLine(s realrate.Summary) string {
	if s.Empty {
		return "Mean effective rate is undefined: no principal invested."
	}
	return fmt.Sprintf("Mean effective rate %s is weighted by initial principal.", s.MeanRate)
}

func rate(r realrate.Rate, provisional bool) string {
	if provisional {
		return r.String() + " " + ProvisionalMark
	}
	return r.String()
}
