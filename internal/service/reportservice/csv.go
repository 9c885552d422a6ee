package reportservice

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

const dateLayout = "2006-01-02"

func money(prefix string, amount float64) string {
	return fmt.Sprintf("%s%.2f", prefix, amount)
}

func weekCell(week int) string {
	if week == 0 {
		return ""
	}
	return strconv.Itoa(week)
}

// RenderCSV writes the delimited-text encoding of an already built report.
// It is a pure rendering step; no querying happens here.
func (s *Service) RenderCSV(data *ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{data.Title()},
		{fmt.Sprintf("Period: %s to %s", data.Start.Format(dateLayout), data.End.Format(dateLayout))},
		{""},
	}

	if data.Scope == ScopeSummary {
		records = append(records,
			[]string{"Summary Statistics"},
			[]string{"Total Amount", money("UGX", data.TotalAmount)},
			[]string{"Total Payments", strconv.Itoa(data.TotalCount)},
			[]string{""},
			[]string{"Minister Contributions"},
			[]string{"Minister Name", "Total Amount", "Number of Payments"},
		)
		for _, g := range data.Groups {
			records = append(records, []string{g.MinisterName, money("$", g.Amount), strconv.Itoa(g.Count)})
		}
	} else {
		records = append(records,
			[]string{"Payment Details"},
			[]string{"Date", "Minister Name", "Amount", "Week Number", "Note"},
		)
		for _, e := range data.Entries {
			records = append(records, []string{
				e.PaymentDate.Format(dateLayout),
				e.MinisterName,
				money("$", e.Amount),
				weekCell(e.WeekNumber),
				e.Note,
			})
		}
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
