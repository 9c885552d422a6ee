package reportservice

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Table styling shared by both report scopes: grey header row with white bold
// text, bordered cells, beige body.
func pdfTable(pdf *gofpdf.Fpdf, widths []float64, header []string, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func pdfHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// RenderPDF writes the paginated-document encoding of an already built report.
// Same data as the CSV encoding, different bytes.
func (s *Service) RenderPDF(data *ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, data.Title(), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Period: %s to %s", data.Start.Format(dateLayout), data.End.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if data.Scope == ScopeSummary {
		pdfHeading(pdf, "Summary Statistics")
		pdfTable(pdf, []float64{50, 50},
			[]string{"Total Amount", "Total Payments"},
			[][]string{{money("$", data.TotalAmount), strconv.Itoa(data.TotalCount)}})
		pdf.Ln(6)

		pdfHeading(pdf, "Minister Contributions")
		rows := make([][]string, 0, len(data.Groups))
		for _, g := range data.Groups {
			rows = append(rows, []string{g.MinisterName, money("$", g.Amount), strconv.Itoa(g.Count)})
		}
		pdfTable(pdf, []float64{65, 40, 40},
			[]string{"Minister Name", "Total Amount", "Number of Payments"}, rows)
	} else {
		pdfHeading(pdf, "Payment Details")
		rows := make([][]string, 0, len(data.Entries))
		for _, e := range data.Entries {
			rows = append(rows, []string{
				e.PaymentDate.Format(dateLayout),
				e.MinisterName,
				money("$", e.Amount),
				weekCell(e.WeekNumber),
				e.Note,
			})
		}
		pdfTable(pdf, []float64{25, 50, 25, 25, 55},
			[]string{"Date", "Minister Name", "Amount", "Week Number", "Note"}, rows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
