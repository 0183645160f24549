package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// FeedbackReport holds the resolved fields for one exported document.
type FeedbackReport struct {
	FeedbackID   uint
	EmployeeName string
	ManagerName  string
	SubmittedAt  time.Time
	Strengths    string
	Improvements string
}

// Filename returns the suggested attachment name for the report.
func (r FeedbackReport) Filename() string {
	return fmt.Sprintf("feedback_%d.pdf", r.FeedbackID)
}

// BuildFeedbackReport renders the report as a PDF document: centered title,
// employee/manager/date lines, then bold section headings with multi-line
// bodies for strengths and improvements.
func BuildFeedbackReport(r FeedbackReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252 fallback for core fonts
	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Feedback Report", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.CellFormat(0, 10, tr("Employee: "+r.EmployeeName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr("Manager: "+r.ManagerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, "Date: "+r.SubmittedAt.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Strengths", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, tr(r.Strengths), "", "L", false)
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Areas for Improvement", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, tr(r.Improvements), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
