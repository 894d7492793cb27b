// Package export renders generated plans as downloadable PDF documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/fitplanner-backend/internal/planner"
)

// RenderPlanPDF renders a parsed plan as an A4 PDF. Structured plans get one
// titled block per day; opaque plans flow as plain text. The userName line
// is omitted when empty.
func RenderPlanPDF(title, userName string, parsed planner.ParsedPlan, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if userName != "" {
		pdf.CellFormat(0, 6, "User: "+userName, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if parsed.Structured {
		for _, section := range parsed.Sections {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, section.Day, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			if section.Details != "" {
				pdf.MultiCell(0, 5, section.Details, "", "L", false)
			}
			pdf.Ln(2)
		}
	} else {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, parsed.Text, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
