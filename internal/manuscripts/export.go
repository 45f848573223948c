package manuscripts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders a manuscript as a simple A4 document: title page
// header, author line, abstract, then the body text.
func RenderPDF(m *Manuscript) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 25, 20)
	pdf.AddPage()

	pdf.SetFont("Times", "B", 18)
	pdf.MultiCell(0, 9, m.Title, "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Times", "", 12)
	pdf.CellFormat(0, 6, m.AuthorName, "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "I", 10)
	pdf.CellFormat(0, 5, m.AuthorEmail, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	if m.Abstract != "" {
		pdf.SetFont("Times", "B", 12)
		pdf.CellFormat(0, 6, "Abstract", "", 1, "L", false, 0, "")
		pdf.SetFont("Times", "I", 11)
		pdf.MultiCell(0, 5.5, m.Abstract, "", "J", false)
		pdf.Ln(6)
	}

	pdf.SetFont("Times", "", 11)
	for _, para := range strings.Split(m.Text, "\n\n") {
		pdf.MultiCell(0, 5.5, para, "", "J", false)
		pdf.Ln(3)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Times", "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render manuscript pdf: %w", err)
	}
	return buf.Bytes(), nil
}
