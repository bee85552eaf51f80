package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

// A4 page with a one-inch left margin. The title is set in bold with a rule
// under it, the body as a 16pt-leading text column below.
const (
	pdfPageWidth  = 595
	pdfPageHeight = 842
	pdfMarginLeft = 72
	pdfTitleY     = 780
	pdfBodyTop    = 742
	pdfLeading    = 16
)

// buildPayslipPDF renders a single-page payslip as a minimal PDF 1.4
// document. Enough for a downloadable statement without dragging in a layout
// engine.
func buildPayslipPDF(title string, lines []string) ([]byte, error) {
	if title == "" {
		title = "Payslip"
	}

	var content strings.Builder
	fmt.Fprintf(&content, "BT\n/F2 16 Tf\n%d %d Td\n(%s) Tj\nET\n", pdfMarginLeft, pdfTitleY, pdfEscape(title))
	fmt.Fprintf(&content, "%d %d %d 1 re f\n", pdfMarginLeft, pdfTitleY-8, pdfPageWidth-2*pdfMarginLeft)
	fmt.Fprintf(&content, "BT\n/F1 11 Tf\n%d TL\n%d %d Td\n", pdfLeading, pdfMarginLeft, pdfBodyTop)
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj\nT*\n", pdfEscape(line))
	}
	content.WriteString("ET")

	stream := content.String()

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")

	offsets := []int{0}
	writeObj := func(body string) {
		offsets = append(offsets, out.Len())
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj("<< /Type /Pages /Kids [5 0 R] /Count 1 >>")
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>")
	writeObj(fmt.Sprintf(
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents 6 0 R >>",
		pdfPageWidth, pdfPageHeight,
	))
	writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(offsets))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		fmt.Fprintf(&out, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart)

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
