package pdftext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// textRun is one positioned string to place on a generated page.
type textRun struct {
	x, y float64
	s    string
}

// buildPDF assembles a minimal single-font PDF with one content stream
// per page and a correct cross-reference table, so tests do not depend
// on binary fixtures.
func buildPDF(pages [][]textRun) []byte {
	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")

	offsets := []int{0}
	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	fontNum := 3 + 2*len(pages)

	addObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	addObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))

	escaper := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	for i, runs := range pages {
		contentNum := 4 + 2*i
		addObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontNum, contentNum))

		var stream strings.Builder
		for _, run := range runs {
			fmt.Fprintf(&stream, "BT /F1 12 Tf %g %g Td (%s) Tj ET\n",
				run.x, run.y, escaper.Replace(run.s))
		}
		content := stream.String()
		addObj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content))
	}

	// Uniform glyph widths keep generated advance values predictable.
	widths := strings.TrimSpace(strings.Repeat("500 ", 95))
	addObj(fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica "+
		"/FirstChar 32 /LastChar 126 /Widths [%s] /Encoding /WinAnsiEncoding >>", widths))

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets), xrefOffset)

	return []byte(buf.String())
}

// writePDF writes a generated PDF into dir and returns its path.
func writePDF(t *testing.T, dir string, pages ...[]textRun) string {
	t.Helper()

	path := filepath.Join(dir, "sample.pdf")
	if err := os.WriteFile(path, buildPDF(pages), 0o644); err != nil {
		t.Fatalf("Failed to write sample PDF: %v", err)
	}
	return path
}
