package report

import (
	_ "embed"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

//go:embed fonts/DejaVuSansCondensed.ttf
var dejaVuRegular []byte

//go:embed fonts/DejaVuSansCondensed-Bold.ttf
var dejaVuBold []byte

// pdfColumnWidths are millimetres on a landscape A4 page with 10mm side margins.
var pdfColumnWidths = [ColumnCount]float64{34, 26, 34, 52, 55, 18, 20, 10, 28}

const (
	pdfFontFamily = "DejaVu"
	pdfFontSize   = 7
	pdfLineHeight = 3.6
	pdfCellPad    = 1.2
)

// PDFEncoder renders a paginated table in an embedded Unicode font. The
// header row is repeated at the top of every page, and a row taller than a
// page continues on the next one.
type PDFEncoder struct {
	Title string
}

func (PDFEncoder) Format() Format      { return FormatPDF }
func (PDFEncoder) ContentType() string { return "application/pdf" }

func (e PDFEncoder) Encode(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", dejaVuRegular)
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "B", dejaVuBold)
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 10)
	if e.Title != "" {
		pdf.SetTitle(e.Title, true)
	}
	pdf.SetCreator("backoffice", true)

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()

	pt := &pdfTable{pdf: pdf, limit: pageHeight - bottom}
	pt.header = pt.layout(t.Header, true)

	pt.newPage()
	for _, row := range t.Rows {
		pt.drawRow(pt.layout(row, false))
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// pdfCells holds the wrapped lines of every column of one row.
type pdfCells [ColumnCount][]string

func (c pdfCells) lines() int {
	n := 1
	for _, col := range c {
		n = max(n, len(col))
	}
	return n
}

type pdfTable struct {
	pdf     *fpdf.Fpdf
	header  pdfCells
	limit   float64
	bodyTop float64
}

func (pt *pdfTable) setFont(bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pt.pdf.SetFont(pdfFontFamily, style, pdfFontSize)
}

func (pt *pdfTable) layout(cells [ColumnCount]string, bold bool) pdfCells {
	pt.setFont(bold)
	var out pdfCells
	for i, cell := range cells {
		out[i] = pt.wrap(cell, pdfColumnWidths[i]-2*pt.pdf.GetCellMargin())
	}
	return out
}

// wrap breaks text at spaces so every line fits width. Words wider than a
// line are broken between runes.
func (pt *pdfTable) wrap(text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if pt.pdf.GetStringWidth(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			for pt.pdf.GetStringWidth(word) > width {
				cut := pt.fit(word, width)
				lines = append(lines, word[:cut])
				word = word[cut:]
			}
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// fit is the byte length of the longest rune prefix of word within width,
// at least one rune.
func (pt *pdfTable) fit(word string, width float64) int {
	cut := 0
	for i, r := range word {
		next := i + utf8.RuneLen(r)
		if pt.pdf.GetStringWidth(word[:next]) > width {
			break
		}
		cut = next
	}
	if cut == 0 {
		_, cut = utf8.DecodeRuneInString(word)
	}
	return cut
}

func (pt *pdfTable) newPage() {
	pt.pdf.AddPage()
	pt.pdf.SetFillColor(230, 230, 230)
	pt.pdf.SetDrawColor(160, 160, 160)
	pt.draw(pt.header, 0, pt.header.lines(), true)
	pt.bodyTop = pt.pdf.GetY()
}

// capacity is how many text lines of one row fit between y and the bottom margin.
func (pt *pdfTable) capacity(y float64) int {
	return int((pt.limit - y - 2*pdfCellPad) / pdfLineHeight)
}

// drawRow keeps a row on one page when it fits on a fresh page, and
// otherwise spreads its lines over as many pages as it needs.
func (pt *pdfTable) drawRow(cells pdfCells) {
	total := cells.lines()
	perPage := max(pt.capacity(pt.bodyTop), 1)

	for start := 0; start < total; {
		remaining := total - start
		room := pt.capacity(pt.pdf.GetY())
		if room < remaining && (remaining <= perPage || room < 1) {
			pt.newPage()
			room = perPage
		}

		n := min(remaining, room)
		pt.draw(cells, start, n, false)
		start += n
		if start < total {
			pt.newPage()
		}
	}
}

// draw renders lines [start, start+n) of every column as one bordered band.
func (pt *pdfTable) draw(cells pdfCells, start, n int, header bool) {
	pt.setFont(header)
	height := float64(n)*pdfLineHeight + 2*pdfCellPad

	rectStyle := "D"
	if header {
		rectStyle = "FD"
	}

	x, y := pt.pdf.GetXY()
	left := x
	for i, col := range cells {
		pt.pdf.Rect(left, y, pdfColumnWidths[i], height, rectStyle)
		for k := start; k < start+n && k < len(col); k++ {
			pt.pdf.SetXY(left, y+pdfCellPad+float64(k-start)*pdfLineHeight)
			pt.pdf.CellFormat(pdfColumnWidths[i], pdfLineHeight, col[k], "", 0, "L", false, 0, "")
		}
		left += pdfColumnWidths[i]
	}
	pt.pdf.SetXY(x, y+height)
}
