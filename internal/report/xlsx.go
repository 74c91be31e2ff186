package report

import (
	"io"

	"github.com/tealeg/xlsx"
)

const SheetName = "Orders"

// XLSXEncoder writes one "Orders" worksheet. Every cell is stored as text so
// the workbook shows exactly what the other formats show.
type XLSXEncoder struct{}

func (XLSXEncoder) Format() Format { return FormatXLSX }
func (XLSXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXEncoder) Encode(w io.Writer, t Table) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return err
	}

	bold := xlsx.NewStyle()
	bold.Font.Bold = true
	bold.ApplyFont = true

	headerRow := sheet.AddRow()
	for _, h := range t.Header {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}

	for _, r := range t.Rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}

	return file.Write(w)
}
