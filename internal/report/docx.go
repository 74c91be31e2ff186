package report

import (
	"io"

	"github.com/gomutex/godocx"
)

// DOCXEncoder writes a Word document holding a single grid table with a
// bold header row.
type DOCXEncoder struct{}

func (DOCXEncoder) Format() Format { return FormatDOCX }
func (DOCXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

const docxTableStyle = "TableGrid"

func (DOCXEncoder) Encode(w io.Writer, t Table) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	table := doc.AddTable()
	table.Style(docxTableStyle)

	header := table.AddRow()
	for _, h := range t.Header {
		header.AddCell().AddEmptyPara().AddText(h).Bold(true)
	}

	for _, r := range t.Rows {
		row := table.AddRow()
		for _, v := range r {
			row.AddCell().AddParagraph(v)
		}
	}

	return doc.Write(w)
}
