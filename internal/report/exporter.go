package report

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"backoffice/internal/models"
)

// Result is a finished export. Body is only ever a complete document.
type Result struct {
	Format      Format
	FileName    string
	ContentType string
	Rows        int
	Body        []byte
}

// Exporter shapes orders once per call and hands the table to encoders.
type Exporter struct {
	shaper   Shaper
	encoders map[Format]Encoder
}

// NewExporter registers the given encoders, or the PDF, XLSX and DOCX
// encoders when none are passed.
func NewExporter(shaper Shaper, encoders ...Encoder) *Exporter {
	if len(encoders) == 0 {
		encoders = []Encoder{PDFEncoder{Title: "Orders"}, XLSXEncoder{}, DOCXEncoder{}}
	}
	e := &Exporter{shaper: shaper, encoders: make(map[Format]Encoder, len(encoders))}
	for _, enc := range encoders {
		e.encoders[enc.Format()] = enc
	}
	return e
}

func (e *Exporter) Shaper() Shaper { return e.shaper }

// Export shapes the orders immediately, so the result reflects the projection
// at call time, then encodes on a separate goroutine and waits for it. If ctx
// ends first the caller gets ctx.Err() and the late result is discarded.
func (e *Exporter) Export(ctx context.Context, format Format, orders []models.Order) (*Result, error) {
	if format == FormatBundle {
		return e.Bundle(ctx, orders)
	}
	enc, ok := e.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return e.run(ctx, enc, e.shaper.Table(orders))
}

// ExportAll encodes one shaped table with every registered encoder
// concurrently, in Formats order.
func (e *Exporter) ExportAll(ctx context.Context, orders []models.Order) ([]*Result, error) {
	table := e.shaper.Table(orders)

	formats := make([]Format, 0, len(e.encoders))
	for _, f := range Formats {
		if _, ok := e.encoders[f]; ok {
			formats = append(formats, f)
		}
	}

	results := make([]*Result, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		enc := e.encoders[f]
		g.Go(func() error {
			res, err := e.run(gctx, enc, table)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Bundle zips every format of the same table into one archive.
func (e *Exporter) Bundle(ctx context.Context, orders []models.Order) (*Result, error) {
	results, err := e.ExportAll(ctx, orders)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteBundle(&buf, results); err != nil {
		return nil, &ExportError{Format: FormatBundle, Err: err}
	}
	rows := 0
	if len(results) > 0 {
		rows = results[0].Rows
	}
	return &Result{
		Format:      FormatBundle,
		FileName:    FormatBundle.FileName(),
		ContentType: "application/zip",
		Rows:        rows,
		Body:        buf.Bytes(),
	}, nil
}

func (e *Exporter) run(ctx context.Context, enc Encoder, table Table) (*Result, error) {
	type outcome struct {
		body []byte
		err  error
	}
	done := make(chan outcome, 1)

	go func() {
		var buf bytes.Buffer
		err := enc.Encode(&buf, table)
		done <- outcome{body: buf.Bytes(), err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		if out.err != nil {
			return nil, &ExportError{Format: enc.Format(), Err: out.err}
		}
		return &Result{
			Format:      enc.Format(),
			FileName:    enc.Format().FileName(),
			ContentType: enc.ContentType(),
			Rows:        len(table.Rows),
			Body:        out.body,
		}, nil
	}
}

// WriteBundle stores each result under its file name in a zip archive.
func WriteBundle(w io.Writer, results []*Result) error {
	zw := zip.NewWriter(w)
	for _, r := range results {
		f, err := zw.Create(r.FileName)
		if err != nil {
			return err
		}
		if _, err := f.Write(r.Body); err != nil {
			return err
		}
	}
	return zw.Close()
}
