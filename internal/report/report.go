// Package report renders audit results as HTML or JSON documents.
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/permaudit-project/permaudit/internal/audit"
	"github.com/permaudit-project/permaudit/pkg/errclass"
	"github.com/permaudit-project/permaudit/pkg/fsutil"
	"github.com/permaudit-project/permaudit/pkg/jsonutil"
)

// Data is everything a rendered report needs.
type Data struct {
	Title               string           `json:"title"`
	GeneratedAt         time.Time        `json:"generated_at"`
	TemplateDescription string           `json:"template_description,omitempty"`
	Run                 *audit.RunResult `json:"run"`
}

// NewData assembles report data from a finished run.
func NewData(title, templateDescription string, run *audit.RunResult) *Data {
	return &Data{
		Title:               title,
		GeneratedAt:         time.Now().UTC(),
		TemplateDescription: templateDescription,
		Run:                 run,
	}
}

// WriteHTML renders the HTML report and writes it atomically to path.
func WriteHTML(path string, d *Data) error {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, d); err != nil {
		return err
	}
	if err := fsutil.AtomicWrite(path, buf.Bytes(), 0644); err != nil {
		return errclass.ErrReportWrite.WithMessagef("%s: %v", path, err)
	}
	return nil
}

// WriteJSON writes the report data as canonical JSON, atomically.
func WriteJSON(path string, d *Data) error {
	data, err := jsonutil.CanonicalMarshal(d)
	if err != nil {
		return errclass.ErrReportWrite.WithMessagef("%s: %v", path, err)
	}
	if err := fsutil.AtomicWrite(path, append(data, '\n'), 0644); err != nil {
		return errclass.ErrReportWrite.WithMessagef("%s: %v", path, err)
	}
	return nil
}

// RenderHTML writes the HTML report to w.
func RenderHTML(w io.Writer, d *Data) error {
	if err := htmlTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}
