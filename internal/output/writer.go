// Package output writes verification and solve reports as JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(report any) error

	// Flush flushes any buffered reports to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers this also writes any
	// pending output.
	Close() error
}

// JSONWriter writes reports as JSON.
// It buffers reports and writes them as one JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	indent  string
	reports []any
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports into an array.
func NewJSONWriter(cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:       cfg.Writer,
		indent:  cfg.Indent,
		reports: make([]any, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      cfg.Writer,
		indent: cfg.Indent,
		single: true,
	}
}

func (jw *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", jw.indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(report any) error {
	if jw.single {
		return jw.encode(report)
	}
	jw.reports = append(jw.reports, report)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := jw.encode(jw.reports)
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// JSONLinesWriter writes one compact JSON document per line.
type JSONLinesWriter struct {
	enc *json.Encoder
}

// NewJSONLinesWriter creates a JSON lines writer.
func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLinesWriter{enc: enc}
}

// WriteReport writes a report on its own line.
func (lw *JSONLinesWriter) WriteReport(report any) error {
	return lw.enc.Encode(report)
}

// Flush is a no-op; lines are written immediately.
func (lw *JSONLinesWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (lw *JSONLinesWriter) Close() error {
	return nil
}

// ErrorReport is the JSON shape of a failed request.
type ErrorReport struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
