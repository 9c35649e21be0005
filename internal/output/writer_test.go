package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
)

type sampleReport struct {
	ID    string   `json:"id"`
	Moves []string `json:"moves"`
}

func outputConfig(buf *bytes.Buffer, indent string) *config.OutputConfig {
	cfg := config.NewOutputConfig()
	cfg.Writer = buf
	cfg.Indent = indent
	return cfg
}

// TestJSONWriter_Batch verifies reports are buffered into one array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(outputConfig(&buf, "  "))

	for _, id := range []string{"a", "b"} {
		if err := writer.WriteReport(sampleReport{ID: id, Moves: []string{"e2e4"}}); err != nil {
			t.Fatalf("WriteReport failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Close")
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got []sampleReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("decoded %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("output should be indented")
	}
}

// TestJSONWriter_EmptyFlush verifies nothing is written with no reports
func TestJSONWriter_EmptyFlush(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(outputConfig(&buf, ""))
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Flush wrote %q; want nothing", buf.String())
	}
}

// TestJSONWriter_Single verifies each report is written immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(outputConfig(&buf, ""))

	if err := writer.WriteReport(ErrorReport{Error: "move 1 \"e2e5\": illegal move", Kind: "illegal_move"}); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	want := `{"error":"move 1 \"e2e5\": illegal move","kind":"illegal_move"}` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if buf.String() != want {
		t.Error("Close wrote again in single mode")
	}
}

// TestJSONLinesWriter verifies one document per line without HTML escaping
func TestJSONLinesWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONLinesWriter(&buf)

	var w ReportWriter = writer
	w.WriteReport(sampleReport{ID: "1", Moves: []string{"e7e8q"}})
	w.WriteReport(sampleReport{ID: "<2>"})
	w.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d; want 2\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], `"<2>"`) {
		t.Errorf("line 2 = %q; HTML characters should not be escaped", lines[1])
	}
}
