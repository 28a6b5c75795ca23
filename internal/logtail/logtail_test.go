package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "zero reads nothing", maxLines: 0, expected: nil},
		{name: "negative reads nothing", maxLines: -1, expected: nil},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read partial (3)", maxLines: 3, expected: expectedAll[7:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParseAndFormat(t *testing.T) {
	line := `{"level":"warn","breaker":"asset-host","to":"open","time":"2026-10-15T12:30:45Z","message":"asset breaker state change"}`
	entry := Parse(line)
	if entry.Level != "warn" || entry.Message != "asset breaker state change" {
		t.Fatalf("Parse = %#v", entry)
	}
	if entry.Time.IsZero() {
		t.Fatalf("Parse did not decode time")
	}
	got := entry.Format()
	if !strings.Contains(got, "WRN asset breaker state change breaker=asset-host to=open") {
		t.Fatalf("Format = %q", got)
	}
}

func TestParse_PlainTextLine(t *testing.T) {
	entry := Parse("not json at all")
	if entry.Message != "not json at all" || entry.Level != "" || entry.Fields != nil {
		t.Fatalf("Parse(plain) = %#v", entry)
	}
	if entry.Format() != "not json at all" {
		t.Fatalf("Format(plain) = %q", entry.Format())
	}
}

func TestTail_SkipsBlankLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "itemdeck.log")
	data := `{"level":"info","message":"one"}` + "\n\n" + `{"level":"debug","items":3,"message":"two"}` + "\n"
	if err := os.WriteFile(logPath, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	entries, err := Tail(logPath, 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(entries) != 2 || entries[1].Message != "two" || entries[1].Fields["items"] != "3" {
		t.Fatalf("Tail = %#v", entries)
	}
}
