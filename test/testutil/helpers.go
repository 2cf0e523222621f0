// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

// projectRoot returns the module root (testutil lives in test/testutil).
func projectRoot(t *testing.T) string {
	t.Helper()
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// LoadMockDatabase loads the fixture file bundled with the mock data source.
func LoadMockDatabase(t *testing.T) []byte {
	t.Helper()
	path := filepath.Join(projectRoot(t), "internal", "adapter", "provider", "mockapi", "data", "mock_database.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load mock database: %v", err)
	}
	return data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// FutureDate returns the date days after today in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// LogBuffer collects JSON log lines written by a test logger.
// It is safe for concurrent writers.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything written so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Lines decodes every log line. Lines that are not JSON are skipped.
func (b *LogBuffer) Lines() []map[string]interface{} {
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			out = append(out, entry)
		}
	}
	return out
}

// Find returns the first line whose message equals msg.
func (b *LogBuffer) Find(msg string) (map[string]interface{}, bool) {
	for _, entry := range b.Lines() {
		if entry["message"] == msg {
			return entry, true
		}
	}
	return nil, false
}

// NewTestLogger returns a debug-level JSON logger writing into the returned buffer.
func NewTestLogger() (*logger.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	log := logger.NewWithOutput(logger.Config{
		Level:       "debug",
		Format:      "json",
		ServiceName: "flight-finder-test",
	}, buf)
	return log, buf
}
