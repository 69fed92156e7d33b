package diag

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Recorder keeps every record in memory, in emission order. When created with a
// path, each record is also appended to that file as one timestamped line.
type Recorder struct {
	mu      sync.Mutex
	records []Record
	path    string
}

// NewRecorder returns an in-memory recorder with no file mirror.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewFileRecorder returns a recorder that also appends to path, creating its
// directory if needed. Write failures are ignored; the in-memory copy is authoritative.
func NewFileRecorder(path string) *Recorder {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Recorder{path: path}
}

// Emit stores r and mirrors it to the file, if any.
func (rec *Recorder) Emit(r Record) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.records = append(rec.records, r)
	if rec.path == "" {
		return
	}
	f, err := os.OpenFile(rec.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(Format(time.Now(), r) + "\n")
	_ = f.Close()
}

// Records returns a copy of all stored records.
func (rec *Recorder) Records() []Record {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]Record, len(rec.records))
	copy(out, rec.records)
	return out
}

// Count returns how many stored records have the given level.
func (rec *Recorder) Count(level Level) int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	n := 0
	for _, r := range rec.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

// Reset drops all stored records.
func (rec *Recorder) Reset() {
	rec.mu.Lock()
	rec.records = nil
	rec.mu.Unlock()
}

// Format renders r as "[2006-01-02 15:04:05] level message key=value ...".
func Format(ts time.Time, r Record) string {
	var b strings.Builder
	b.WriteString("[" + ts.Format("2006-01-02 15:04:05") + "] ")
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range r.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return b.String()
}
