package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"

	"gz/pkg/scanner"
)

// Record is one processed-program entry in the run memory file.
type Record struct {
	Source    string `yaml:"source"`
	Hash      string `yaml:"hash"`
	Lines     int    `yaml:"lines"`
	Functions int    `yaml:"functions"`
	Processed string `yaml:"processed"` // RFC3339
}

// Store appends run records to a YAML file. It consumes the
// interpreter's processed-program notification; the interpreter never
// waits on or inspects what happens here.
type Store struct {
	path string
}

// NewStore creates a store writing to the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ProgramProcessed records one completed run. Failures are logged and
// swallowed: telemetry must never affect program execution.
func (s *Store) ProgramProcessed(source, id string) {
	if s == nil || s.path == "" {
		return
	}

	lines := scanner.Scan(source)
	functions := 0
	for _, ln := range lines {
		head, _ := scanner.Cut(ln.Content)
		if kw, ok := scanner.Lookup(head); ok && kw == scanner.SIMULA && ln.Indent == 0 {
			functions++
		}
	}

	sum := sha256.Sum256([]byte(source))
	rec := Record{
		Source:    id,
		Hash:      hex.EncodeToString(sum[:]),
		Lines:     len(lines),
		Functions: functions,
		Processed: time.Now().UTC().Format(time.RFC3339),
	}

	// each record marshals as a single-element list, so appending
	// keeps the file one growing YAML sequence
	data, err := yaml.Marshal([]Record{rec})
	if err != nil {
		log.Warn("Failed to encode run record", "error", err)
		return
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn("Failed to open memory file", "file", s.path, "error", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		log.Warn("Failed to append run record", "file", s.path, "error", err)
	}
}

// Load reads every record back from the memory file.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var recs []Record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, err
	}

	return recs, nil
}
