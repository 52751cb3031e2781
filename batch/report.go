package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/AnyUserName/dupimg/imghash"
)

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1

// Report is the outcome of a batch run.
type Report struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	Algorithms  []string         `json:"algorithms"`
	Workers     int              `json:"workers"`
	Entries     map[string]Entry `json:"entries"`
	Failures    []Failure        `json:"failures,omitempty"`
	Stats       Stats            `json:"stats"`
}

// Entry holds the fingerprints of one image.
type Entry struct {
	Path        string            `json:"path"`         // relative to the input dir
	Format      string            `json:"format"`
	Size        int64             `json:"size"`
	ContentHash string            `json:"content_hash"` // xxhash64, 16 hex chars
	Hashes      map[string]string `json:"hashes"`       // algorithm → hex fingerprint
}

// Failure records an image that could not be hashed.
type Failure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalFiles      int   `json:"total_files"`
	Hashed          int   `json:"hashed"`
	Failed          int   `json:"failed"`
	TotalBytes      int64 `json:"total_bytes"`
	ExactDuplicates int   `json:"exact_duplicates"` // entries whose content hash was already seen
}

// NewReport creates an empty report for the given profile.
func NewReport(p Profile) *Report {
	algs := make([]string, len(p.Algorithms))
	for i, a := range p.Algorithms {
		algs[i] = string(a)
	}
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     p.Name,
		Algorithms:  algs,
		Entries:     make(map[string]Entry),
	}
}

// ComputeStats recalculates aggregate statistics from entries and failures.
func (r *Report) ComputeStats() {
	var s Stats
	s.Hashed = len(r.Entries)
	s.Failed = len(r.Failures)
	s.TotalFiles = s.Hashed + s.Failed
	seen := make(map[string]int, len(r.Entries))
	for _, e := range r.Entries {
		s.TotalBytes += e.Size
		seen[e.ContentHash]++
	}
	for _, n := range seen {
		s.ExactDuplicates += n - 1
	}
	r.Stats = s
}

// Fingerprint returns the typed fingerprint stored for key.
func (r *Report) Fingerprint(key string, alg imghash.Algorithm) (imghash.Fingerprint, error) {
	e, ok := r.Entries[key]
	if !ok {
		return nil, fmt.Errorf("fingerprint %q: no such entry", key)
	}
	s, ok := e.Hashes[string(alg)]
	if !ok {
		return nil, fmt.Errorf("fingerprint %q: %s not computed", key, alg)
	}
	return imghash.ParseFingerprint(alg, s)
}

// Similarity compares the alg fingerprints of two entries.
func (r *Report) Similarity(keyA, keyB string, alg imghash.Algorithm) (float64, error) {
	a, err := r.Fingerprint(keyA, alg)
	if err != nil {
		return 0, err
	}
	b, err := r.Fingerprint(keyB, alg)
	if err != nil {
		return 0, err
	}
	return imghash.CompareFingerprints(a, b)
}

// WriteJSON recomputes stats and writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadJSON parses a report written by WriteJSON. Unknown fields are ignored.
func ReadJSON(rd io.Reader) (*Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	if r.Version != SupportedReportVersion {
		return nil, fmt.Errorf("parse report: unsupported version %d", r.Version)
	}
	return &r, nil
}
