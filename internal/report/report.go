package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-barreto/syllabus/internal/registry"
)

const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// Report is the machine-readable result of one check run.
type Report struct {
	RunID      string               `json:"run_id"`
	Root       string               `json:"root"`
	Manifest   string               `json:"manifest,omitempty"`
	CheckedAt  time.Time            `json:"checked_at"`
	Topics     int                  `json:"topics"`
	Status     string               `json:"status"`
	Counts     map[string]int       `json:"counts"`
	Violations []registry.Violation `json:"violations"`
}

// New builds the report for one check of a registry holding topics entries.
func New(root, manifest string, topics int, violations []registry.Violation) *Report {
	r := &Report{
		RunID:      uuid.NewString(),
		Root:       root,
		Manifest:   manifest,
		CheckedAt:  time.Now().UTC(),
		Topics:     topics,
		Status:     StatusValid,
		Counts:     make(map[string]int),
		Violations: make([]registry.Violation, 0, len(violations)),
	}
	for _, v := range violations {
		r.Violations = append(r.Violations, v)
		r.Counts[string(v.Kind)]++
	}
	if len(r.Violations) > 0 {
		r.Status = StatusInvalid
	}
	return r
}

// Valid reports whether the run found no violations.
func (r *Report) Valid() bool {
	return r.Status == StatusValid
}

// Marshal encodes the report as indented JSON.
func (r *Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the report to path atomically.
func (r *Report) Save(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
