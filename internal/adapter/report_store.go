package adapter

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

// ReportStore persists a summary of a transform run so CI jobs can archive
// what was changed without re-parsing diffs.
type ReportStore interface {
	// Save writes the run summary into dir as lexmod-report.yaml.
	Save(dir m.Path, changes []m.Change) error
}

// LocalReportStore writes run summaries to the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

type reportFile struct {
	GeneratedAt string        `yaml:"generated_at"`
	Changes     []reportEntry `yaml:"changes"`
}

type reportEntry struct {
	File        string `yaml:"file"`
	Kind        string `yaml:"kind"`
	Edits       int    `yaml:"edits"`
	Written     bool   `yaml:"written"`
	RenamedFrom string `yaml:"renamed_from,omitempty"`
	RenamedTo   string `yaml:"renamed_to,omitempty"`
}

// Save writes one yaml summary covering every changed file of the run.
// Unchanged files are omitted.
func (s *LocalReportStore) Save(dir m.Path, changes []m.Change) error {
	report := reportFile{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}

	for _, change := range changes {
		if !change.Changed() {
			continue
		}

		entry := reportEntry{
			Kind:        string(change.Kind),
			Edits:       change.Edits,
			Written:     change.Written,
			RenamedFrom: change.RenamedF,
			RenamedTo:   change.RenamedT,
		}
		if change.Source.Origin != nil {
			entry.File = string(change.Source.Origin.ShortPath)
		}

		report.Changes = append(report.Changes, entry)
	}

	out, err := yaml.Marshal(&report)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(string(dir), "lexmod-report.yaml"), out, 0o600)
}
