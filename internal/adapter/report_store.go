package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "semreg.dev/pkg/semreg/internal/model"
)

// ReportsFileName is the file scenario reports are stored in.
const ReportsFileName = "scenarios.yaml"

// ReportStore persists scenario reports in a reports directory.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.ScenarioReport) error
	LoadReports(dir m.Path) ([]m.ScenarioReport, error)
}

type reportsDocument struct {
	Scenarios []m.ScenarioReport `yaml:"scenarios"`
}

type yamlReportStore struct{}

// NewReportStore returns a ReportStore writing YAML documents.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

func (s *yamlReportStore) SaveReports(dir m.Path, reports []m.ScenarioReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(reportsDocument{Scenarios: reports})
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	path := filepath.Join(string(dir), ReportsFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (s *yamlReportStore) LoadReports(dir m.Path) ([]m.ScenarioReport, error) {
	path := filepath.Join(string(dir), ReportsFileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc reportsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return doc.Scenarios, nil
}
