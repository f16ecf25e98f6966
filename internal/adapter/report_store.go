package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	m "reprowiz.dev/pkg/reprowiz/internal/model"
)

const reportFilePerm os.FileMode = 0o644

// ReportStore persists statistics reports.
type ReportStore interface {
	SaveReport(path m.Path, report *m.Report) error
	LoadReport(path m.Path) (*m.Report, error)
}

// JSONReportStore stores reports as indented JSON documents.
type JSONReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a JSON report store writing through fs.
func NewReportStore(fs SourceFSAdapter) *JSONReportStore {
	return &JSONReportStore{fs: fs}
}

// SaveReport writes report to path atomically.
func (s *JSONReportStore) SaveReport(path m.Path, report *m.Report) error {
	if report == nil {
		return errors.New("nil report")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	data = append(data, '\n')

	if err := s.fs.WriteFileAtomic(path, data, reportFilePerm); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport. Malformed documents are
// reported as *model.ReportParseError.
func (s *JSONReportStore) LoadReport(path m.Path) (*m.Report, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("report %s: %w", path, err)
		}

		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, &m.ReportParseError{Path: path, Err: err}
	}

	if report.Version != m.ReportVersion {
		return nil, &m.ReportParseError{
			Path: path,
			Err:  fmt.Errorf("unsupported report version %d", report.Version),
		}
	}

	for kind, records := range report.Items {
		for i, record := range records {
			if !record.Valid() || record.Kind != kind {
				return nil, &m.ReportParseError{
					Path: path,
					Err:  fmt.Errorf("record %d of %q is not a valid %s record", i, record.Path, kind),
				}
			}
		}
	}

	return m.NewReport(report.RunID, report.Root, report.CreatedAt, report.Items), nil
}
