package model

import "time"

// ReportVersion is bumped when the serialized report layout changes.
const ReportVersion = 1

// Report is the result of a project statistics scan: every file of the tree,
// grouped by kind in walk order. It is built once and treated as read-only.
type Report struct {
	Version   int                         `json:"version"`
	RunID     string                      `json:"run_id"`
	Root      Path                        `json:"root"`
	CreatedAt time.Time                   `json:"created_at"`
	Items     map[AssetKind][]AssetRecord `json:"items"`
}

// NewReport builds a report from records grouped by kind. Every known kind is
// present in Items, with an empty list when nothing of that kind was found.
func NewReport(runID string, root Path, createdAt time.Time, items map[AssetKind][]AssetRecord) *Report {
	grouped := make(map[AssetKind][]AssetRecord, len(AssetKinds))
	for _, kind := range AssetKinds {
		grouped[kind] = []AssetRecord{}
	}

	for kind, records := range items {
		list := make([]AssetRecord, len(records))
		copy(list, records)
		grouped[kind] = list
	}

	return &Report{
		Version:   ReportVersion,
		RunID:     runID,
		Root:      root,
		CreatedAt: createdAt.UTC().Truncate(time.Second),
		Items:     grouped,
	}
}

// Records returns the records of one kind.
func (r *Report) Records(kind AssetKind) []AssetRecord {
	if r == nil {
		return nil
	}

	return r.Items[kind]
}

// Count returns the number of records of one kind.
func (r *Report) Count(kind AssetKind) int {
	return len(r.Records(kind))
}

// Len returns the total number of records.
func (r *Report) Len() int {
	total := 0
	for _, records := range r.Items {
		total += len(records)
	}

	return total
}

// TotalSize returns the summed size of the records of one kind.
func (r *Report) TotalSize(kind AssetKind) int64 {
	var size int64
	for _, record := range r.Records(kind) {
		size += record.Size
	}

	return size
}
