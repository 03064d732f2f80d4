package catalog

import (
	"sort"
	"strings"
	"time"
)

// Inline preview and recency caps. Both literals are load-bearing: the
// front-end renders exactly four inline cards per category and five entries
// per category on the recent-uploads view.
const (
	PreviewCap        = 4
	RecentPerCategory = 5
)

// Snapshot is an immutable copy of the full material collection at one point
// in time. Consumers never mutate a snapshot; after any mutation the owner
// replaces it wholesale with a fresh fetch.
type Snapshot struct {
	records   []FileRecord
	fetchedAt time.Time
}

// NewSnapshot copies records into a new snapshot.
func NewSnapshot(records []FileRecord, fetchedAt time.Time) *Snapshot {
	copied := make([]FileRecord, len(records))
	copy(copied, records)
	return &Snapshot{records: copied, fetchedAt: fetchedAt}
}

// Records returns the snapshot's records. The slice is shared; treat it as
// read-only.
func (s *Snapshot) Records() []FileRecord {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// FetchedAt returns when the snapshot was taken.
func (s *Snapshot) FetchedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.fetchedAt
}

// PartitionResult holds the three disjoint category subsets of a scoped
// record list. Unknown-category records appear in none of them.
type PartitionResult struct {
	PDFs   []FileRecord `json:"pdfs"`
	Images []FileRecord `json:"images"`
	Texts  []FileRecord `json:"texts"`
}

// Partition scopes the snapshot to one (branch, semester) pair by exact
// string equality and splits the result by category. Within each category
// the snapshot's arrival order is preserved.
func (s *Snapshot) Partition(branch, semester string) PartitionResult {
	result := PartitionResult{
		PDFs:   []FileRecord{},
		Images: []FileRecord{},
		Texts:  []FileRecord{},
	}
	for _, record := range s.Records() {
		if record.Branch != branch || record.Semester != semester {
			continue
		}
		switch record.Category() {
		case CategoryPDF:
			result.PDFs = append(result.PDFs, record)
		case CategoryImage:
			result.Images = append(result.Images, record)
		case CategoryText:
			result.Texts = append(result.Texts, record)
		}
	}
	return result
}

// Recent sorts the full snapshot by upload time, most recent first, then
// truncates each category independently to RecentPerCategory entries.
// Records whose upload time could not be resolved sort last.
func (s *Snapshot) Recent() PartitionResult {
	sorted := make([]FileRecord, len(s.Records()))
	copy(sorted, s.Records())
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].UploadedAt, sorted[j].UploadedAt
		if ti.IsZero() != tj.IsZero() {
			return !ti.IsZero()
		}
		return ti.After(tj)
	})

	result := PartitionResult{
		PDFs:   []FileRecord{},
		Images: []FileRecord{},
		Texts:  []FileRecord{},
	}
	for _, record := range sorted {
		switch record.Category() {
		case CategoryPDF:
			if len(result.PDFs) < RecentPerCategory {
				result.PDFs = append(result.PDFs, record)
			}
		case CategoryImage:
			if len(result.Images) < RecentPerCategory {
				result.Images = append(result.Images, record)
			}
		case CategoryText:
			if len(result.Texts) < RecentPerCategory {
				result.Texts = append(result.Texts, record)
			}
		}
	}
	return result
}

// Preview is the two-tier disclosure of one category list: up to PreviewCap
// items inline, and a modal tier listing every item (not just the overflow)
// when HasMore is set.
type Preview struct {
	Visible       []FileRecord `json:"visible"`
	All           []FileRecord `json:"all"`
	OverflowCount int          `json:"overflowCount"`
	HasMore       bool         `json:"hasMore"`
}

// Present applies the preview gate to a category list.
func Present(list []FileRecord) Preview {
	visible := list
	if len(visible) > PreviewCap {
		visible = visible[:PreviewCap]
	}
	all := list
	if all == nil {
		visible = []FileRecord{}
		all = []FileRecord{}
	}
	return Preview{
		Visible:       visible,
		All:           all,
		OverflowCount: len(list) - len(visible),
		HasMore:       len(list) > PreviewCap,
	}
}

// Search returns the records whose name contains the query, case
// insensitively. Name is the only field matched. A blank or whitespace-only
// query yields an empty result rather than the whole collection.
func (s *Snapshot) Search(query string) []FileRecord {
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := []FileRecord{}
	if needle == "" {
		return matches
	}
	for _, record := range s.Records() {
		if strings.Contains(strings.ToLower(record.Name), needle) {
			matches = append(matches, record)
		}
	}
	return matches
}
