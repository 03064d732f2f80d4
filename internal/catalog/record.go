package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Branch and semester literals. Scoping is exact, case-sensitive string
// equality everywhere, so producers and consumers must use these values
// verbatim.
const (
	// BranchNotice and SemesterAnnouncements are the sentinel values used to
	// store announcements in the same record shape as department materials.
	BranchNotice          = "NOTICE"
	SemesterAnnouncements = "ANNOUNCEMENTS"

	compositeSeparator = "--"
)

// Branches lists the department codes in display order.
var Branches = []string{"CSE", "ECE", "EEE", "CIV", "CEM", "MEC"}

// Semesters lists the semester codes Sem-1 through Sem-8.
var Semesters = []string{
	"Sem-1", "Sem-2", "Sem-3", "Sem-4",
	"Sem-5", "Sem-6", "Sem-7", "Sem-8",
}

// ValidBranch reports whether branch is a known department code or the
// NOTICE sentinel.
func ValidBranch(branch string) bool {
	if branch == BranchNotice {
		return true
	}
	for _, b := range Branches {
		if b == branch {
			return true
		}
	}
	return false
}

// ValidSemester reports whether semester is a known semester code or the
// ANNOUNCEMENTS sentinel.
func ValidSemester(semester string) bool {
	if semester == SemesterAnnouncements {
		return true
	}
	for _, s := range Semesters {
		if s == semester {
			return true
		}
	}
	return false
}

// RawRecord is one untyped record as the collection endpoint serves it. The
// contract is loose: fields vary by endpoint instance and may be absent.
type RawRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	Branch    string `json:"branch"`
	Semester  string `json:"semester"`
	Date      string `json:"date,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// FileRecord is a normalized material record.
type FileRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	MimeType   string    `json:"mimeType"`
	Branch     string    `json:"branch"`
	Semester   string    `json:"semester"`
	UploadedAt time.Time `json:"uploadedAt,omitempty"`
}

// Category derives the record's category from its MIME type.
func (r FileRecord) Category() Category {
	return Categorize(r.MimeType)
}

// Normalize converts a raw record into a FileRecord. Records missing a name
// or URL are rejected (ok = false); callers drop them from the working set
// without surfacing an error.
func Normalize(raw RawRecord) (FileRecord, bool) {
	if raw.Name == "" || raw.URL == "" {
		return FileRecord{}, false
	}
	return FileRecord{
		ID:         raw.ID,
		Name:       raw.Name,
		URL:        raw.URL,
		MimeType:   raw.Type,
		Branch:     raw.Branch,
		Semester:   raw.Semester,
		UploadedAt: resolveUploadedAt(raw),
	}, true
}

// NormalizeAll normalizes a raw collection, silently dropping malformed
// records. The dropped count is returned so the caller can log it.
func NormalizeAll(raws []RawRecord) ([]FileRecord, int) {
	records := make([]FileRecord, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		record, ok := Normalize(raw)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}
	return records, dropped
}

// resolveUploadedAt derives a record's upload time. Resolution order: the
// explicit timestamp field (epoch millis), then the date field, then a
// timestamp embedded as the third "--" segment of the name. Records where
// nothing resolves get the zero time and sort last in recency views.
func resolveUploadedAt(raw RawRecord) time.Time {
	if raw.Timestamp > 0 {
		return time.UnixMilli(raw.Timestamp).UTC()
	}
	if t, ok := parseLooseTime(raw.Date); ok {
		return t
	}
	if seg := compositeSegment(raw.Name, 2); seg != "" {
		if t, ok := parseLooseTime(seg); ok {
			return t
		}
	}
	return time.Time{}
}

var looseTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseLooseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range looseTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	if millis, err := strconv.ParseInt(s, 10, 64); err == nil && millis > 0 {
		return time.UnixMilli(millis).UTC(), true
	}
	return time.Time{}, false
}

// CompositeName synthesizes the legacy stored filename,
// branch--semester--originalName. The existing collection was written with
// this exact convention, so it must be reproduced byte for byte.
func CompositeName(branch, semester, originalName string) string {
	return branch + compositeSeparator + semester + compositeSeparator + originalName
}

// NoteFilename names a freeform text note uploaded at the given time.
func NoteFilename(branch, semester string, at time.Time) string {
	return CompositeName(branch, semester, fmt.Sprintf("Note_%d.txt", at.UnixMilli()))
}

// DisplayName strips the branch--semester-- prefix from a stored name for
// presentation and as the rename default. It splits on "--" and takes index
// 2 exactly; names without the prefix come back unchanged.
func DisplayName(storedName string) string {
	parts := strings.Split(storedName, compositeSeparator)
	if len(parts) > 2 && parts[2] != "" {
		return parts[2]
	}
	return storedName
}

// ParseComposite splits a stored name into its branch, semester and original
// name segments. ok is false when the name does not carry the composite
// prefix.
func ParseComposite(storedName string) (branch, semester, originalName string, ok bool) {
	parts := strings.SplitN(storedName, compositeSeparator, 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func compositeSegment(name string, index int) string {
	parts := strings.Split(name, compositeSeparator)
	if index < len(parts) {
		return parts[index]
	}
	return ""
}
