package catalog

import "strings"

// Category is the derived classification of a material. It is always computed
// from the MIME type string, never stored alongside it.
type Category string

const (
	CategoryPDF     Category = "pdfs"
	CategoryImage   Category = "images"
	CategoryText    Category = "texts"
	CategoryUnknown Category = ""
)

// Categorize maps a raw MIME type string to a Category. The check order is
// fixed: pdf substring, then image/ prefix, then exact text/plain. A type
// could loosely match more than one test, so reordering changes results.
func Categorize(mimeType string) Category {
	switch {
	case strings.Contains(mimeType, "pdf"):
		return CategoryPDF
	case strings.HasPrefix(mimeType, "image/"):
		return CategoryImage
	case mimeType == "text/plain":
		return CategoryText
	default:
		return CategoryUnknown
	}
}
