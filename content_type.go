package flightdocs

import "strings"

// ContentTypeLabel returns a short human label for a MIME type.
// Unrecognised types are labelled "Unknown".
func ContentTypeLabel(mimeType string) string {
	switch mimeType {
	case "image/png", "image/jpg", "image/jpeg":
		return "Image"
	case "application/pdf":
		return "PDF"
	case "application/zip",
		"application/x-bzip2",
		"application/x-bzip",
		"application/x-gzip":
		return "Archive"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.oasis.opendocument.spreadsheet",
		"application/vnd.ms-excel":
		return "Spreadsheet"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.oasis.opendocument.text",
		"application/msword":
		return "Word document"
	case "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"application/vnd.oasis.opendocument.presentation",
		"application/vnd.ms-powerpoint":
		return "Presentation"
	case "text/markdown":
		return "Markdown"
	case "application/json":
		return "Text"
	}

	if strings.HasPrefix(mimeType, "text/") {
		return "Text"
	}
	return "Unknown"
}
