// Package flightdocs provides a terminal viewer for the documents published
// by an Alces Flight Center catalogue. It lists documents, shows them in the
// terminal and downloads them to disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, lipgloss/, hashids/).
package flightdocs

// Version is reported in the User-Agent of API requests.
const Version = "1.0.0"
