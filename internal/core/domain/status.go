package domain

import "strings"

// FileStatus represents the outcome of processing one source file in a batch run.
type FileStatus string

const (
	// FileStatusPending indicates the file has not been processed yet.
	FileStatusPending FileStatus = "pending"
	// FileStatusTransformed indicates the engine produced fresh output for the file.
	FileStatusTransformed FileStatus = "transformed"
	// FileStatusCached indicates the output was served from the transform cache.
	FileStatusCached FileStatus = "cached"
	// FileStatusPassthrough indicates the file was copied unchanged because it is not compilable.
	FileStatusPassthrough FileStatus = "passthrough"
	// FileStatusFailed indicates the transform failed.
	FileStatusFailed FileStatus = "failed"
)

// IsTerminal reports whether processing of the file has finished.
func (s FileStatus) IsTerminal() bool {
	switch s {
	case FileStatusTransformed, FileStatusCached, FileStatusPassthrough, FileStatusFailed:
		return true
	default:
		return false
	}
}

// NormalizeFileStatus converts a string to a FileStatus, defaulting to pending if unknown.
func NormalizeFileStatus(s string) FileStatus {
	switch st := FileStatus(strings.ToLower(s)); st {
	case FileStatusTransformed, FileStatusCached, FileStatusPassthrough, FileStatusFailed:
		return st
	default:
		return FileStatusPending
	}
}

// FileResult is the outcome of one file in a batch run.
type FileResult struct {
	Filename string     `json:"filename" yaml:"filename"`
	Output   string     `json:"output,omitempty" yaml:"output,omitempty"`
	Code     string     `json:"-" yaml:"-"`
	Status   FileStatus `json:"status" yaml:"status"`
	Err      error      `json:"-" yaml:"-"`
}
