package headshift

import "fmt"

// Status represents the outcome of processing a single file.
type Status int

const (
	// StatusUnchanged means the file contained no H1 headings.
	StatusUnchanged Status = iota
	// StatusPreview means conversions were counted but not written (dry run).
	StatusPreview
	// StatusWritten means the file was modified on disk.
	StatusWritten
	// StatusError means processing failed for this file.
	StatusError
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusPreview:
		return "preview"
	case StatusWritten:
		return "written"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// FileResult is the outcome of processing a single file. Immutable
// once produced; folded into the run Summary.
type FileResult struct {
	// Path is the absolute path of the file.
	Path string
	// Conversions is the number of H1 headings converted (or that
	// would be converted, in dry-run mode).
	Conversions int
	// SetextH1 counts underline-style level-1 headings the line
	// scanner leaves untouched.
	SetextH1 int
	// Status classifies the outcome.
	Status Status
	// Err is set when Status is StatusError.
	Err error
}

// Summary aggregates one full run.
type Summary struct {
	// FilesScanned is the number of eligible files discovered.
	FilesScanned int
	// FilesChanged is the number of files with at least one conversion.
	FilesChanged int
	// Conversions is the total conversion count across all files.
	Conversions int
	// SetextH1 is the total count of untouched underline-style H1s.
	SetextH1 int
	// Errors holds one "path: message" string per failed file.
	Errors []string
}

// add folds a FileResult into the summary.
func (s *Summary) add(r FileResult) {
	if r.Conversions > 0 {
		s.FilesChanged++
		s.Conversions += r.Conversions
	}
	s.SetextH1 += r.SetextH1
	if r.Err != nil {
		s.Errors = append(s.Errors, fmt.Sprintf("%s: %v", r.Path, r.Err))
	}
}
