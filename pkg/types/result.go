package types

import "time"

// FileResult is the outcome of running the single-file pipeline on one file.
// Exactly one of Output / Err is meaningful: Err == "" means success.
type FileResult struct {
	Output   string
	Inserted int // docstrings spliced into this file
	Err      string
}

// OK reports whether the file was processed successfully
func (fr FileResult) OK() bool {
	return fr.Err == ""
}

// BatchStats summarizes a directory run
type BatchStats struct {
	FilesProcessed int
	FilesFailed    int
	Inserted       int
	Duration       time.Duration
}

// BatchResult maps every discovered eligible file to its outcome. Files that
// error during processing still appear, as error entries; nothing is
// silently dropped.
type BatchResult struct {
	RunID string
	Root  string
	Files map[string]FileResult
	Stats BatchStats
}

// Failed returns the paths that produced error entries
func (br *BatchResult) Failed() []string {
	var paths []string
	for path, fr := range br.Files {
		if !fr.OK() {
			paths = append(paths, path)
		}
	}
	return paths
}

// Errors returns the captured error descriptions, prefixed with their paths
func (br *BatchResult) Errors() []string {
	var msgs []string
	for path, fr := range br.Files {
		if !fr.OK() {
			msgs = append(msgs, path+": "+fr.Err)
		}
	}
	return msgs
}
