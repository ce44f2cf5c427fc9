package model

import "time"

// RunRecord is a single line in the run log (JSONL format). Records are
// hash-chained so tampering with history is detectable.
type RunRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	RunID          string    `json:"run_id"`
	Parent         string    `json:"parent"`
	TemplateMode   bool      `json:"template_mode"`
	FoldersScanned int       `json:"folders_scanned"`
	DeviantCount   int       `json:"deviant_count"`
	ErrorCount     int       `json:"error_count"`
	PrevHash       string    `json:"prev_hash"`
	RecordHash     string    `json:"record_hash"`
}
