package model

import "time"

// Report represents a persisted analysis.
type Report struct {
	ID        string // content hash, doubles as the file name stem
	CreatedAt time.Time
	Analysis  Analysis
}
