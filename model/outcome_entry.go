package model

// / One per-statement outcome row belonging to a RunEntry.
type OutcomeEntry struct {
	ID int64 `json:"id" gorm:"default:0"`
	// parent RunEntry /* index_pid */
	PID int64 `json:"pid" gorm:"index:idx_outcome_pid"`
	// 0-based statement position within the run
	Ordinal int    `json:"ordinal"`
	RawText string `json:"raw_text"`
	// "accepted" or "rejected"
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (OutcomeEntry) TableName() string {
	return "outcome_entry"
}
