package model

import "gorm.io/plugin/soft_delete"

// / One completed evaluation run, as stored by the history service. The
// / entry is an audit record: runs are never replayed from it and every new
// / run still starts from an empty variable table.
type RunEntry struct {
	ID int64 `json:"id" gorm:"default:0"`
	// blake3 hash of the submitted source text /* index_source_hash */
	SourceHash string `json:"source_hash" gorm:"index:idx_source_hash"`
	Source     string `json:"source"`
	// fnv1a/uint128 digest of outcomes + final variables
	Fingerprint string `json:"fingerprint" gorm:"index:idx_fingerprint"`
	// statement counts for quick stats
	Statements int `json:"statements"`
	Rejected   int `json:"rejected"`
	Warnings   int `json:"warnings"`
	//
	Outcomes []*OutcomeEntry `json:"outcomes" gorm:"ForeignKey:PID;AssociationForeignKey:ID"`
	//
	Instance        string `json:"instance"` /* index_inst */
	CreatedAt       int64  `json:"created_at"`
	LastAccess      int64  `json:"last_access"` /* index_last_access */
	ExpiredDuration int64  `json:"expired_duration"`
	/* 0 false 1 true */
	Deleted soft_delete.DeletedAt `json:"-" gorm:"softDelete:flag;default:0"`
}

func (RunEntry) TableName() string {
	return "run_entry"
}
