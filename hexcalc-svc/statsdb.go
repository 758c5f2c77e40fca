package main

import (
	"zombiezen.com/go/sqlite"
)

// Read-only aggregate path beside gorm: one prepared statement over the
// same database file.
var (
	statsConn *sqlite.Conn = nil
	stmtStats *sqlite.Stmt = nil
)

type RunStats struct {
	Runs       int64 `json:"runs"`
	Statements int64 `json:"statements"`
	Rejected   int64 `json:"rejected"`
	Warnings   int64 `json:"warnings"`
}

func OpenStatsDb(dbPath string) (err error) {
	statsConn, err = sqlite.OpenConn(dbPath, sqlite.OpenReadOnly)
	if err != nil {
		return err
	}
	stmtStats, err = statsConn.Prepare("SELECT count(*), coalesce(sum(`statements`), 0), " +
		"coalesce(sum(`rejected`), 0), coalesce(sum(`warnings`), 0) FROM run_entry WHERE `deleted` = 0;")
	if err != nil {
		return err
	}
	return
}

func CloseStatsDb() (err error) {
	if statsConn == nil {
		return
	}
	err = statsConn.Close()
	return
}

func QueryRunStats() (*RunStats, error) {
	defer stmtStats.Reset()
	hasRow, err := stmtStats.Step()
	if err != nil {
		return nil, err
	}
	if !hasRow {
		return &RunStats{}, nil
	}
	return &RunStats{
		Runs:       stmtStats.ColumnInt64(0),
		Statements: stmtStats.ColumnInt64(1),
		Rejected:   stmtStats.ColumnInt64(2),
		Warnings:   stmtStats.ColumnInt64(3),
	}, nil
}
