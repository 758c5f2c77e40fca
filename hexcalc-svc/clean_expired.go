package main

import (
	"fmt"

	"github.com/tevino/abool/v2"
)

var cleanRunning = abool.NewBool(false)

// / Delete history entries whose expiry has passed. Guarded so a slow pass
// / never overlaps the next scheduled one.
func cleanTask() {
	if cleanRunning.IsSet() {
		return
	}
	cleanRunning.Set()
	defer cleanRunning.UnSet()
	expiredRuns, err := FindExpiredRunsWithLimit(2000)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(expiredRuns) == 0 {
		return
	}
	var expiredIds []int64
	for _, expiredRun := range expiredRuns {
		expiredIds = append(expiredIds, expiredRun.ID)
	}
	err = UpdateExpiredCleanResult(expiredIds)
	if err != nil {
		fmt.Println(err)
	}
}
