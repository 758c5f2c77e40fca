package main

import (
	"os"
	"time"

	"gorm.io/gorm"

	"hexcalc-go/model"
)

func SaveRunEntry(entry *model.RunEntry) error {
	err := DB.Transaction(func(tx *gorm.DB) error {
		outcomes := entry.Outcomes
		entry.Outcomes = nil
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		pid := entry.ID
		for i := range outcomes {
			outcomes[i].PID = pid
		}
		if len(outcomes) == 0 {
			return nil
		}
		if err := tx.Create(&outcomes).Error; err != nil {
			return err
		}
		entry.Outcomes = outcomes
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func FindRunsBySourceHash(sourceHash, instance string) ([]*model.RunEntry, error) {
	var items []*model.RunEntry
	if err := DB.Model(&model.RunEntry{}).
		Where("`source_hash`=? and `instance`=?", sourceHash, instance).
		Order("created_at desc").
		Limit(5).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, os.ErrNotExist
	}
	return items, nil
}

func UpdateRunAccess(sourceHash string) error {
	now := time.Now()
	if err := DB.Unscoped().Model(&model.RunEntry{}).Where("`source_hash`=?", sourceHash).
		Update("last_access", now.Unix()).Error; err != nil {
		return err
	}
	return nil
}

func FindExpiredRunsWithLimit(limit int) ([]*model.RunEntry, error) {
	var expiredRuns []*model.RunEntry
	now := time.Now().Unix()
	if err := DB.Model(&model.RunEntry{}).Where("`last_access`+`expired_duration` < ?", now).
		Limit(limit).Find(&expiredRuns).Error; err != nil {
		return nil, err
	}
	return expiredRuns, nil
}

func UpdateExpiredCleanResult(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := DB.Model(&model.OutcomeEntry{}).Where("`pid` IN ?", ids).
		Delete(&model.OutcomeEntry{}).Error; err != nil {
		return err
	}
	if err := DB.Model(&model.RunEntry{}).Delete(&model.RunEntry{}, ids).Error; err != nil {
		return err
	}
	return nil
}
