package model

import (
	"errors"
	"time"
)

// StatusHistoryModel 状态变更历史数据模型
// 仅追加:除记录被管理员硬删除外,历史条目永不修改或删除
type StatusHistoryModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)"`
	RecordType string    `gorm:"type:varchar(32);not null;index"` // help_request/appointment
	RecordID   string    `gorm:"type:varchar(64);not null;index"`
	FromStatus string    `gorm:"type:varchar(32)"` // 创建时为空
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	Actor      string    `gorm:"type:varchar(64);not null"`
	ActorName  string    `gorm:"type:varchar(255)"`
	Note       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName 指定表名
func (StatusHistoryModel) TableName() string {
	return "status_history"
}

// Validate 验证状态历史模型
func (sh *StatusHistoryModel) Validate() error {
	if sh.ID == "" {
		return errors.New("history ID is required")
	}
	if sh.RecordType == "" {
		return errors.New("record type is required")
	}
	if sh.RecordID == "" {
		return errors.New("record ID is required")
	}
	if sh.ToStatus == "" {
		return errors.New("to status is required")
	}
	if sh.Actor == "" {
		return errors.New("actor is required")
	}
	return nil
}
