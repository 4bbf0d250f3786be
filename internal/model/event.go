package model

import (
	"errors"
	"time"
)

// EventModel 活动数据模型
// 对应旧系统的 eventos 集合,主要由迁移导入器写入
type EventModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Title     string    `gorm:"type:varchar(255);not null;index"`
	Type      string    `gorm:"type:varchar(64)"`
	Location  string    `gorm:"type:varchar(255)"`
	StartsAt  time.Time `gorm:"not null;index"`
	LegacyKey string    `gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"type:varchar(64);index"`
	UpdatedBy string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (EventModel) TableName() string {
	return "events"
}

// Validate 验证活动模型
func (e *EventModel) Validate() error {
	if e.ID == "" {
		return errors.New("event ID is required")
	}
	if e.Title == "" {
		return errors.New("event title is required")
	}
	return nil
}

// TransactionModel 财务流水数据模型
// 对应旧系统的 transacoes 集合
type TransactionModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	Description string    `gorm:"type:varchar(255);not null"`
	Direction   string    `gorm:"type:varchar(16);not null;index"` // entrada/saida
	AmountCents int64     `gorm:"not null"`
	OccurredAt  time.Time `gorm:"not null;index"`
	LegacyKey   string    `gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
	CreatedBy   string    `gorm:"type:varchar(64);index"`
	UpdatedBy   string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (TransactionModel) TableName() string {
	return "transactions"
}

// Validate 验证流水模型
func (t *TransactionModel) Validate() error {
	if t.ID == "" {
		return errors.New("transaction ID is required")
	}
	if t.Direction != "entrada" && t.Direction != "saida" {
		return errors.New("transaction direction must be entrada or saida")
	}
	return nil
}
