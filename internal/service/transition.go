package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusRecord 带状态流转的记录
// 帮助请求和预约都实现此接口,共享同一套流转逻辑
type StatusRecord interface {
	RecordType() string
	RecordID() string
	CurrentStatus() string
	ApplyStatus(status, actorID string, now time.Time)
}

// TransitionRequest 状态流转请求
// @Description 状态流转的请求参数
type TransitionRequest struct {
	Status    string `json:"status" example:"aceito" binding:"required"` // 目标状态
	ActorName string `json:"actor_name" example:"Dr. Silva"`             // 操作者显示名称
	Note      string `json:"note" example:"encaminhado para avaliação"`  // 备注
}

// applyTransition 执行状态流转
// 历史追加与状态写入在同一事务内提交,失败时整体回滚
func applyTransition(db *gorm.DB, record StatusRecord, toStatus, actorID, actorName, note string) error {
	now := time.Now()
	fromStatus := record.CurrentStatus()
	record.ApplyStatus(toStatus, actorID, now)

	history := &model.StatusHistoryModel{
		ID:         uuid.New().String(),
		RecordType: record.RecordType(),
		RecordID:   record.RecordID(),
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Actor:      actorID,
		ActorName:  actorName,
		Note:       note,
		CreatedAt:  now,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to append status history: %w", err)
		}
		if err := tx.Save(record).Error; err != nil {
			return fmt.Errorf("failed to update record status: %w", err)
		}
		return nil
	})
}

// createWithInitialHistory 在同一事务内创建记录并写入初始历史条目
// 初始条目的 FromStatus 为空,表示记录刚被创建
func createWithInitialHistory(db *gorm.DB, record StatusRecord, actorID, actorName string, save func(tx *gorm.DB) error) error {
	history := &model.StatusHistoryModel{
		ID:         uuid.New().String(),
		RecordType: record.RecordType(),
		RecordID:   record.RecordID(),
		FromStatus: "",
		ToStatus:   record.CurrentStatus(),
		Actor:      actorID,
		ActorName:  actorName,
		CreatedAt:  time.Now(),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := save(tx); err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to append status history: %w", err)
		}
		return nil
	})
}

// translateNotFound 将 GORM 的未找到错误翻译为服务层错误
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
