package model

import (
	"errors"
	"time"
)

// HelpRequestStatus 求助请求状态
type HelpRequestStatus string

const (
	StatusPendente  HelpRequestStatus = "pendente"   // 待处理
	StatusEmAnalise HelpRequestStatus = "em_analise" // 分析中
	StatusAceito    HelpRequestStatus = "aceito"     // 已接受
	StatusRecusado  HelpRequestStatus = "recusado"   // 已拒绝(终态,保留记录)
	StatusConcluido HelpRequestStatus = "concluido"  // 已完成
	StatusCancelado HelpRequestStatus = "cancelado"  // 已取消(终态,保留记录)
)

// ValidHelpRequestStatus 检查状态枚举值是否合法
// 注意: 只校验枚举成员,不校验流转顺序,流转合法性由调用方负责
func ValidHelpRequestStatus(s HelpRequestStatus) bool {
	switch s {
	case StatusPendente, StatusEmAnalise, StatusAceito, StatusRecusado, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

// HelpRequestModel 专业人员间求助请求数据模型
type HelpRequestModel struct {
	ID               string    `gorm:"primaryKey;type:varchar(64)"`
	RequesterID      string    `gorm:"type:varchar(64);not null;index"` // 发起人 ID
	RequesterName    string    `gorm:"type:varchar(255);not null"`
	ProfessionalID   string    `gorm:"type:varchar(64);not null;index"` // 目标专业人员 ID
	ProfessionalName string    `gorm:"type:varchar(255);not null"`
	Specialty        string    `gorm:"type:varchar(32);not null;index"` // psicologica/social/juridica/medica
	Description      string    `gorm:"type:text"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt        time.Time `gorm:"not null;index"`
	UpdatedAt        time.Time `gorm:"not null"`
	CreatedBy        string    `gorm:"type:varchar(64);index"`
	UpdatedBy        string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (HelpRequestModel) TableName() string {
	return "help_requests"
}

// Validate 验证求助请求模型
func (hr *HelpRequestModel) Validate() error {
	if hr.ID == "" {
		return errors.New("help request ID is required")
	}
	if hr.RequesterID == "" {
		return errors.New("requester ID is required")
	}
	if hr.ProfessionalID == "" {
		return errors.New("professional ID is required")
	}
	if hr.Status == "" {
		return errors.New("help request status is required")
	}
	return nil
}

// RecordType 记录类型标识
func (HelpRequestModel) RecordType() string {
	return "help_request"
}

// RecordID 记录 ID
func (hr *HelpRequestModel) RecordID() string {
	return hr.ID
}

// CurrentStatus 当前状态
func (hr *HelpRequestModel) CurrentStatus() string {
	return hr.Status
}

// ApplyStatus 更新状态及审计字段
func (hr *HelpRequestModel) ApplyStatus(status, actorID string, now time.Time) {
	hr.Status = status
	hr.UpdatedBy = actorID
	hr.UpdatedAt = now
}
