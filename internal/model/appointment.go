package model

import (
	"errors"
	"time"
)

// AppointmentStatus 预约状态
type AppointmentStatus string

const (
	AppointmentAgendado   AppointmentStatus = "agendado"   // 已排期
	AppointmentConfirmado AppointmentStatus = "confirmado" // 已确认
	AppointmentConcluido  AppointmentStatus = "concluido"  // 已完成
	AppointmentCancelado  AppointmentStatus = "cancelado"  // 已取消
)

// ValidAppointmentStatus 检查预约状态枚举值是否合法
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentAgendado, AppointmentConfirmado, AppointmentConcluido, AppointmentCancelado:
		return true
	}
	return false
}

// AppointmentModel 援助服务预约数据模型
type AppointmentModel struct {
	ID               string    `gorm:"primaryKey;type:varchar(64)"`
	PersonName       string    `gorm:"type:varchar(255);not null"`
	PersonPhone      string    `gorm:"type:varchar(32)"`
	ProfessionalID   string    `gorm:"type:varchar(64);index"`
	ProfessionalName string    `gorm:"type:varchar(255)"`
	ServiceType      string    `gorm:"type:varchar(32);not null;index"` // psicologica/social/juridica/medica
	ScheduledAt      time.Time `gorm:"not null;index"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
	Notes            string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null;index"`
	UpdatedAt        time.Time `gorm:"not null"`
	CreatedBy        string    `gorm:"type:varchar(64);index"`
	UpdatedBy        string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (AppointmentModel) TableName() string {
	return "appointments"
}

// Validate 验证预约模型
func (a *AppointmentModel) Validate() error {
	if a.ID == "" {
		return errors.New("appointment ID is required")
	}
	if a.PersonName == "" {
		return errors.New("person name is required")
	}
	if a.ServiceType == "" {
		return errors.New("service type is required")
	}
	if a.Status == "" {
		return errors.New("appointment status is required")
	}
	return nil
}

// RecordType 记录类型标识
func (AppointmentModel) RecordType() string {
	return "appointment"
}

// RecordID 记录 ID
func (a *AppointmentModel) RecordID() string {
	return a.ID
}

// CurrentStatus 当前状态
func (a *AppointmentModel) CurrentStatus() string {
	return a.Status
}

// ApplyStatus 更新状态及审计字段
func (a *AppointmentModel) ApplyStatus(status, actorID string, now time.Time) {
	a.Status = status
	a.UpdatedBy = actorID
	a.UpdatedAt = now
}
