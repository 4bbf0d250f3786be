package model

import (
	"errors"
	"time"
)

// AssistedModel 受助者数据模型
// 对应旧系统的 assistidos 集合,接受援助服务的人员
type AssistedModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	// 唯一性只对非空 CPF 生效,允许多条无 CPF 的记录
	CPF       string    `gorm:"type:varchar(14);index:idx_assisted_cpf,unique,where:cpf <> ''"`
	Phone     string    `gorm:"type:varchar(32)"`
	Address   string    `gorm:"type:text"`
	Notes     string    `gorm:"type:text"`
	LegacyKey string    `gorm:"type:varchar(64);index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"type:varchar(64);index"`
	UpdatedBy string    `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (AssistedModel) TableName() string {
	return "assisted"
}

// Validate 验证受助者模型
func (a *AssistedModel) Validate() error {
	if a.ID == "" {
		return errors.New("assisted ID is required")
	}
	if a.Name == "" {
		return errors.New("assisted name is required")
	}
	return nil
}
