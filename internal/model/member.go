package model

import (
	"errors"
	"time"
)

// MemberModel 教会成员数据模型
type MemberModel struct {
	ID             string     `gorm:"primaryKey;type:varchar(64)"`
	Name           string     `gorm:"type:varchar(255);not null;index"`
	// 国家身份证号(CPF)。唯一性只对非空值生效:没有 CPF 的记录存空串,不参与索引
	CPF            string     `gorm:"type:varchar(14);index:idx_members_cpf,unique,where:cpf <> ''"`
	Email          string     `gorm:"type:varchar(255)"`
	Phone          string     `gorm:"type:varchar(32)"`
	BirthDate      *time.Time `gorm:""`
	Address        string     `gorm:"type:text"`
	Baptized       bool       `gorm:"not null;default:false"`
	MemberSince    *time.Time `gorm:""`
	Active         bool       `gorm:"not null;default:true;index"`
	LegacyKey      string     `gorm:"type:varchar(64);index"` // 旧系统记录键
	CreatedAt      time.Time  `gorm:"not null;index"`
	UpdatedAt      time.Time  `gorm:"not null"`
	CreatedBy      string     `gorm:"type:varchar(64);index"`
	UpdatedBy      string     `gorm:"type:varchar(64)"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// Validate 验证成员模型
func (m *MemberModel) Validate() error {
	if m.ID == "" {
		return errors.New("member ID is required")
	}
	if m.Name == "" {
		return errors.New("member name is required")
	}
	return nil
}
