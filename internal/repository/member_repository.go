package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// MemberRepository 成员仓储接口
type MemberRepository interface {
	Save(member *model.MemberModel) error
	FindByID(id string) (*model.MemberModel, error)
	FindByCPF(cpf string) (*model.MemberModel, error)
	FindAll() ([]*model.MemberModel, error)
}

// memberRepository 成员仓储实现
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建成员仓储
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Save 保存成员
func (r *memberRepository) Save(member *model.MemberModel) error {
	return r.db.Save(member).Error
}

// FindByID 根据 ID 查找成员
func (r *memberRepository) FindByID(id string) (*model.MemberModel, error) {
	var member model.MemberModel
	if err := r.db.Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByCPF 根据 CPF 查找成员,导入去重使用
func (r *memberRepository) FindByCPF(cpf string) (*model.MemberModel, error) {
	var member model.MemberModel
	if err := r.db.Where("cpf = ?", cpf).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindAll 查找所有成员
func (r *memberRepository) FindAll() ([]*model.MemberModel, error) {
	var members []*model.MemberModel
	err := r.db.Order("name ASC").Find(&members).Error
	return members, err
}
