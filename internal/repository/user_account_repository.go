package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// UserAccountRepository 用户账户仓储接口
type UserAccountRepository interface {
	Save(account *model.UserAccountModel) error
	FindByID(id string) (*model.UserAccountModel, error)
	FindByEmail(email string) (*model.UserAccountModel, error)
	FindByProfessionalID(professionalID string) (*model.UserAccountModel, error)
}

// userAccountRepository 用户账户仓储实现
type userAccountRepository struct {
	db *gorm.DB
}

// NewUserAccountRepository 创建用户账户仓储
func NewUserAccountRepository(db *gorm.DB) UserAccountRepository {
	return &userAccountRepository{db: db}
}

// Save 保存用户账户
func (r *userAccountRepository) Save(account *model.UserAccountModel) error {
	return r.db.Save(account).Error
}

// FindByID 根据 ID 查找用户账户
func (r *userAccountRepository) FindByID(id string) (*model.UserAccountModel, error) {
	var account model.UserAccountModel
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail 根据邮箱查找用户账户
func (r *userAccountRepository) FindByEmail(email string) (*model.UserAccountModel, error) {
	var account model.UserAccountModel
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByProfessionalID 根据专业人员 ID 查找用户账户,通知投递使用
func (r *userAccountRepository) FindByProfessionalID(professionalID string) (*model.UserAccountModel, error) {
	var account model.UserAccountModel
	if err := r.db.Where("professional_id = ?", professionalID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
