package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// AssistedRepository 受助者仓储接口
type AssistedRepository interface {
	Save(assisted *model.AssistedModel) error
	FindByID(id string) (*model.AssistedModel, error)
	FindByCPF(cpf string) (*model.AssistedModel, error)
	FindAll() ([]*model.AssistedModel, error)
}

// assistedRepository 受助者仓储实现
type assistedRepository struct {
	db *gorm.DB
}

// NewAssistedRepository 创建受助者仓储
func NewAssistedRepository(db *gorm.DB) AssistedRepository {
	return &assistedRepository{db: db}
}

// Save 保存受助者
func (r *assistedRepository) Save(assisted *model.AssistedModel) error {
	return r.db.Save(assisted).Error
}

// FindByID 根据 ID 查找受助者
func (r *assistedRepository) FindByID(id string) (*model.AssistedModel, error) {
	var assisted model.AssistedModel
	if err := r.db.Where("id = ?", id).First(&assisted).Error; err != nil {
		return nil, err
	}
	return &assisted, nil
}

// FindByCPF 根据 CPF 查找受助者,导入去重使用
func (r *assistedRepository) FindByCPF(cpf string) (*model.AssistedModel, error) {
	var assisted model.AssistedModel
	if err := r.db.Where("cpf = ?", cpf).First(&assisted).Error; err != nil {
		return nil, err
	}
	return &assisted, nil
}

// FindAll 查找所有受助者
func (r *assistedRepository) FindAll() ([]*model.AssistedModel, error) {
	var assisteds []*model.AssistedModel
	err := r.db.Order("name ASC").Find(&assisteds).Error
	return assisteds, err
}
