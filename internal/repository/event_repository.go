package repository

import (
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"gorm.io/gorm"
)

// EventRepository 活动仓储接口
type EventRepository interface {
	Save(event *model.EventModel) error
	FindByID(id string) (*model.EventModel, error)
	FindByLegacyKey(key string) (*model.EventModel, error)
	FindAll() ([]*model.EventModel, error)
}

// eventRepository 活动仓储实现
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建活动仓储
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Save 保存活动
func (r *eventRepository) Save(event *model.EventModel) error {
	return r.db.Save(event).Error
}

// FindByID 根据 ID 查找活动
func (r *eventRepository) FindByID(id string) (*model.EventModel, error) {
	var event model.EventModel
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByLegacyKey 根据旧系统键查找活动,导入去重使用
func (r *eventRepository) FindByLegacyKey(key string) (*model.EventModel, error) {
	var event model.EventModel
	if err := r.db.Where("legacy_key = ?", key).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll 查找所有活动
func (r *eventRepository) FindAll() ([]*model.EventModel, error) {
	var events []*model.EventModel
	err := r.db.Order("starts_at ASC").Find(&events).Error
	return events, err
}

// TransactionRepository 财务流水仓储接口
type TransactionRepository interface {
	Save(tx *model.TransactionModel) error
	FindByLegacyKey(key string) (*model.TransactionModel, error)
	FindAll() ([]*model.TransactionModel, error)
}

// transactionRepository 财务流水仓储实现
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository 创建财务流水仓储
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Save 保存流水
func (r *transactionRepository) Save(tx *model.TransactionModel) error {
	return r.db.Save(tx).Error
}

// FindByLegacyKey 根据旧系统键查找流水,导入去重使用
func (r *transactionRepository) FindByLegacyKey(key string) (*model.TransactionModel, error) {
	var tx model.TransactionModel
	if err := r.db.Where("legacy_key = ?", key).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// FindAll 查找所有流水
func (r *transactionRepository) FindAll() ([]*model.TransactionModel, error) {
	var txs []*model.TransactionModel
	err := r.db.Order("occurred_at ASC").Find(&txs).Error
	return txs, err
}
