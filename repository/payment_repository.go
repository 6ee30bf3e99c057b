package repository

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// GET /payment-methods (admin)
func (r *PaymentRepository) ListAll() ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

// GET /payment-methods (non-admin) → own rows only
func (r *PaymentRepository) ListByUser(userID uint) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) FindByID(id uint) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	if err := r.DB.First(&pm, id).Error; err != nil {
		return nil, err
	}
	return &pm, nil
}

// PUT /payment-methods/:id → only the type field is mutable
func (r *PaymentRepository) UpdateType(id uint, pmType string) error {
	return r.DB.Model(&entity.PaymentMethod{}).
		Where("id = ?", id).
		Update("type", pmType).Error
}
