package repository

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// POST /orders → create order (inside the caller's transaction)
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindDetailed returns an order hydrated with its items and their menu items.
func (r *OrderRepository) FindDetailed(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id")
	}).Preload("Items.MenuItem").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (admin)
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Preload("Items.MenuItem").Order("id").Find(&out).Error
	return out, err
}

// GET /orders (non-admin) → orders of one country only
func (r *OrderRepository) ListByCountry(country string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Preload("Items.MenuItem").
		Where("country = ?", country).Order("id").Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips the status only when the order is still in `from`.
// Rows-affected == 0 means the order already left that state; the conditional
// WHERE makes concurrent checkout/cancel of one order race-safe.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
