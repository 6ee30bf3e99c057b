package services

import (
	"errors"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	Items []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

// ----- Create -----

// Create validates every line item before anything is written: each menu item
// must exist and its restaurant's country must pass the residency check. Only
// then are the order and its items persisted, in one transaction, so a failed
// request leaves no partial order behind. The order snapshots the principal's
// country at this instant.
func (s *OrderService) Create(principal *entity.User, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	resolved := make([]*entity.MenuItem, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := s.RestRepo.FindMenuItem(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if !CanAccessCountry(principal, item.Restaurant.Country) {
			return nil, ErrForbidden
		}
		resolved = append(resolved, item)
	}

	order := entity.Order{
		Status:  entity.OrderPending,
		Country: principal.Country,
		UserID:  principal.ID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i, item := range resolved {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.ID,
				Quantity:   req.Items[i].Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindDetailed(order.ID)
}

// ----- List -----

func (s *OrderService) List(principal *entity.User) ([]entity.Order, error) {
	if principal.Role == entity.RoleAdmin {
		return s.Repo.ListAll()
	}
	return s.Repo.ListByCountry(principal.Country)
}

// ----- Transitions -----

// Checkout flips a pending order to COMPLETED.
func (s *OrderService) Checkout(principal *entity.User, orderID uint) (*entity.Order, error) {
	return s.transition(principal, orderID, entity.OrderCompleted)
}

// Cancel flips a pending order to CANCELLED.
func (s *OrderService) Cancel(principal *entity.User, orderID uint) (*entity.Order, error) {
	return s.transition(principal, orderID, entity.OrderCancelled)
}

// transition applies the full checkout/cancel protocol: role gate, then load,
// then residency check, then a guarded PENDING → target update. A zero
// rows-affected result means the order already reached a terminal state, which
// surfaces as ErrConflict. The guard also serializes concurrent checkout and
// cancel of the same order: only one of them finds the row still PENDING.
func (s *OrderService) transition(principal *entity.User, orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !RoleAllowed(principal, entity.RoleAdmin, entity.RoleManager) {
		return nil, ErrForbidden
	}

	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanAccessCountry(principal, order.Country) {
		return nil, ErrForbidden
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, entity.OrderPending, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindDetailed(order.ID)
}
