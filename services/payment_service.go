package services

import (
	"errors"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/repository"
	"gorm.io/gorm"
)

type PaymentService struct {
	Repo *repository.PaymentRepository
}

func NewPaymentService(repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{Repo: repo}
}

// List shows an admin every payment method; everyone else sees only rows
// they own.
func (s *PaymentService) List(principal *entity.User) ([]entity.PaymentMethod, error) {
	if principal.Role == entity.RoleAdmin {
		return s.Repo.ListAll()
	}
	return s.Repo.ListByUser(principal.ID)
}

// UpdateType is admin-only and changes nothing but the type field.
func (s *PaymentService) UpdateType(principal *entity.User, id uint, pmType string) (*entity.PaymentMethod, error) {
	if !RoleAllowed(principal, entity.RoleAdmin) {
		return nil, ErrForbidden
	}

	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.Repo.UpdateType(id, pmType); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}
