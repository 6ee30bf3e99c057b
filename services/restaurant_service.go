package services

import (
	"errors"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/repository"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// List narrows the result set to the principal's country unless they are an
// admin. Lists filter silently; they never reject.
func (s *RestaurantService) List(principal *entity.User) ([]entity.Restaurant, error) {
	if principal.Role == entity.RoleAdmin {
		return s.Repo.ListAll()
	}
	return s.Repo.ListByCountry(principal.Country)
}

// Get rejects with ErrForbidden when the residency check fails — a wrong
// country on a by-id fetch is an authorization failure, not an empty result.
func (s *RestaurantService) Get(principal *entity.User, id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanAccessCountry(principal, rest.Country) {
		return nil, ErrForbidden
	}
	return rest, nil
}
