package services

import (
	"errors"
	"strings"
	"time"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/repository"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles login and profile lookup.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login verifies the credentials and issues a JWT. Unknown username and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// GetProfile
func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
