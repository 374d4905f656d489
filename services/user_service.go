package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking-backend/auth"
	"hotel-booking-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Register(username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Username: username, Email: email, Password: string(hash)}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, "", translateDuplicate(err, "username or email")
	}

	token, err := auth.NewAccessToken(user.ID, auth.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &user, token, nil
}

func (s *UserService) Login(username, password string) (*models.User, string, error) {
	var user models.User
	err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("db error during login: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, "", fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLogin = &now

	token, err := auth.NewAccessToken(user.ID, auth.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &user, token, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return &user, nil
}

func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrValidation)
	}
	user, err := s.Get(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return fmt.Errorf("%w: current password is incorrect", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.DB.Model(user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// SetAdmin flips the admin flag. Caller must already be an admin.
func (s *UserService) SetAdmin(p auth.Principal, userID uint, admin bool) (*models.User, error) {
	if !p.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(user).Update("is_admin", admin).Error; err != nil {
		return nil, fmt.Errorf("failed to update admin flag for user %d: %w", userID, err)
	}
	user.IsAdmin = admin
	return user, nil
}
