package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
	"github.com/roypriyanshu02/graphic-walker-app/internal/utils"
)

const minPasswordLength = 6

type UserStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserStore(db *gorm.DB, logger *zap.Logger) *UserStore {
	return &UserStore{db: db, logger: logger}
}

// Register creates a user with a bcrypt password hash. The plaintext is
// never stored.
func (s *UserStore) Register(email, password, name string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, validationErr("email", "a valid email address is required")
	}
	if len(password) < minPasswordLength {
		return nil, validationErr("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("email", email))
	return &user, nil
}

// Login verifies credentials and stamps last_login_at. Unknown email and
// wrong password fail identically so accounts cannot be enumerated; the
// hash comparison runs in both cases to keep timing flat.
func (s *UserStore) Login(email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user entity.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CheckPassword(dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLoginAt = &now

	s.logger.Info("User logged in", zap.String("email", email))
	return &user, nil
}

func (s *UserStore) GetByID(id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Bcrypt hash of an unguessable throwaway value, compared against when
// the email does not exist.
var dummyHash = func() string {
	h, _ := utils.HashPassword(uuid.NewString())
	return h
}()
