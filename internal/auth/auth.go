package auth

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/yusufstudio18-creator-1/yusuf-market/internal/models"
)

var (
	ErrUsernameTaken      = stderrors.New("username taken")
	ErrInvalidCredentials = stderrors.New("invalid credentials")
)

// Service — регистрация и проверка логина продавцов.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register создаёт продавца с новым uuid. Имя должно быть свободно.
func (s *Service) Register(ctx context.Context, username, password string) (*models.Seller, error) {
	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.Seller{}).
		Where("username = ?", username).Count(&cnt).Error; err != nil {
		return nil, errors.Wrap(err, "count sellers")
	}
	if cnt > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	seller := models.Seller{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(&seller).Error; err != nil {
		return nil, errors.Wrap(err, "create seller")
	}
	return &seller, nil
}

// Login возвращает продавца, если пара username/password верна.
// Неизвестное имя и неверный пароль снаружи неразличимы.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Seller, error) {
	var seller models.Seller
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&seller).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "find seller")
	}
	if !models.CheckPassword(seller.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &seller, nil
}
