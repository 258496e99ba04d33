package catalog

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/yusufstudio18-creator-1/yusuf-market/internal/models"
)

var ErrNotFound = stderrors.New("product not found")

// Service — публичный каталог и товары продавца.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListProducts — поиск подстрокой по имени (без учёта регистра) плюс точный
// фильтр по категории; оба опциональны и складываются через AND.
func (s *Service) ListProducts(ctx context.Context, query, category string) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{})
	if query != "" {
		q = q.Where("lower(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []models.Product
	if err := q.Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return items, nil
}

// ListCategories — все различные категории, для выпадающего фильтра.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := s.db.WithContext(ctx).Model(&models.Product{}).
		Distinct().Pluck("category", &cats).Error
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return cats, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var item models.Product
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return &item, nil
}

// AddProduct создаёт товар от имени владельца. Цена уже проверена на границе.
func (s *Service) AddProduct(ctx context.Context, ownerID, name string, price float64, description, category, paymentLink string) (*models.Product, error) {
	item := models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       price,
		Description: description,
		Category:    category,
		PaymentLink: paymentLink,
		SellerID:    ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	return &item, nil
}

func (s *Service) ListOwnProducts(ctx context.Context, ownerID string) ([]models.Product, error) {
	var items []models.Product
	err := s.db.WithContext(ctx).Where("seller_id = ?", ownerID).Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "list own products")
	}
	return items, nil
}

// DeleteProduct удаляет только товар владельца; чужой или несуществующий id —
// тихий no-op, без ошибки.
func (s *Service) DeleteProduct(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", id, ownerID).
		Delete(&models.Product{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete product")
	}
	return nil
}
