package inventory

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stocktrack/internal/models"
)

// CategoryService manages the category list. Item records carry a
// denormalized copy of the category name, so renames cascade and deletes
// are guarded by the live reference count.
type CategoryService struct {
	db *gorm.DB
	lg *zap.SugaredLogger
}

func NewCategoryService(db *gorm.DB, lg *zap.SugaredLogger) *CategoryService {
	return &CategoryService{db: db, lg: lg}
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
}

// List returns active categories ordered by name.
func (s *CategoryService) List() ([]models.Category, error) {
	cats := []models.Category{}
	err := s.db.Where("is_active = ?", true).Order("LOWER(name) asc").Find(&cats).Error
	return cats, err
}

func (s *CategoryService) Create(in CategoryInput) (*models.Category, error) {
	if verr := validateCategoryInput(in); verr != nil {
		return nil, verr
	}
	name := strings.TrimSpace(in.Name)
	var count int64
	if err := s.db.Model(&models.Category{}).Where("LOWER(name) = ?", strings.ToLower(name)).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateCategory
	}
	cat := models.Category{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Color:       in.Color,
		Icon:        in.Icon,
		IsActive:    true,
	}
	if cat.Color == "" {
		cat.Color = "#3b82f6"
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// Get returns one category along with the number of inventory items
// (archived included) referencing its name.
func (s *CategoryService) Get(id string) (*models.Category, int64, error) {
	var cat models.Category
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	count, err := s.referenceCount(s.db, cat.Name)
	if err != nil {
		return nil, 0, err
	}
	return &cat, count, nil
}

// Update applies the changes and, when the name changes, rewrites every
// inventory item carrying the old name in the same transaction.
func (s *CategoryService) Update(id string, in CategoryInput) (*models.Category, error) {
	if verr := validateCategoryInput(in); verr != nil {
		return nil, verr
	}
	var cat models.Category
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	oldName := cat.Name
	newName := strings.TrimSpace(in.Name)
	cat.Name = newName
	cat.Description = strings.TrimSpace(in.Description)
	if in.Color != "" {
		cat.Color = in.Color
	}
	cat.Icon = in.Icon
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&cat).Error; err != nil {
			return err
		}
		if newName != oldName {
			res := tx.Model(&models.InventoryItem{}).Where("category = ?", oldName).Update("category", newName)
			if res.Error != nil {
				return res.Error
			}
			s.lg.Infow("category renamed", "from", oldName, "to", newName, "items", res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete removes a category only when no inventory item, archived or not,
// still references its name.
func (s *CategoryService) Delete(id string) error {
	var cat models.Category
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	count, err := s.referenceCount(s.db, cat.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return &CategoryInUseError{ItemCount: count}
	}
	return s.db.Delete(&models.Category{}, "id = ?", id).Error
}

func (s *CategoryService) referenceCount(db *gorm.DB, name string) (int64, error) {
	var count int64
	err := db.Model(&models.InventoryItem{}).Where("category = ?", name).Count(&count).Error
	return count, err
}
