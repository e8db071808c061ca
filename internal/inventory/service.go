// Package inventory implements the mutation workflow for stock items:
// validation, status derivation, persistence and audit emission.
package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stocktrack/internal/activity"
	"stocktrack/internal/models"
	"stocktrack/internal/query"
)

type Service struct {
	db   *gorm.DB
	sink *activity.Sink
	lg   *zap.SugaredLogger
}

func NewService(db *gorm.DB, sink *activity.Sink, lg *zap.SugaredLogger) *Service {
	return &Service{db: db, sink: sink, lg: lg}
}

type CreateInput struct {
	Name          string     `json:"name"`
	Quantity      int        `json:"quantity"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	Price         *float64   `json:"price"`
	Supplier      *string    `json:"supplier"`
	SerialNumber  *string    `json:"serialNumber"`
	LastRestocked *time.Time `json:"lastRestocked"`
	Image         *string    `json:"image"`
}

type UpdateInput struct {
	Name          *string    `json:"name"`
	Quantity      *int       `json:"quantity"`
	Category      *string    `json:"category"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price"`
	Supplier      *string    `json:"supplier"`
	SerialNumber  *string    `json:"serialNumber"`
	LastRestocked *time.Time `json:"lastRestocked"`
	Image         *string    `json:"image"`
}

// Create validates and persists a new item, deriving its status from the
// quantity, then records an item_added activity entry.
func (s *Service) Create(in CreateInput, actor string) (*models.InventoryItem, error) {
	if verr := validateItemInput(in); verr != nil {
		return nil, verr
	}
	item := models.InventoryItem{
		Name:          strings.TrimSpace(in.Name),
		Quantity:      in.Quantity,
		Category:      strings.TrimSpace(in.Category),
		Status:        StatusForQuantity(in.Quantity),
		Description:   strings.TrimSpace(in.Description),
		Price:         in.Price,
		Supplier:      in.Supplier,
		SerialNumber:  in.SerialNumber,
		LastRestocked: in.LastRestocked,
		Image:         in.Image,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	s.record(models.ActivityItemAdded, actor, item.Name,
		fmt.Sprintf("Added new item: %s (Quantity: %d, Category: %s)", item.Name, item.Quantity, item.Category))
	return &item, nil
}

// Update merges the changes into the stored record, recomputes status from
// the merged quantity and records a human-readable change description.
// Concurrent updates to the same id are last-write-wins; the description
// always compares against the state read just before the write.
func (s *Service) Update(id string, in UpdateInput, actor string) (*models.InventoryItem, error) {
	if verr := validateItemChanges(in); verr != nil {
		return nil, verr
	}
	var old models.InventoryItem
	if err := s.db.First(&old, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item := old
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		item.Price = in.Price
	}
	if in.Supplier != nil {
		item.Supplier = in.Supplier
	}
	if in.SerialNumber != nil {
		item.SerialNumber = in.SerialNumber
	}
	if in.LastRestocked != nil {
		item.LastRestocked = in.LastRestocked
	}
	if in.Image != nil {
		item.Image = in.Image
	}
	item.Status = StatusForQuantity(item.Quantity)
	item.UpdatedAt = time.Now()
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	s.record(models.ActivityItemUpdated, actor, item.Name, changeDescription(&old, &item))
	return &item, nil
}

// Delete removes the item permanently, capturing its fields for the audit
// entry before the row is gone.
func (s *Service) Delete(id string, actor string) error {
	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.db.Delete(&models.InventoryItem{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.record(models.ActivityItemDeleted, actor, item.Name,
		fmt.Sprintf("Deleted item: %s (Quantity: %d, Category: %s)", item.Name, item.Quantity, item.Category))
	return nil
}

// Archive hides the item from default listings and statistics without
// deleting it.
func (s *Service) Archive(id string, actor string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	now := time.Now()
	by := actor
	if by == "" {
		by = "Unknown User"
	}
	item.IsArchived = true
	item.ArchivedAt = &now
	item.ArchivedBy = &by
	item.UpdatedAt = now
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	s.record(models.ActivityItemArchived, actor, item.Name, "Archived item: "+item.Name)
	return &item, nil
}

// Restore returns an archived item to the active set and clears the
// archive metadata.
func (s *Service) Restore(id string, actor string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item.IsArchived = false
	item.ArchivedAt = nil
	item.ArchivedBy = nil
	item.UpdatedAt = time.Now()
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	s.record(models.ActivityItemRestored, actor, item.Name, "Restored item: "+item.Name)
	return &item, nil
}

func (s *Service) Get(id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List returns one page of active items.
func (s *Service) List(p query.ListParams) ([]models.InventoryItem, query.Pagination, error) {
	filter := func() *gorm.DB {
		q := s.db.Model(&models.InventoryItem{}).Where("is_archived = ?", false)
		return applySearch(q, p.Search)
	}
	var total int64
	if err := filter().Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}
	items := []models.InventoryItem{}
	err := filter().Order(p.OrderClause()).Limit(p.Limit).Offset(p.Offset()).Find(&items).Error
	return items, query.Paginate(total, p.Page, p.Limit), err
}

// ListArchived returns one page of archived items, most recently archived
// first.
func (s *Service) ListArchived(p query.ListParams) ([]models.InventoryItem, query.Pagination, error) {
	filter := func() *gorm.DB {
		q := s.db.Model(&models.InventoryItem{}).Where("is_archived = ?", true)
		return applySearch(q, p.Search)
	}
	var total int64
	if err := filter().Count(&total).Error; err != nil {
		return nil, query.Pagination{}, err
	}
	items := []models.InventoryItem{}
	err := filter().Order("archived_at desc").Limit(p.Limit).Offset(p.Offset()).Find(&items).Error
	return items, query.Paginate(total, p.Page, p.Limit), err
}

// applySearch adds the case-insensitive substring match across name,
// category and description.
func applySearch(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}
	pat := "%" + strings.ToLower(search) + "%"
	return q.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?", pat, pat, pat)
}

// record appends an activity entry. Failures are logged and swallowed:
// the primary mutation has already committed and must not be rolled back
// or fail because of the audit write.
func (s *Service) record(typ, actor, itemName, description string) {
	if actor == "" {
		actor = "Unknown User"
	}
	entry := models.ActivityLog{Type: typ, User: actor, ItemName: itemName, Description: description}
	if err := s.sink.Append(&entry); err != nil {
		s.lg.Errorw("activity log write failed", "type", typ, "item", itemName, "error", err)
	}
}

// changeDescription builds the comma-joined diff recorded with
// item_updated entries.
func changeDescription(old, cur *models.InventoryItem) string {
	var changes []string
	if old.Name != cur.Name {
		changes = append(changes, fmt.Sprintf("name from %q to %q", old.Name, cur.Name))
	}
	if old.Quantity != cur.Quantity {
		changes = append(changes, fmt.Sprintf("quantity from %d to %d", old.Quantity, cur.Quantity))
	}
	if old.Category != cur.Category {
		changes = append(changes, fmt.Sprintf("category from %q to %q", old.Category, cur.Category))
	}
	if !priceEqual(old.Price, cur.Price) {
		changes = append(changes, fmt.Sprintf("price from $%s to $%s", formatPrice(old.Price), formatPrice(cur.Price)))
	}
	if old.Status != cur.Status {
		changes = append(changes, fmt.Sprintf("status from %q to %q", old.Status, cur.Status))
	}
	if len(changes) == 0 {
		return "Updated item: " + cur.Name
	}
	return "Updated " + strings.Join(changes, ", ")
}

func priceEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func formatPrice(p *float64) string {
	if p == nil {
		return "0"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
