package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock status values derived from quantity. Nothing outside the
// inventory service sets these directly.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

// Activity types recorded for inventory mutations.
const (
	ActivityItemAdded    = "item_added"
	ActivityItemUpdated  = "item_updated"
	ActivityItemDeleted  = "item_deleted"
	ActivityItemArchived = "item_archived"
	ActivityItemRestored = "item_restored"
)

func ValidActivityType(t string) bool {
	switch t {
	case ActivityItemAdded, ActivityItemUpdated, ActivityItemDeleted, ActivityItemArchived, ActivityItemRestored:
		return true
	}
	return false
}

type InventoryItem struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Quantity      int        `gorm:"not null;default:0" json:"quantity"`
	Category      string     `gorm:"not null;index" json:"category"`
	Status        string     `gorm:"not null" json:"status"`
	Description   string     `gorm:"size:500" json:"description"`
	Price         *float64   `json:"price,omitempty"`
	Supplier      *string    `json:"supplier,omitempty"`
	SerialNumber  *string    `json:"serialNumber,omitempty"`
	LastRestocked *time.Time `json:"lastRestocked,omitempty"`
	Image         *string    `json:"image,omitempty"`
	IsArchived    bool       `gorm:"not null;default:false;index" json:"isArchived"`
	ArchivedAt    *time.Time `json:"archivedAt,omitempty"`
	ArchivedBy    *string    `json:"archivedBy,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// IDs are assigned in the application so the sqlite demo store works
// without a database-side uuid function.
func (i *InventoryItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type Category struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:200" json:"description,omitempty"`
	Color       string    `gorm:"size:7;not null;default:#3b82f6" json:"color"`
	Icon        string    `json:"icon,omitempty"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ActivityLog rows are append-only; the application never updates or
// deletes them.
type ActivityLog struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string    `gorm:"not null;index" json:"type"`
	User        string    `gorm:"column:username;not null" json:"user"`
	ItemName    string    `json:"itemName"`
	Description string    `json:"description"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
}

func (a *ActivityLog) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `json:"fullName"`
	Role         string    `gorm:"not null;default:employee" json:"role"`
	IsActive     bool      `gorm:"not null" json:"isActive"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
