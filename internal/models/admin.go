// internal/models/admin.go
package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminUser can log into the back-office. Shoppers have no accounts.
type AdminUser struct {
	BaseModel
	Username     string `json:"username" gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
}

func (u *AdminUser) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *AdminUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SiteSetting is a key-value store for knobs editable from the admin
// panel (site title, delivery charge and so on).
type SiteSetting struct {
	BaseModel
	Key   string `json:"key" gorm:"size:100;not null;uniqueIndex"`
	Value string `json:"value" gorm:"type:text"`
}

// AuditLog records admin-triggered mutations.
type AuditLog struct {
	BaseModel
	AdminID      *uuid.UUID `json:"admin_id,omitempty" gorm:"type:uuid;index"`
	Action       string     `json:"action" gorm:"size:255;not null"`
	ResourceType string     `json:"resource_type" gorm:"size:50;index"`
	ResourceID   *uuid.UUID `json:"resource_id,omitempty" gorm:"type:uuid"`
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	UserAgent    string     `json:"user_agent" gorm:"size:500"`
	NewValues    JSONB      `json:"new_values,omitempty" gorm:"type:jsonb"`
}
