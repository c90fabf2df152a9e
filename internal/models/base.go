package models

import (
	"gorm.io/gorm"
	"time"
)

type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty" swaggerignore:"true"`
}

// Entity is a model that can be written through a repository. Fillable lists
// the column names that may be mass-assigned from caller input.
type Entity interface {
	Fillable() []string
}

// IsFillable reports whether column is in the entity's allow-list.
func IsFillable(entity Entity, column string) bool {
	for _, name := range entity.Fillable() {
		if name == column {
			return true
		}
	}
	return false
}
