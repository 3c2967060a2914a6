package specification

import (
	"gorm.io/gorm"
)

type OwnedBy struct {
	OwnerID uint
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
