package specification

import (
	"gorm.io/gorm"
)

// ByUsername matches the username exactly, case-sensitive.
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}
