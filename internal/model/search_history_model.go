package model

import (
	"time"

	"gorm.io/datatypes"
)

type SearchHistory struct {
	Id          uint           `gorm:"primaryKey;autoIncrement"`
	PromptTitle string         `gorm:"type:varchar(255);not null"`
	Summary     string         `gorm:"type:text"`
	Hyperlinks  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index:idx_history_owner_created,priority:2,sort:desc"`
	OwnerId     uint           `gorm:"not null;index:idx_history_owner_created,priority:1"`

	Owner *User `gorm:"foreignKey:OwnerId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (SearchHistory) TableName() string {
	return "history"
}
