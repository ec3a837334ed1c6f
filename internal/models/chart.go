package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chart is keyed by CID. Number maps to the secondary numeric "id" column.
type Chart struct {
	CID    string `gorm:"column:cid;type:varchar(64);primaryKey" json:"cid"`
	Number int    `gorm:"column:id;not null;index" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	Image  string `gorm:"not null" json:"image"`
}

func (c *Chart) BeforeCreate(tx *gorm.DB) error {
	if c.CID == "" {
		c.CID = uuid.NewString()
	}
	return nil
}
