package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID       string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name     string `gorm:"index;not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
