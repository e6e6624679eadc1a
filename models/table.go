package models

import "time"

type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    string    `gorm:"type:varchar(50);not null" json:"number"`
	Capacity  int       `gorm:"not null;default:2" json:"capacity"`
	Status    string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"` // available / unavailable
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
