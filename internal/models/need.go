package models

import "time"

// Need is a recurring requirement owned by exactly one user.
// Frequency is occurrences per period; Quantity is the amount
// consumed per occurrence.
type Need struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"need_name"`
	Frequency int       `gorm:"not null" json:"need_frequency"`
	Quantity  int       `gorm:"not null" json:"need_quantity"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Need) TableName() string {
	return "needs"
}
