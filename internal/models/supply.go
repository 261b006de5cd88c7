package models

import "time"

// Supply is a stock item held against a specific need. The reliability
// fields (fail rate, life cycle, demand per life cycle) are stored as
// given; no sufficiency math is performed on them.
type Supply struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:50;not null" json:"supply_name"`
	Quantity           int       `gorm:"not null" json:"supply_quantity"`
	Frequency          int       `gorm:"not null" json:"supply_frequency"`
	FailRate           int       `gorm:"not null" json:"supply_fail_rate"`
	LifeCycle          int       `gorm:"not null" json:"supply_life_cycle"`
	DemandPerLifeCycle int       `gorm:"not null" json:"need_demand_per_life_cycle"`
	NeedID             uint      `gorm:"not null;index" json:"need_id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Supply) TableName() string {
	return "supplies"
}
