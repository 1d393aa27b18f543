package entity

import (
	"time"
)

// Region is a sales territory, optionally headed by a manager user.
type Region struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Code      string    `json:"code" gorm:"size:20"`
	State     string    `json:"state" gorm:"size:100"`
	Country   string    `json:"country" gorm:"size:100;default:India"`
	ManagerID *string   `json:"manager_id" gorm:"type:uuid"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Manager *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
}

func (Region) TableName() string {
	return "regions"
}
