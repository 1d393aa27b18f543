package entity

import (
	"time"
)

// Role values
const (
	RoleSuperAdmin      = "super_admin"
	RoleAdmin           = "admin"
	RoleRegionalOfficer = "regional_officer"
	RoleManager         = "manager"
	RoleSalesExecutive  = "sales_executive"
	RoleServiceStaff    = "service_staff"
)

// roleHierarchy ranks roles; a higher rank administers lower ones.
// Sales executives and service staff cannot manage anyone.
var roleHierarchy = map[string]int{
	RoleSuperAdmin:      6,
	RoleAdmin:           5,
	RoleRegionalOfficer: 4,
	RoleManager:         3,
	RoleSalesExecutive:  0,
	RoleServiceStaff:    0,
}

// RoleRank returns the hierarchy rank for a role; unknown roles rank 0.
func RoleRank(role string) int {
	return roleHierarchy[role]
}

// CanManageRole reports whether actorRole may create, edit or delete users
// holding targetRole. The actor must rank strictly higher.
func CanManageRole(actorRole, targetRole string) bool {
	return RoleRank(actorRole) > RoleRank(targetRole)
}

func ValidRole(role string) bool {
	_, ok := roleHierarchy[role]
	return ok
}

// User is a staff account for the admin panel.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username     string     `json:"username" gorm:"size:50;not null;uniqueIndex"`
	Email        string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:128;not null"`
	Role         string     `json:"role" gorm:"size:30;not null;default:sales_executive"`
	FirstName    string     `json:"first_name" gorm:"size:100"`
	LastName     string     `json:"last_name" gorm:"size:100"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Region       string     `json:"region" gorm:"size:100"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
