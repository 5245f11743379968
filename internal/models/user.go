package models

// UserRole matches the `rol` claim of the session token.
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `gorm:"type:varchar(16);default:'USER'" json:"rol"`
}
