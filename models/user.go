package models

// Roles seen in the users table. Registration assigns RoleUser unless the
// caller provides one; RoleUnassigned marks an account without a role.
const (
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleUnassigned = "unassigned"
)

// User is a row of the users table. Phone is read when the column exists
// but never written, since the table does not always carry it.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;not null"`
	Phone        string `json:"phone" gorm:"->"`
	Role         string `json:"role" gorm:"default:'user'"`
	RestaurantID *uint  `json:"restaurant_id"`
}

func (User) TableName() string {
	return "users"
}
