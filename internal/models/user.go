package models

// Role is a closed enumeration of account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSeller  Role = "seller"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSeller, RoleUser:
		return true
	}
	return false
}

// UserStatus is a closed enumeration of account states.
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserBlocked
}

// Contacts holds the optional messenger/contact details of a user.
type Contacts struct {
	Telegram string `json:"telegram"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// User is a platform account as the admin sees it.
type User struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Role     Role       `json:"role"`
	Status   UserStatus `json:"status"`
	Language string     `json:"language"`
	Contacts Contacts   `json:"contacts"`
	Balance  float64    `json:"balance"`
}
