package models

// Role — роль пользователя.
type Role string

const (
	// RoleAdmin — администратор, полный доступ к админке.
	RoleAdmin Role = "ADMIN"
	// RoleUser — зарегистрированный пользователь без повышенных прав.
	RoleUser Role = "USER"
)

// User — публичное представление пользователя, которое отдаётся наружу.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// StoredUser — запись зарегистрированного пользователя в хранилище.
type StoredUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	CreatedAt    int64  `json:"createdAt"`
}

// Public возвращает запись без хэша пароля; роль всегда USER.
func (u StoredUser) Public() User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  RoleUser,
	}
}
