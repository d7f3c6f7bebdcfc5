package user

// User - текущий пользователь устройства. Хранится в единственном
// экземпляре: новый вход перезаписывает предыдущего.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}
