package user

import "context"

// Repository - хранилище сессии устройства: единственный пользователь
// и флаг входа.
type Repository interface {
	SaveUser(ctx context.Context, u User) error
	GetUser(ctx context.Context) (*User, error)
	IsLoggedIn(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
}
