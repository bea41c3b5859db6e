package auth

import "github.com/escrima/go-orders-service/internal/app/entity"

// StaticDirectory is the fixed user directory the service ships with. It is
// read-only after construction, so concurrent lookups need no locking.
type StaticDirectory struct {
	users map[string]entity.User
}

func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{
		users: map[string]entity.User{
			"admin": {
				Username:       "admin",
				FullName:       "Administrador",
				Email:          "admin@pedidos.local",
				HashedPassword: "Iaew-2024$",
				Roles:          []string{"api"},
				Disabled:       false,
			},
		},
	}
}

func (d *StaticDirectory) Lookup(username string) (entity.User, bool) {
	user, ok := d.users[username]

	return user, ok
}
