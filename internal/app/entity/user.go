package entity

type UserID string

func (id UserID) String() string {
	return string(id)
}

func (id UserID) Valid() bool {
	return len(id) != 0
}

// User is a record of the fixed user directory. HashedPassword is treated as
// an opaque string: token issuance compares it byte for byte.
type User struct {
	Username       string
	FullName       string
	Email          string
	HashedPassword string
	Roles          []string
	Disabled       bool
}
