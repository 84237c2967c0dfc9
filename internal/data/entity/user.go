package entity

// User is an account owner. Deactivated users keep their row but are
// excluded from every lookup and uniqueness check.
type User struct {
	Base
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	Phone        string  `db:"phone"`
	PasswordHash string  `db:"password_hash"`
	Address      *string `db:"address"`
	ProfileImage *string `db:"profile_image"`
	IsActive     bool    `db:"is_active"`
}
