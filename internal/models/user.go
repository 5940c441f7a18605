package models

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	// Password is stored and compared verbatim. Hashing would go in at the
	// users repository boundary without changing any interface above it.
	Password string `db:"password"`
}
