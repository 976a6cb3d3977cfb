package domain

// Account holds the login credentials of a user. PasswordHash is a bcrypt
// hash; the plain password never leaves the auth package.
type Account struct {
	UserID       string
	Email        string
	PasswordHash string
}
