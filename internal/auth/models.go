package auth

// Account stores login credentials for a person, keyed on email. The
// password is kept only as a bcrypt hash.
type Account struct {
	Email        string `json:"email" bson:"_id"`
	PasswordHash string `json:"-" bson:"password_hash"`
}
