// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Account is a registered identity. The email string is the identity itself;
// there is no separate surrogate key.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewAccount builds an Account keyed by its email.
func NewAccount(email string) *Account {
	return &Account{ID: email, Email: email}
}
