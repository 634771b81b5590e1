// Package models contains the persistence models shared by repositories
// and services.
package models

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
