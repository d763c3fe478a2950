package model

import "time"

// User represents a registered account in the database. The session token is
// minted once at registration and acts as the account's durable credential.
type User struct {
	ID           string
	SessionToken string
	Name         string
	Email        string
	CreatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
