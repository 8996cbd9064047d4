package models

import "blogql-be/internal/entities"

// UserError is an expected, recoverable failure returned to the client as data
// (invalid input, forbidden access, not found, invalid credentials). Unexpected
// collaborator failures are plain errors and never appear in this shape.
type UserError struct {
	Message string `json:"message"`
}

// AuthPayload is the result envelope for signup/signin. Token is non-nil
// exactly when UserErrors is empty.
type AuthPayload struct {
	UserErrors []UserError `json:"userErrors"`
	Token      *string     `json:"token"`
}

// PostPayload is the result envelope for every post mutation. Post is non-nil
// exactly when UserErrors is empty; for deletes it carries the pre-delete snapshot.
type PostPayload struct {
	UserErrors []UserError    `json:"userErrors"`
	Post       *entities.Post `json:"post"`
}

// AuthFailure builds an AuthPayload carrying a single user error.
func AuthFailure(message string) *AuthPayload {
	return &AuthPayload{
		UserErrors: []UserError{{Message: message}},
		Token:      nil,
	}
}

// PostFailure builds a PostPayload carrying a single user error.
func PostFailure(message string) *PostPayload {
	return &PostPayload{
		UserErrors: []UserError{{Message: message}},
		Post:       nil,
	}
}

// PostSuccess builds a PostPayload for a successful mutation.
func PostSuccess(post *entities.Post) *PostPayload {
	return &PostPayload{
		UserErrors: []UserError{},
		Post:       post,
	}
}
