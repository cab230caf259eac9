// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned by the credential store
	// at insert time. Immutable.
	UserID string `json:"id" bson:"_id"`

	// Email is the unique account key. It is always stored normalized
	// (trimmed and lower-cased).
	Email string `json:"email" bson:"email"`

	// Username is a display handle. It is not unique.
	Username string `json:"username" bson:"username"`

	// PasswordHash stores the salted one-way credential in PHC string form
	// (e.g. "$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>").
	// It is never exposed via JSON.
	PasswordHash string `json:"-" bson:"password_hash"`

	// FullName is the display name of the user.
	FullName string `json:"fullName" bson:"full_name"`

	// Phone is an optional contact number.
	Phone string `json:"phone" bson:"phone"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// TableName returns the name of the database table (or document
// collection) associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Projection returns the sanitized view of the user that may be sent to
// clients after a successful login.
func (u User) Projection() UserProjection {
	return UserProjection{
		ID:       u.UserID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}

// UserProjection is the public view of a user. It never carries
// credential material.
type UserProjection struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}
