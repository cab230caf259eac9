// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the decoded form of an issued session token.
//
// Sessions are stateless: nothing is persisted server-side. A session is
// valid iff the current time is before ExpiresAt and the token signature
// verifies against the process-held signing key.
type Session struct {
	// SubjectID is the identifier of the authenticated user ("sub" claim).
	SubjectID string `json:"subjectId"`

	// IssuedAt is the instant the token was minted ("iat" claim).
	IssuedAt time.Time `json:"issuedAt"`

	// ExpiresAt is the instant after which the token is rejected ("exp" claim).
	ExpiresAt time.Time `json:"expiresAt"`

	// Token is the compact signed serialization returned to clients.
	// Excluded from JSON because the session endpoint echoes claims only.
	Token string `json:"-"`
}

// String returns the compact signed token.
// It implements the [fmt.Stringer] interface.
func (s Session) String() string {
	return s.Token
}
