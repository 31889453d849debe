package domain

import "github.com/google/uuid"

// UserID identifies the owner of a record.
type UserID uuid.UUID

// String returns the canonical UUID form.
func (id UserID) String() string { return uuid.UUID(id).String() }
