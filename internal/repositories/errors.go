package repositories

import "errors"

// ErrNotFound is returned when a row does not exist. Callers scoping
// reads by owner get the same error for foreign rows, so the two cases
// are indistinguishable upstream.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUserName is returned when an insert collides with the
// unique index on users.user_name.
var ErrDuplicateUserName = errors.New("user_name already taken")
