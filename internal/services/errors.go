package services

import "errors"

// ErrInvalidCredentials is returned on login when the username is
// unknown or the password does not verify. One error for both cases so
// responses cannot be used to probe which usernames exist.
var ErrInvalidCredentials = errors.New("incorrect user_name or password")

// ErrUserNameTaken is returned when registration collides with an
// existing username. It is a client error, not a server failure.
var ErrUserNameTaken = errors.New("username already taken")

// ErrNoUpdateValues is returned when a partial update resolves to an
// empty field set.
var ErrNoUpdateValues = errors.New("no values submitted for update")

// ErrUnauthorized is returned when a bearer token fails verification
// for any reason (bad signature, malformed, expired) or when the
// claimed user no longer exists. The cause is intentionally not
// distinguishable from the error value.
var ErrUnauthorized = errors.New("unauthorized request")

// PasswordPolicyError describes a password policy violation. Its
// message is exactly what the client should see.
type PasswordPolicyError struct {
	msg string
}

func (e *PasswordPolicyError) Error() string { return e.msg }
