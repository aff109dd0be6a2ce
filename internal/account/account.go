package account

import (
	"context"

	apperrors "github.com/capsy-labs/capsy-companion/pkg/errors"
)

var (
	ErrPasswordPolicy   = apperrors.New("password must be 8-16 characters with upper and lower case letters, a digit, and one of !@#$%^&*")
	ErrPasswordMismatch = apperrors.New("the passwords do not match, please try again")
)

type Client interface {
	// ChangePassword validates the new password locally and submits it.
	// Policy violations and confirmation mismatches never reach the backend.
	ChangePassword(ctx context.Context, password, confirm string) error
}
