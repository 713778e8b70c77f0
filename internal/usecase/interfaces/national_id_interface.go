package interfaces

import (
	"context"
	"errors"
)

var (
	ErrNationalIDNotFound      = errors.New("no data for national id")
	ErrNationalIDNotConfigured = errors.New("national id lookup not configured")
)

type INationalIDLookup interface {
	FullName(ctx context.Context, dni string) (string, error)
}
