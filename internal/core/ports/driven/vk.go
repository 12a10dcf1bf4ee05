package driven

import (
	"context"

	"github.com/harvestly/harvest-cli/internal/core/domain"
)

// Resolution kinds returned by screen-name resolution.
const (
	ResolvedUser  = "user"
	ResolvedGroup = "group"
)

// Resolution is the outcome of resolving a screen name.
type Resolution struct {
	// Kind is ResolvedUser or ResolvedGroup.
	Kind string

	// ObjectID is the resolved user or community id (always positive).
	ObjectID int64
}

// VKAPI is the consumed slice of the VK remote API.
type VKAPI interface {
	// GetHistory returns one page of a conversation's messages,
	// newest first, as the remote endpoint orders them.
	GetHistory(ctx context.Context, peer domain.PeerID, count, offset int) ([]domain.VKMessage, error)

	// ResolveScreenName resolves a screen name to a user or community id.
	// Returns (nil, nil) when the name does not exist.
	ResolveScreenName(ctx context.Context, name string) (*Resolution, error)
}
