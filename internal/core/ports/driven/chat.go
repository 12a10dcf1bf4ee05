package driven

import (
	"context"

	"github.com/harvestly/harvest-cli/internal/core/domain"
)

// ChatClient streams raw messages from a prepared, authenticated chat
// session. Session setup and authentication live outside the core; the
// client arrives ready to use.
type ChatClient interface {
	// Messages yields up to limit messages for a chat (username or id),
	// newest first. Both channels are closed when the stream ends; a
	// remote failure is delivered on the error channel and terminates
	// the stream.
	Messages(ctx context.Context, chat string, limit int) (<-chan domain.ChatMessage, <-chan error)
}
