// Package telegram drains a prepared chat-stream client and normalises
// every message into a canonical document. Session setup and
// authentication belong to the client implementation, not to this package.
package telegram

import (
	"context"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
	"github.com/harvestly/harvest-cli/internal/logger"
	"github.com/harvestly/harvest-cli/internal/normalise"
)

// Connector ingests Telegram chat history into canonical documents.
type Connector struct {
	client   driven.ChatClient
	progress driven.ProgressFunc
}

// New creates a connector over a prepared chat client. A nil progress hook
// is allowed.
func New(client driven.ChatClient, progress driven.ProgressFunc) *Connector {
	return &Connector{client: client, progress: progress}
}

// Fetch pulls up to messagesLimit messages from each chat sequentially and
// maps every message into a Document. Messages without text contribute
// documents with empty content; their metadata type carries the media
// class, so downstream loading can filter on it. A stream failure
// propagates whole; there is no retry.
func (c *Connector) Fetch(ctx context.Context, chats []string, messagesLimit int) ([]domain.Document, error) {
	var docs []domain.Document

	for _, chat := range chats {
		messages, errs := c.client.Messages(ctx, chat, messagesLimit)

		count := 0
		for msg := range messages {
			docs = append(docs, normalise.Normalise(domain.ChatRecord(msg)))
			count++
			if c.progress != nil {
				c.progress(len(docs), chat)
			}
		}
		if err := <-errs; err != nil {
			return nil, err
		}

		logger.Info("telegram: chat %s: %d messages", chat, count)
	}
	return docs, nil
}
