package vk

import (
	"context"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
	"github.com/harvestly/harvest-cli/internal/logger"
	"github.com/harvestly/harvest-cli/internal/normalise"
)

// Connector ingests VK dialog history into canonical documents.
type Connector struct {
	api      driven.VKAPI
	opts     HistoryOptions
	progress driven.ProgressFunc
}

// New creates a connector over a prepared API handle. A nil progress hook
// is allowed.
func New(api driven.VKAPI, opts HistoryOptions, progress driven.ProgressFunc) *Connector {
	return &Connector{api: api, opts: opts, progress: progress}
}

// Fetch normalises the peer references, then pulls up to limitPerDialog
// messages from each peer sequentially and maps every message into a
// Document. Peer normalisation is fail-fast: one bad reference aborts the
// whole call before any history is fetched. A remote failure during a
// fetch propagates whole; there is no retry.
func (c *Connector) Fetch(ctx context.Context, refs []string, limitPerDialog int) ([]domain.Document, error) {
	peers, err := NormalizePeers(ctx, c.api, refs)
	if err != nil {
		return nil, err
	}

	var docs []domain.Document
	for _, peer := range peers {
		messages, err := FetchHistory(ctx, c.api, peer, limitPerDialog, c.opts)
		if err != nil {
			return nil, err
		}

		for _, msg := range messages {
			docs = append(docs, normalise.Normalise(domain.VKRecord(msg)))
		}

		logger.Info("vk: peer %s: %d messages", peer, len(messages))
		if c.progress != nil {
			c.progress(len(docs), peer.String())
		}
	}
	return docs, nil
}
