package vk

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
	"github.com/harvestly/harvest-cli/internal/logger"
)

const (
	// DefaultPageSize is the endpoint's per-call maximum.
	DefaultPageSize = 200

	// DefaultPause keeps the loop under VK's ~3 requests/second limit.
	DefaultPause = 340 * time.Millisecond
)

// HistoryOptions tune the fetch loop. Zero values fall back to the
// defaults.
type HistoryOptions struct {
	// PageSize caps how many messages one call may request.
	PageSize int

	// Pause is the delay observed after every non-empty batch.
	Pause time.Duration
}

func (o HistoryOptions) withDefaults() HistoryOptions {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.Pause <= 0 {
		o.Pause = DefaultPause
	}
	return o
}

// FetchHistory drives the bounded, rate-limited, offset-based retrieval
// loop against the history endpoint until limit messages are collected or
// the conversation is exhausted. Messages keep the remote-side order
// (newest first); the result may be shorter than limit. limit <= 0 yields
// an empty result with zero remote calls. An endpoint error fails the
// whole fetch; there is no retry here.
func FetchHistory(ctx context.Context, api driven.VKAPI, peer domain.PeerID, limit int, opts HistoryOptions) ([]domain.VKMessage, error) {
	opts = opts.withDefaults()

	if limit <= 0 {
		return nil, nil
	}

	// The pause runs after each batch, terminal short batch included.
	// Draining the initial token makes every Wait block a full interval.
	pacer := rate.NewLimiter(rate.Every(opts.Pause), 1)
	pacer.Allow()

	var items []domain.VKMessage
	fetched := 0
	offset := 0

	for fetched < limit {
		count := opts.PageSize
		if remaining := limit - fetched; remaining < count {
			count = remaining
		}

		batch, err := api.GetHistory(ctx, peer, count, offset)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		for i := range batch {
			batch[i].PeerID = peer
		}
		items = append(items, batch...)
		fetched += len(batch)
		offset += len(batch)

		logger.Debug("vk: peer %s: fetched %d/%d (offset %d)", peer, fetched, limit, offset)

		if err := pacer.Wait(ctx); err != nil {
			return nil, err
		}

		// A short batch means the history ended; skip the extra
		// round-trip that would confirm it.
		if len(batch) < count {
			break
		}
	}

	return items, nil
}
