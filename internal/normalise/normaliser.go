// Package normalise maps raw source records into the canonical Document
// shape. The mapping is total: unmappable values degrade to best-effort
// labels instead of failing.
package normalise

import (
	"path/filepath"
	"time"

	"github.com/harvestly/harvest-cli/internal/core/domain"
)

// unknownLabel is the fallback classification for values the source did not
// supply or that have no known mapping.
const unknownLabel = "unknown"

// textLabel classifies messages without media.
const textLabel = "text"

// Normalise maps a raw record into a Document. It is a pure transform and
// never fails: an unrecognised record kind yields a Document tagged unknown.
func Normalise(raw domain.RawRecord) domain.Document {
	switch raw.Kind {
	case domain.KindFileBlock:
		return fromFileBlock(raw.File)
	case domain.KindChatMessage:
		return fromChatMessage(raw.Chat)
	case domain.KindVKMessage:
		return fromVKMessage(raw.VK)
	default:
		return domain.Document{
			Metadata: map[string]any{
				domain.MetaSource: unknownLabel,
				domain.MetaType:   unknownLabel,
			},
		}
	}
}

// NormaliseAll maps a batch of records, preserving order.
func NormaliseAll(raws []domain.RawRecord) []domain.Document {
	docs := make([]domain.Document, 0, len(raws))
	for _, r := range raws {
		docs = append(docs, Normalise(r))
	}
	return docs
}

func fromFileBlock(b *domain.FileBlock) domain.Document {
	if b == nil {
		return Normalise(domain.RawRecord{Kind: -1})
	}

	category := b.Category
	if category == "" {
		category = unknownLabel
	}

	return domain.Document{
		Content: b.Text,
		Metadata: map[string]any{
			domain.MetaSource:     filepath.Base(b.Path),
			domain.MetaSourcePath: b.Path,
			domain.MetaType:       category,
		},
	}
}

func fromChatMessage(m *domain.ChatMessage) domain.Document {
	if m == nil {
		return Normalise(domain.RawRecord{Kind: -1})
	}

	class := textLabel
	if m.MediaClass != "" {
		class = m.MediaClass
	}

	return domain.Document{
		Content: m.Text,
		Metadata: map[string]any{
			domain.MetaSource:     m.SenderID,
			domain.MetaSourcePath: m.Chat,
			domain.MetaMessageID:  m.ID,
			domain.MetaDate:       m.Date.Format(time.RFC3339),
			domain.MetaType:       class,
		},
	}
}

func fromVKMessage(m *domain.VKMessage) domain.Document {
	if m == nil {
		return Normalise(domain.RawRecord{Kind: -1})
	}

	// Attachment summary: type labels only, nothing is downloaded.
	labels := make([]string, 0, len(m.Attachments))
	for _, att := range m.Attachments {
		label := att.Type
		if label == "" {
			label = unknownLabel
		}
		labels = append(labels, label)
	}

	class := textLabel
	if len(labels) > 0 {
		class = labels[0]
	}

	return domain.Document{
		Content: m.Text,
		Metadata: map[string]any{
			domain.MetaSource:      "vk",
			domain.MetaPlatform:    "vk",
			domain.MetaType:        class,
			domain.MetaPeerID:      int64(m.PeerID),
			domain.MetaMessageID:   m.ID,
			domain.MetaDate:        m.Date,
			domain.MetaFromID:      m.FromID,
			domain.MetaAttachments: labels,
			domain.MetaHasForward:  m.HasForward(),
		},
	}
}
