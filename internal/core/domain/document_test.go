package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{
			name: "valid document",
			doc: Document{
				Content:  "hello",
				Metadata: map[string]any{MetaSource: "a.md", MetaType: "Document"},
			},
		},
		{
			name: "empty content is allowed",
			doc: Document{
				Content:  "",
				Metadata: map[string]any{MetaSource: int64(42), MetaType: "text"},
			},
		},
		{
			name:    "nil metadata",
			doc:     Document{Content: "hello"},
			wantErr: true,
		},
		{
			name: "missing source",
			doc: Document{
				Metadata: map[string]any{MetaType: "text"},
			},
			wantErr: true,
		},
		{
			name: "missing type",
			doc: Document{
				Metadata: map[string]any{MetaSource: "a.md"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocument_MetadataTypes(t *testing.T) {
	doc := Document{
		Content: "text",
		Metadata: map[string]any{
			MetaSource:      "vk",
			MetaType:        "photo",
			MetaPeerID:      int64(2_000_000_123),
			MetaAttachments: []string{"photo", "doc"},
			MetaHasForward:  true,
		},
	}

	require.NoError(t, doc.Validate())
	assert.Equal(t, int64(2_000_000_123), doc.Metadata[MetaPeerID])
	assert.Equal(t, []string{"photo", "doc"}, doc.Metadata[MetaAttachments])
	assert.Equal(t, true, doc.Metadata[MetaHasForward])
}
