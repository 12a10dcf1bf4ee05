package domain

// Well-known metadata keys. Every Document carries MetaSource and MetaType;
// the remaining keys are source-specific.
const (
	// MetaSource is the origin identifier: file name, sender id, or platform tag.
	MetaSource = "source"

	// MetaType is the coarse content classification tag.
	MetaType = "type"

	// MetaSourcePath is the file path or chat identifier the record came from.
	MetaSourcePath = "source_path"

	// MetaMessageID is the message identifier within a chat or dialog.
	MetaMessageID = "message_id"

	// MetaDate is the message timestamp (ISO string for chats, Unix seconds for VK).
	MetaDate = "date"

	// MetaPlatform is the platform tag for social-API records.
	MetaPlatform = "platform"

	// MetaPeerID is the VK conversation handle.
	MetaPeerID = "peer_id"

	// MetaFromID is the VK sender id.
	MetaFromID = "from_id"

	// MetaAttachments is the list of attachment-type labels.
	MetaAttachments = "attachments"

	// MetaHasForward indicates the message carries forwarded messages.
	MetaHasForward = "has_forward"
)

// Document is the canonical output unit of ingestion.
// Every source-specific record is normalised into this shape before it is
// handed to downstream indexing.
type Document struct {
	// Content is the extracted text. Empty string is allowed, never
	// semantically "missing".
	Content string

	// Metadata contains at least MetaSource and MetaType. Additional keys
	// depend on the source kind.
	Metadata map[string]any
}

// Validate reports whether the document satisfies the canonical invariant:
// a non-nil metadata mapping containing source and type.
func (d *Document) Validate() error {
	if d.Metadata == nil {
		return ErrInvalidInput
	}
	if _, ok := d.Metadata[MetaSource]; !ok {
		return ErrInvalidInput
	}
	if _, ok := d.Metadata[MetaType]; !ok {
		return ErrInvalidInput
	}
	return nil
}
