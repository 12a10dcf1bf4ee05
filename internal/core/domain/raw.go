package domain

import "time"

// RecordKind tags the variant held by a RawRecord.
type RecordKind int

const (
	// KindFileBlock is one logical chunk of a parsed file.
	KindFileBlock RecordKind = iota

	// KindChatMessage is one message from a chat stream.
	KindChatMessage

	// KindVKMessage is one message from a VK dialog history page.
	KindVKMessage
)

// String returns the kind identifier.
func (k RecordKind) String() string {
	switch k {
	case KindFileBlock:
		return "file_block"
	case KindChatMessage:
		return "chat_message"
	case KindVKMessage:
		return "vk_message"
	default:
		return "unknown"
	}
}

// RawRecord is a tagged variant over the three source record shapes.
// Exactly the field matching Kind is set; the others are nil.
// RawRecords are ephemeral: produced and consumed within one fetch call,
// never persisted.
type RawRecord struct {
	Kind RecordKind

	File *FileBlock
	Chat *ChatMessage
	VK   *VKMessage
}

// FileRecord wraps a FileBlock as a RawRecord.
func FileRecord(b FileBlock) RawRecord {
	return RawRecord{Kind: KindFileBlock, File: &b}
}

// ChatRecord wraps a ChatMessage as a RawRecord.
func ChatRecord(m ChatMessage) RawRecord {
	return RawRecord{Kind: KindChatMessage, Chat: &m}
}

// VKRecord wraps a VKMessage as a RawRecord.
func VKRecord(m VKMessage) RawRecord {
	return RawRecord{Kind: KindVKMessage, VK: &m}
}

// FileBlock is one logical unit of extracted text from a parsed file.
// Depending on the parse mode a whole file collapses to one block or
// splits into several.
type FileBlock struct {
	// Text is the extracted text of the block.
	Text string

	// Category is the block's structural class (e.g. "Document",
	// "Title", "NarrativeText", "PageBreak").
	Category string

	// Path is the path of the file the block came from.
	Path string
}

// ChatMessage is one raw message from a chat stream.
type ChatMessage struct {
	// ID is the message identifier within the chat.
	ID int64

	// SenderID identifies the message author.
	SenderID int64

	// Text is the message body. Empty when the message carries only media.
	Text string

	// Date is the message timestamp.
	Date time.Time

	// MediaClass names the attachment class when media is present,
	// empty otherwise.
	MediaClass string

	// Chat is the chat identifier (username or id) the message came from.
	Chat string
}

// VKMessage is one raw message from a VK dialog history page.
type VKMessage struct {
	// ID is the numeric message id.
	ID int64 `json:"id"`

	// Date is the Unix timestamp.
	Date int64 `json:"date"`

	// FromID identifies the sender.
	FromID int64 `json:"from_id"`

	// Text is the message body. Empty when absent.
	Text string `json:"text"`

	// Attachments lists the message attachments.
	Attachments []VKAttachment `json:"attachments"`

	// Forwarded lists forwarded messages; only its presence matters here.
	Forwarded []VKForward `json:"fwd_messages"`

	// PeerID is the conversation the message belongs to.
	// Set by the fetch loop, not by the remote payload.
	PeerID PeerID `json:"-"`
}

// VKAttachment is an attachment summary; only the type label is retained.
type VKAttachment struct {
	Type string `json:"type"`
}

// VKForward is a forwarded-message stub; the content is not ingested.
type VKForward struct {
	ID int64 `json:"id"`
}

// HasForward reports whether the message carries forwarded messages.
func (m *VKMessage) HasForward() bool {
	return len(m.Forwarded) > 0
}
