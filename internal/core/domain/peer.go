package domain

import "strconv"

// chatPeerBase is the offset VK adds to chat ids to form multi-user
// conversation peer ids.
const chatPeerBase = 2_000_000_000

// PeerID is an integer VK conversation handle. For user-to-user dialogs it
// equals the counterpart's user id; for multi-user conversations it equals
// 2_000_000_000 + chat_id.
//
// A screen name resolves to a user or community id but never to a multi-user
// conversation id; chat peers must always be supplied numerically.
type PeerID int64

// UserPeer returns the peer id for a user-to-user dialog.
func UserPeer(userID int64) PeerID {
	return PeerID(userID)
}

// ChatPeer returns the peer id for a multi-user conversation.
func ChatPeer(chatID int64) PeerID {
	return PeerID(chatPeerBase + chatID)
}

// IsChat reports whether the peer id addresses a multi-user conversation.
func (p PeerID) IsChat() bool {
	return p >= chatPeerBase
}

// ChatID returns the chat id for a multi-user conversation peer, or 0 when
// the peer is not a conversation.
func (p PeerID) ChatID() int64 {
	if !p.IsChat() {
		return 0
	}
	return int64(p) - chatPeerBase
}

// String returns the decimal form of the peer id.
func (p PeerID) String() string {
	return strconv.FormatInt(int64(p), 10)
}
