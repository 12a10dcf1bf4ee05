package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPeer(t *testing.T) {
	peer := UserPeer(123456789)

	assert.Equal(t, PeerID(123456789), peer)
	assert.False(t, peer.IsChat())
	assert.Equal(t, int64(0), peer.ChatID())
}

func TestChatPeer(t *testing.T) {
	peer := ChatPeer(123)

	assert.Equal(t, PeerID(2_000_000_123), peer)
	assert.True(t, peer.IsChat())
	assert.Equal(t, int64(123), peer.ChatID())
}

func TestPeerID_String(t *testing.T) {
	assert.Equal(t, "123456789", UserPeer(123456789).String())
	assert.Equal(t, "2000000123", ChatPeer(123).String())
}
