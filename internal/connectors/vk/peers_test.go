package vk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

func TestNormalizePeers_NumericPassThrough(t *testing.T) {
	api := &fakeAPI{}

	peers, err := NormalizePeers(context.Background(), api, []string{"123456789", "2000000123"})

	require.NoError(t, err)
	assert.Equal(t, []domain.PeerID{domain.UserPeer(123456789), domain.ChatPeer(123)}, peers)
}

func TestNormalizePeers_ScreenNameResolvesToUser(t *testing.T) {
	api := &fakeAPI{resolutions: map[string]*driven.Resolution{
		"someuser": {Kind: driven.ResolvedUser, ObjectID: 987654},
	}}

	peers, err := NormalizePeers(context.Background(), api, []string{"123", "https://vk.com/someuser"})

	require.NoError(t, err)
	assert.Equal(t, []domain.PeerID{domain.UserPeer(123), domain.UserPeer(987654)}, peers)
}

func TestNormalizePeers_BareScreenName(t *testing.T) {
	api := &fakeAPI{resolutions: map[string]*driven.Resolution{
		"someuser": {Kind: driven.ResolvedUser, ObjectID: 11},
	}}

	peers, err := NormalizePeers(context.Background(), api, []string{"someuser"})

	require.NoError(t, err)
	assert.Equal(t, []domain.PeerID{domain.UserPeer(11)}, peers)
}

func TestNormalizePeers_CommunityRejected(t *testing.T) {
	api := &fakeAPI{resolutions: map[string]*driven.Resolution{
		"somegroup": {Kind: driven.ResolvedGroup, ObjectID: 222},
	}}

	peers, err := NormalizePeers(context.Background(), api, []string{"somegroup"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPeerResolution)
	assert.Contains(t, err.Error(), "somegroup")
	assert.Nil(t, peers)
}

func TestNormalizePeers_UnresolvableRejected(t *testing.T) {
	api := &fakeAPI{}

	peers, err := NormalizePeers(context.Background(), api, []string{"no-such-name"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPeerResolution)
	assert.Contains(t, err.Error(), "no-such-name")
	assert.Nil(t, peers)
}

func TestNormalizePeers_AtomicBatch(t *testing.T) {
	// A single invalid entry fails the whole batch: no partial peer list.
	api := &fakeAPI{resolutions: map[string]*driven.Resolution{
		"gooduser": {Kind: driven.ResolvedUser, ObjectID: 5},
	}}

	peers, err := NormalizePeers(context.Background(), api, []string{"gooduser", "badname"})

	require.Error(t, err)
	assert.Nil(t, peers)
}

func TestNormalizePeers_ResolutionErrorPropagates(t *testing.T) {
	boom := errors.New("api down")
	api := &fakeAPI{resolveErr: boom}

	_, err := NormalizePeers(context.Background(), api, []string{"someuser"})

	assert.ErrorIs(t, err, boom)
}

func TestNormalizePeers_Empty(t *testing.T) {
	peers, err := NormalizePeers(context.Background(), &fakeAPI{}, nil)

	require.NoError(t, err)
	assert.Empty(t, peers)
}
