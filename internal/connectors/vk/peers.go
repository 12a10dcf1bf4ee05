package vk

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

// urlPrefix is stripped from screen-name inputs before resolution.
const urlPrefix = "https://vk.com/"

// NormalizePeers turns a mixed list of peer references into integer peer
// ids. Numeric references pass through unchanged; anything else is treated
// as a screen name and resolved remotely. Screen names resolve to users
// only: a community resolution is rejected because community-owned peer
// ids are not derivable this way, and multi-user conversations never had a
// screen name to begin with (pass 2_000_000_000 + chat_id directly).
//
// The whole batch is normalised atomically: one invalid reference fails
// the call with no partial peer list.
func NormalizePeers(ctx context.Context, api driven.VKAPI, refs []string) ([]domain.PeerID, error) {
	peers := make([]domain.PeerID, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)

		if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
			peers = append(peers, domain.PeerID(id))
			continue
		}

		name := strings.TrimPrefix(ref, urlPrefix)
		resolution, err := api.ResolveScreenName(ctx, name)
		if err != nil {
			return nil, err
		}
		if resolution == nil {
			return nil, fmt.Errorf("%w: cannot resolve %q; pass a numeric peer id for conversations",
				domain.ErrPeerResolution, ref)
		}
		if resolution.Kind != driven.ResolvedUser {
			return nil, fmt.Errorf("%w: %q names a community; pass its dialogs as numeric peer ids",
				domain.ErrPeerResolution, ref)
		}

		peers = append(peers, domain.UserPeer(resolution.ObjectID))
	}
	return peers, nil
}
