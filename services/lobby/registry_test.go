package lobby

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexIDPattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

func TestRegistryCreateGeneratesUniqueIDs(t *testing.T) {
	reg := NewRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		lb := reg.Create("EU")
		assert.Regexp(t, hexIDPattern, lb.ID())
		assert.False(t, seen[lb.ID()], "id %s issued twice", lb.ID())
		seen[lb.ID()] = true
	}
	assert.Equal(t, 200, reg.Count())
}

func TestRegistryFindAndRemove(t *testing.T) {
	reg := NewRegistry()
	lb := reg.Create("NA")

	found, ok := reg.Find(lb.ID())
	require.True(t, ok)
	assert.Same(t, lb, found)
	assert.Equal(t, "NA", found.Region())

	reg.Remove(lb.ID())
	_, ok = reg.Find(lb.ID())
	assert.False(t, ok)

	// Removing an absent id is a no-op.
	reg.Remove(lb.ID())
	assert.Equal(t, 0, reg.Count())
}

func TestRegistryByPeer(t *testing.T) {
	reg := NewRegistry()
	peer := newFakePeer("p1")
	other := newFakePeer("p2")

	lb := reg.Create("EU")
	require.NoError(t, lb.Join(NewPlayer(1, "A", true, peer)))

	// Second lobby with no members, must not match.
	reg.Create("EU")

	lobbies := reg.ByPeer(peer.ID())
	require.Len(t, lobbies, 1)
	assert.Same(t, lb, lobbies[0])

	assert.Empty(t, reg.ByPeer(other.ID()))
}

func TestRegistrySnapshots(t *testing.T) {
	reg := NewRegistry()

	lb := reg.Create("EU")
	require.NoError(t, lb.Join(NewPlayer(1, "A", true, newFakePeer("p1"))))

	snaps := reg.Snapshots()
	require.Len(t, snaps, 1)
	assert.Equal(t, lb.ID(), snaps[0].ID)
	require.Len(t, snaps[0].Members, 1)
	assert.Equal(t, "A", snaps[0].Members[0].Name)
}
