package sortutil_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/sortutil"
)

func TestSortLayerByWeight_StableAndReassignsPosition(t *testing.T) {
	layer := &layered.Layer{Nodes: []*layered.Node{
		{ID: 0, Weight: 2, Position: 0},
		{ID: 1, Weight: 1, Position: 1},
		{ID: 2, Weight: 1, Position: 2}, // ties with ID 1, must stay after it
		{ID: 3, Weight: 0, Position: 3},
	}}

	sortutil.SortLayerByWeight(layer)

	gotIDs := make([]int, len(layer.Nodes))
	for i, n := range layer.Nodes {
		gotIDs[i] = n.ID
		assert.Equal(t, i, n.Position)
	}
	assert.Equal(t, []int{3, 1, 2, 0}, gotIDs)
}

func TestSortNodesByDegree_AscendingAndDoesNotMutateInput(t *testing.T) {
	e := &layered.Edge{}
	hi := &layered.Node{ID: 0, UpEdges: []*layered.Edge{e, e, e}}
	lo := &layered.Node{ID: 1, UpEdges: []*layered.Edge{e}}
	mid := &layered.Node{ID: 2, UpEdges: []*layered.Edge{e, e}}

	original := []*layered.Node{hi, lo, mid}
	sorted := sortutil.SortNodesByDegree(original)

	assert.Equal(t, []int{1, 2, 0}, idsOf(sorted))
	assert.Equal(t, []int{0, 1, 2}, idsOf(original), "input slice must not be reordered")
}

func idsOf(nodes []*layered.Node) []int {
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

func TestRNGFromSeed_ZeroSeedIsDeterministicAcrossCalls(t *testing.T) {
	a := sortutil.RNGFromSeed(0)
	b := sortutil.RNGFromSeed(0)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveRNG_DifferentStreamsDiverge(t *testing.T) {
	base := rand.New(rand.NewSource(42))
	r1 := sortutil.DeriveRNG(base, 1)
	r2 := sortutil.DeriveRNG(base, 2)
	assert.NotEqual(t, r1.Int63(), r2.Int63())
}

func TestPermuteInts_IsAPermutation(t *testing.T) {
	rng := sortutil.RNGFromSeed(7)
	perm := sortutil.PermuteInts(10, rng)

	seen := make(map[int]bool, 10)
	for _, v := range perm {
		assert.False(t, seen[v], "value %d repeated", v)
		seen[v] = true
		assert.True(t, v >= 0 && v < 10)
	}
	assert.Len(t, seen, 10)
}

func TestShuffleIntsInPlace_NilRNGFallsBackToDefaultStream(t *testing.T) {
	a := []int{0, 1, 2, 3, 4}
	b := []int{0, 1, 2, 3, 4}
	sortutil.ShuffleIntsInPlace(a, nil)
	sortutil.ShuffleIntsInPlace(b, sortutil.RNGFromSeed(0))
	assert.Equal(t, a, b)
}
