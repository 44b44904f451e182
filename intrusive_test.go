package splay

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type player struct {
	Hook[*player]
	name  string
	score int
}

func playerName(p *player) string {
	return p.name
}

func newLeague(t *testing.T, names ...string) (*Intrusive[*player, string], map[string]*player) {
	t.Helper()
	league, err := NewIntrusive(playerName, strings.Compare, WithParanoia(true))
	require.NoError(t, err)
	players := make(map[string]*player, len(names))
	for i, name := range names {
		p := &player{name: name, score: i}
		require.NoError(t, league.Insert(p))
		players[name] = p
	}
	return league, players
}

func names(ps []*player) []string {
	r := make([]string, len(ps))
	for i, p := range ps {
		r[i] = p.name
	}
	return r
}

func TestIntrusiveHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splay")
	defer teardown()

	league, ps := newLeague(t, "dora", "anna", "emil", "bert", "carl")
	assert.Equal(t, 5, league.Len())
	assert.True(t, league.Owns(ps["emil"]))
	assert.Equal(t, []string{"anna", "bert", "carl", "dora", "emil"}, league.AppendKeysTo(nil))

	r, err := league.Rank(ps["carl"])
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	require.NoError(t, league.Remove(ps["carl"]))
	assert.False(t, ps["carl"].Attached())
	assert.False(t, league.Contains("carl"))
	r, err = league.Rank(ps["dora"])
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	p, ok := league.RemoveKey("anna")
	require.True(t, ok)
	assert.Same(t, ps["anna"], p)
	_, ok = league.RemoveKey("anna")
	assert.False(t, ok)
	require.NoError(t, league.Check())
}

func TestIntrusiveRejectsForeignNodes(t *testing.T) {
	a, ps := newLeague(t, "x", "y")
	b, _ := newLeague(t)
	assert.ErrorIs(t, b.Insert(ps["x"]), ErrForeignNode)
	assert.ErrorIs(t, a.Insert(ps["x"]), ErrForeignNode)
	assert.ErrorIs(t, b.Remove(ps["x"]), ErrForeignNode)
	_, err := b.Rank(ps["y"])
	assert.ErrorIs(t, err, ErrForeignNode)
	_, err = b.NearBy(ps["y"], 1, 1)
	assert.ErrorIs(t, err, ErrForeignNode)
	assert.ErrorIs(t, b.Forward(ps["y"], func(*player) bool { return true }), ErrForeignNode)
	assert.ErrorIs(t, b.Reverse(ps["y"], func(*player) bool { return true }), ErrForeignNode)
	assert.ErrorIs(t, a.Insert(&player{name: "y"}), ErrDuplicateKey)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestIntrusiveDetachedCopy(t *testing.T) {
	a, ps := newLeague(t, "x", "y", "z")
	b, _ := newLeague(t)
	dup := func(p *player) *player {
		c := *p
		return &c
	}
	c := Detached(ps["y"], dup)
	assert.False(t, c.Attached())
	assert.Equal(t, 1, c.score)
	require.NoError(t, b.Insert(c))
	assert.True(t, a.Owns(ps["y"]))
	assert.True(t, b.Owns(c))
	assert.False(t, a.Owns(c))
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
}

func TestIntrusiveNeighborsAndWalks(t *testing.T) {
	league, ps := newLeague(t, "a", "b", "c", "d", "e", "f", "g")
	near, err := league.NearBy(ps["d"], 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "e", "f"}, names(near))
	near, err = league.NearBy(nil, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, near)

	var got []string
	require.NoError(t, league.Forward(ps["e"], func(p *player) bool {
		got = append(got, p.name)
		return true
	}))
	assert.Equal(t, []string{"e", "f", "g"}, got)
	got = got[:0]
	require.NoError(t, league.Reverse(ps["b"], func(p *player) bool {
		got = append(got, p.name)
		return true
	}))
	assert.Equal(t, []string{"b", "a"}, got)

	p, ok := league.FindNear("dd")
	require.True(t, ok)
	assert.Contains(t, []string{"d", "e"}, p.name)
	p, ok = league.Find("g")
	require.True(t, ok)
	assert.Same(t, ps["g"], p)

	assert.Equal(t, "a", league.Best().name)
	assert.Equal(t, "g", league.Worst().name)
	assert.Equal(t, names(league.AppendTo(nil)), league.AppendKeysTo(nil))
}

func TestIntrusiveEmpty(t *testing.T) {
	league, _ := newLeague(t)
	assert.Nil(t, league.Best())
	assert.Nil(t, league.Worst())
	_, ok := league.FindNear("x")
	assert.False(t, ok)
	assert.Equal(t, 0, league.Balance())
	assert.Equal(t, 0, league.Prune(0, nil))
	assert.Contains(t, league.String(), "\"Root\" -> \"null\"")
}

func TestIntrusivePruneAndClear(t *testing.T) {
	league, ps := newLeague(t, "a", "b", "c", "d", "e", "f", "g", "h")
	locked := func(p *player) bool { return p.name == "b" }
	removed := league.Prune(3, locked)
	assert.Equal(t, 8-league.Len(), removed)
	assert.True(t, league.Owns(ps["b"]))
	for _, p := range ps {
		if !league.Owns(p) {
			assert.False(t, p.Attached())
		}
	}
	league.Clear()
	assert.Equal(t, 0, league.Len())
	for _, p := range ps {
		assert.False(t, p.Attached())
	}
	require.NoError(t, league.Insert(ps["a"]))
	count := 0
	for range league.All() {
		count++
	}
	assert.Equal(t, 1, count)
}
