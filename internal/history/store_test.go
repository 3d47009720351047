package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_NewestFirst(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())

	first := s.Add("https://a/archive/1.tar.gz", "https://a/tree/1")
	second := s.Add("https://a/archive/2.tar.gz", "https://a/tree/2")

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0])
	assert.Equal(t, first, list[1])
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStore_EvictsOldest(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 15; i++ {
		s.Add(fmt.Sprintf("in-%d", i), fmt.Sprintf("out-%d", i))
	}

	list := s.List()
	require.Len(t, list, MaxEntries)
	assert.Equal(t, "out-15", list[0].Processed)
	assert.Equal(t, "out-6", list[9].Processed)
}

func TestStore_TimestampsStrictlyIncrease(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a := s.Add("a", "a")
	b := s.Add("b", "b")
	c := s.Add("c", "c")

	assert.Equal(t, fixed, a.Timestamp)
	assert.True(t, b.Timestamp.After(a.Timestamp))
	assert.True(t, c.Timestamp.After(b.Timestamp))
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore()
	s.Add("a", "b")

	list := s.List()
	list[0].Processed = "mutated"

	got := s.List()
	assert.Equal(t, "b", got[0].Processed)
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	rec := s.Add("a", "b")

	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, rec, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}
