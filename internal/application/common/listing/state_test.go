package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyfix/admin/internal/shared/pagination"
)

func loaded(items []string, current, last, total int) State[string] {
	return Reduce(InitialState[string](), PageLoaded[string]{Page: pagination.Response[string]{
		Data: items, CurrentPage: current, LastPage: last, PerPage: 15, Total: total,
	}})
}

func TestReduce_PageLoadedReplacesWholesale(t *testing.T) {
	s := loaded([]string{"a", "b"}, 1, 2, 17)
	s = Reduce(s, LoadStarted{})
	assert.True(t, s.Busy)

	s = Reduce(s, PageLoaded[string]{Page: pagination.Response[string]{Data: []string{"c"}, CurrentPage: 2, LastPage: 2, Total: 17}})

	assert.Equal(t, []string{"c"}, s.Items)
	assert.Equal(t, 2, s.CurrentPage)
	assert.False(t, s.Busy)
	assert.True(t, s.HasPrevious())
	assert.False(t, s.HasNext())
}

func TestReduce_LoadFailedKeepsItems(t *testing.T) {
	s := loaded([]string{"a"}, 1, 1, 1)
	s = Reduce(Reduce(s, LoadStarted{}), LoadFailed{Message: "boom"})

	assert.Equal(t, "boom", s.Error)
	assert.False(t, s.Busy)
	assert.Equal(t, []string{"a"}, s.Items)

	s = Reduce(s, LoadStarted{})
	assert.Empty(t, s.Error)
}

func TestReduce_ItemReplacedAndRemoved(t *testing.T) {
	s := loaded([]string{"a", "b", "c"}, 1, 1, 3)

	replaced := Reduce(s, ItemReplaced[string]{Index: 1, Item: "B"})
	assert.Equal(t, []string{"a", "B", "c"}, replaced.Items)
	assert.Equal(t, []string{"a", "b", "c"}, s.Items, "input state must not change")

	removed := Reduce(replaced, ItemRemoved[string]{Index: 0})
	assert.Equal(t, []string{"B", "c"}, removed.Items)
	assert.Equal(t, 2, removed.Total)
}

func TestReduce_OutOfRangeIndexIgnored(t *testing.T) {
	s := loaded([]string{"a"}, 1, 1, 1)

	assert.Equal(t, s, Reduce(s, ItemRemoved[string]{Index: 5}))
	assert.Equal(t, s, Reduce(s, ItemReplaced[string]{Index: -1, Item: "x"}))
}

func TestReduce_MatchLocatesItemRegardlessOfIndex(t *testing.T) {
	s := loaded([]string{"a", "b", "c"}, 1, 1, 3)
	isB := func(v string) bool { return v == "b" }

	replaced := Reduce(s, ItemReplaced[string]{Index: 0, Match: isB, Item: "B"})
	assert.Equal(t, []string{"a", "B", "c"}, replaced.Items)

	removed := Reduce(s, ItemRemoved[string]{Index: 0, Match: isB})
	assert.Equal(t, []string{"a", "c"}, removed.Items)
	assert.Equal(t, 2, removed.Total)

	isZ := func(v string) bool { return v == "z" }
	assert.Equal(t, s, Reduce(s, ItemReplaced[string]{Index: 0, Match: isZ, Item: "Z"}))
	assert.Equal(t, s, Reduce(s, ItemRemoved[string]{Index: 0, Match: isZ}))
}

func TestReduce_PageChangedClampsToOne(t *testing.T) {
	s := Reduce(InitialState[string](), PageChanged{Page: 0})
	assert.Equal(t, 1, s.CurrentPage)
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	store := NewStore[string]()

	var seen []State[string]
	unsubscribe := store.Subscribe(func(s State[string]) { seen = append(seen, s) })

	store.Dispatch(LoadStarted{})
	store.Dispatch(LoadFailed{Message: "x"})
	require.Len(t, seen, 2)
	assert.True(t, seen[0].Busy)
	assert.Equal(t, "x", seen[1].Error)

	unsubscribe()
	store.Dispatch(LoadStarted{})
	assert.Len(t, seen, 2)
}

func TestStore_StateIsSnapshot(t *testing.T) {
	store := NewStore[string]()
	store.Dispatch(PageLoaded[string]{Page: pagination.Response[string]{Data: []string{"a"}, CurrentPage: 1, LastPage: 1, Total: 1}})

	st := store.State()
	st.Items[0] = "mutated"

	assert.Equal(t, "a", store.State().Items[0])
}
