package slotgrid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Default(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog, 9)
	assert.Equal(t, "09:00-10:00", catalog[0])
	assert.Equal(t, "17:00-18:00", catalog[8])
}

func TestCatalog_InvalidBounds(t *testing.T) {
	assert.Nil(t, Catalog(18, 9))
	assert.Nil(t, Catalog(9, 9))
	assert.Nil(t, Catalog(-1, 10))
	assert.Nil(t, Catalog(9, 25))
}

func TestToggle_EmptySelection(t *testing.T) {
	catalog := DefaultCatalog()

	got := Toggle(catalog, nil, "09:00-10:00")

	assert.Equal(t, []string{"09:00-10:00"}, got)
}

func TestToggle_Deselect(t *testing.T) {
	catalog := DefaultCatalog()
	selection := []string{"09:00-10:00", "10:00-11:00"}

	got := Toggle(catalog, selection, "10:00-11:00")
	assert.Equal(t, []string{"09:00-10:00"}, got)

	got = Toggle(catalog, got, "09:00-10:00")
	assert.Empty(t, got)
}

func TestToggle_ExtendsBothEnds(t *testing.T) {
	catalog := DefaultCatalog()
	selection := []string{"11:00-12:00"}

	selection = Toggle(catalog, selection, "12:00-13:00")
	assert.Equal(t, []string{"11:00-12:00", "12:00-13:00"}, selection)

	selection = Toggle(catalog, selection, "10:00-11:00")
	assert.Equal(t, []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"}, selection)
}

func TestToggle_DiscontinuityResets(t *testing.T) {
	catalog := DefaultCatalog()
	selection := []string{"09:00-10:00"}

	got := Toggle(catalog, selection, "11:00-12:00")

	assert.Equal(t, []string{"11:00-12:00"}, got)
}

func TestToggle_UnknownSlotIgnored(t *testing.T) {
	catalog := DefaultCatalog()
	selection := []string{"09:00-10:00"}

	got := Toggle(catalog, selection, "23:00-24:00")

	assert.Equal(t, selection, got)
}

// Any sequence of clicks keeps the selection a contiguous ascending run.
func TestToggle_ContiguityInvariant(t *testing.T) {
	catalog := DefaultCatalog()
	rng := rand.New(rand.NewSource(42))

	var selection []string
	for i := 0; i < 1000; i++ {
		candidate := catalog[rng.Intn(len(catalog))]
		selection = Toggle(catalog, selection, candidate)
		require.True(t, Contiguous(catalog, selection),
			"selection %v broke contiguity after clicking %s", selection, candidate)
	}
}

func TestContiguous(t *testing.T) {
	catalog := DefaultCatalog()

	assert.True(t, Contiguous(catalog, nil))
	assert.True(t, Contiguous(catalog, []string{"09:00-10:00"}))
	assert.True(t, Contiguous(catalog, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}))

	assert.False(t, Contiguous(catalog, []string{"09:00-10:00", "11:00-12:00"}))
	assert.False(t, Contiguous(catalog, []string{"10:00-11:00", "09:00-10:00"}))
	assert.False(t, Contiguous(catalog, []string{"not-a-slot"}))
}

func TestSpan(t *testing.T) {
	start, end := Span([]string{"10:00-11:00", "09:00-10:00", "11:00-12:00"})
	assert.Equal(t, "09:00", start)
	assert.Equal(t, "12:00", end)

	start, end = Span([]string{"14:00-15:00"})
	assert.Equal(t, "14:00", start)
	assert.Equal(t, "15:00", end)

	start, end = Span(nil)
	assert.Empty(t, start)
	assert.Empty(t, end)

	start, end = Span([]string{"garbage"})
	assert.Empty(t, start)
	assert.Empty(t, end)
}
