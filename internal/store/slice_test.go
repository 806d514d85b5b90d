package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub/models"
)

func TestSlice_StartsEmptyNotNil(t *testing.T) {
	s := NewSlice[models.Complaint]()

	assert.NotNil(t, s.All())
	assert.Empty(t, s.All())
}

func TestSlice_ReplaceAll(t *testing.T) {
	s := NewSlice[models.Complaint]()
	s.ReplaceAll([]models.Complaint{{ID: "c1"}, {ID: "c2"}})
	assert.Equal(t, 2, s.Len())

	// Replacing with nil yields an empty list, not a nil one: "zero
	// records" is a loaded state.
	s.ReplaceAll(nil)
	assert.NotNil(t, s.All())
	assert.Empty(t, s.All())
}

func TestSlice_InsertOnePrepends(t *testing.T) {
	s := NewSlice[models.Notice]()
	s.ReplaceAll([]models.Notice{{ID: "old"}})

	s.InsertOne(models.Notice{ID: "new"})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
}

func TestSlice_PatchOneShallowMerges(t *testing.T) {
	s := NewSlice[models.Complaint]()
	s.ReplaceAll([]models.Complaint{{
		ID:          "c1",
		Title:       "lift broken",
		Description: "stuck on 3rd floor",
		Status:      models.ComplaintOpen,
	}})

	ok := s.PatchOne("c1", models.Complaint{Status: models.ComplaintResolved})
	require.True(t, ok)

	got, found := s.Get("c1")
	require.True(t, found)
	assert.Equal(t, models.ComplaintResolved, got.Status)
	assert.Equal(t, "lift broken", got.Title, "untouched fields survive the patch")
	assert.Equal(t, "stuck on 3rd floor", got.Description)
}

func TestSlice_PatchOneMissingIDIsNoOp(t *testing.T) {
	s := NewSlice[models.Complaint]()
	s.ReplaceAll([]models.Complaint{{ID: "c1", Status: models.ComplaintOpen}})
	before := s.All()

	ok := s.PatchOne("nonexistent-id", models.Complaint{Status: models.ComplaintResolved})

	assert.False(t, ok)
	assert.Equal(t, before, s.All())
}

func TestSlice_RemoveOne(t *testing.T) {
	s := NewSlice[models.Flat]()
	s.ReplaceAll([]models.Flat{{ID: "f1"}, {ID: "f2"}, {ID: "f3"}})

	require.True(t, s.RemoveOne("f2"))
	assert.Equal(t, 2, s.Len())
	_, found := s.Get("f2")
	assert.False(t, found)

	assert.False(t, s.RemoveOne("nonexistent-id"))
	assert.Equal(t, 2, s.Len())
}

func TestSlice_AllReturnsCopy(t *testing.T) {
	s := NewSlice[models.Flat]()
	s.ReplaceAll([]models.Flat{{ID: "f1", Number: "A-101"}})

	out := s.All()
	out[0].Number = "mutated"

	got, _ := s.Get("f1")
	assert.Equal(t, "A-101", got.Number)
}
