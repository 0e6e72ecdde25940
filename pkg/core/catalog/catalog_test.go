package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
	"github.com/nextshift/shiftboard/pkg/db/memory"
)

func TestCreate(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	template, err := Create(ctx, store, zap.NewNop(), CreateInput{
		Name:      "Morning",
		StartTime: "08:00",
		EndTime:   "16:00",
		BgColor:   "#2d6cdf",
		TextColor: "#ffffff",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, template.ID)
	assert.True(t, template.IsActive)

	stored, err := store.GetTemplate(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning", stored.Name)
}

func TestCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input CreateInput
	}{
		{"missing name", CreateInput{BgColor: "#000", TextColor: "#fff"}},
		{"blank name", CreateInput{Name: "   ", BgColor: "#000", TextColor: "#fff"}},
		{"missing colors", CreateInput{Name: "OFF"}},
		{"timed name without times", CreateInput{Name: "Night", BgColor: "#000", TextColor: "#fff"}},
		{"timed name half-specified", CreateInput{Name: "Evening", StartTime: "16:00", BgColor: "#000", TextColor: "#fff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			_, err := Create(context.Background(), store, zap.NewNop(), tt.input)
			assert.ErrorIs(t, err, db.ErrValidation)
		})
	}
}

func TestCreate_UntimedTemplateNeedsNoTimes(t *testing.T) {
	store := memory.NewStore()

	template, err := Create(context.Background(), store, zap.NewNop(), CreateInput{
		Name: "Rest", BgColor: "#8a8f98", TextColor: "#ffffff",
	})
	require.NoError(t, err)
	assert.Empty(t, template.StartTime)
	assert.Empty(t, template.EndTime)
}

func TestListAll_CreationOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	logger := zap.NewNop()

	for _, name := range []string{"OFF", "Rest", "Morning"} {
		in := CreateInput{Name: name, BgColor: "#000", TextColor: "#fff"}
		if name == "Morning" {
			in.StartTime, in.EndTime = "08:00", "16:00"
		}
		_, err := Create(ctx, store, logger, in)
		require.NoError(t, err)
	}

	templates, err := ListAll(ctx, store)
	require.NoError(t, err)

	require.Len(t, templates, 3)
	assert.Equal(t, "OFF", templates[0].Name)
	assert.Equal(t, "Rest", templates[1].Name)
	assert.Equal(t, "Morning", templates[2].Name)
}

func TestToggleActive_HidesFromActiveList(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	logger := zap.NewNop()

	template, err := Create(ctx, store, logger, CreateInput{
		Name: "OFF", BgColor: "#d64545", TextColor: "#ffffff",
	})
	require.NoError(t, err)

	require.NoError(t, ToggleActive(ctx, store, logger, template.ID))

	active, err := ListActive(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := ListAll(ctx, store)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Toggling back restores it.
	require.NoError(t, ToggleActive(ctx, store, logger, template.ID))
	active, err = ListActive(ctx, store)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestToggleActive_UnknownID(t *testing.T) {
	store := memory.NewStore()

	err := ToggleActive(context.Background(), store, zap.NewNop(), "missing")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	logger := zap.NewNop()

	template, err := Create(ctx, store, logger, CreateInput{
		Name: "Morning", StartTime: "08:00", EndTime: "16:00", BgColor: "#000", TextColor: "#fff",
	})
	require.NoError(t, err)

	err = Update(ctx, store, logger, template.ID, CreateInput{
		Name: "Morning", StartTime: "07:00", EndTime: "15:00", BgColor: "#123456", TextColor: "#fff",
	})
	require.NoError(t, err)

	stored, err := store.GetTemplate(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, "07:00", stored.StartTime)
	assert.Equal(t, "#123456", stored.BgColor)
	assert.True(t, stored.IsActive)
}

func TestUpdate_UnknownID(t *testing.T) {
	store := memory.NewStore()

	err := Update(context.Background(), store, zap.NewNop(), "missing", CreateInput{
		Name: "OFF", BgColor: "#000", TextColor: "#fff",
	})
	assert.ErrorIs(t, err, db.ErrNotFound)
}
