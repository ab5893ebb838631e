package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-hours/internal/config"
)

// setupTestApp creates an App over a mock API with captured output
func setupTestApp(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()

	mock := newMockAPI()
	app := NewApp(mock, config.NewConfig())
	var buf bytes.Buffer
	app.out = &buf
	return app, mock, &buf
}

func TestAddCommand_Execute(t *testing.T) {
	app, mock, buf := setupTestApp(t)
	cmd := NewAddCommand(app)
	ctx := context.Background()

	t.Run("adds an entry", func(t *testing.T) {
		err := cmd.Execute(ctx, "2024-01-15", "09:00", "17:30")
		require.NoError(t, err)

		entries := mock.ListEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, 8.5, entries[0].HoursWorked)
		assert.Contains(t, buf.String(), "Added entry 1")
		assert.Contains(t, buf.String(), "8.50 hours")
	})

	t.Run("defaults date to today", func(t *testing.T) {
		fixed := time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC)
		timeNow = func() time.Time { return fixed }
		defer func() { timeNow = time.Now }()

		err := cmd.Execute(ctx, "", "14:00", "18:00")
		require.NoError(t, err)

		entries := mock.ListEntries()
		require.Len(t, entries, 2)
		assert.Equal(t, "2024-01-15", entries[1].Date)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		err := cmd.Execute(ctx, "15/01/2024", "09:00", "17:00")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add entry")
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		err := cmd.Execute(ctx, "2024-01-15", "25:00", "17:00")
		require.Error(t, err)
	})
}

func TestEditCommand_Execute(t *testing.T) {
	app, mock, buf := setupTestApp(t)
	cmd := NewEditCommand(app)
	ctx := context.Background()

	entry, err := mock.AddEntry(ctx, "2024-01-15", "09:00", "17:00")
	require.NoError(t, err)

	t.Run("changes only supplied fields", func(t *testing.T) {
		err := cmd.Execute(ctx, "1", "", "", "19:00")
		require.NoError(t, err)

		updated, err := mock.GetEntry(entry.Key)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", updated.Date)
		assert.Equal(t, "09:00", updated.Start)
		assert.Equal(t, "19:00", updated.End)
		assert.Equal(t, 10.0, updated.HoursWorked)
		assert.Contains(t, buf.String(), "Updated entry 1")
	})

	t.Run("unknown key", func(t *testing.T) {
		err := cmd.Execute(ctx, "42", "", "", "19:00")
		require.Error(t, err)
	})

	t.Run("non-numeric key", func(t *testing.T) {
		err := cmd.Execute(ctx, "abc", "", "", "19:00")
		require.Error(t, err)
	})

	t.Run("malformed field cancels the edit", func(t *testing.T) {
		err := cmd.Execute(ctx, "1", "", "9am", "")
		require.Error(t, err)

		_, editing := mock.EditingKey()
		assert.False(t, editing)
	})
}

func TestDeleteCommand_Execute(t *testing.T) {
	app, mock, buf := setupTestApp(t)
	cmd := NewDeleteCommand(app)
	ctx := context.Background()

	_, err := mock.AddEntry(ctx, "2024-01-15", "09:00", "17:00")
	require.NoError(t, err)

	t.Run("deletes an entry", func(t *testing.T) {
		err := cmd.Execute(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, mock.ListEntries())
		assert.Contains(t, buf.String(), "Deleted entry 1")
	})

	t.Run("unknown key is not an error", func(t *testing.T) {
		err := cmd.Execute(ctx, "99")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "No entry 99")
	})

	t.Run("non-numeric key", func(t *testing.T) {
		err := cmd.Execute(ctx, "abc")
		require.Error(t, err)
	})
}

func TestListCommand_Execute(t *testing.T) {
	app, mock, buf := setupTestApp(t)
	cmd := NewListCommand(app)
	ctx := context.Background()

	t.Run("empty list", func(t *testing.T) {
		err := cmd.Execute(ctx)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "No entries recorded")
	})

	t.Run("lists entries in insertion order", func(t *testing.T) {
		buf.Reset()
		_, err := mock.AddEntry(ctx, "2024-01-20", "09:00", "17:00")
		require.NoError(t, err)
		_, err = mock.AddEntry(ctx, "2024-01-10", "14:00", "18:00")
		require.NoError(t, err)

		err = cmd.Execute(ctx)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "2024-01-20")
		assert.Contains(t, out, "2024-01-10")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("2024-01-20")), bytes.Index(buf.Bytes(), []byte("2024-01-10")))
	})
}

func TestSummaryCommand_Execute(t *testing.T) {
	app, mock, buf := setupTestApp(t)
	cmd := NewSummaryCommand(app)
	ctx := context.Background()

	_, err := mock.AddEntry(ctx, "2024-01-15", "09:00", "17:00")
	require.NoError(t, err)
	_, err = mock.AddEntry(ctx, "2024-01-16", "14:00", "18:00")
	require.NoError(t, err)

	err = cmd.Execute(ctx)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Days worked:          2")
	assert.Contains(t, out, "€91.80")
}

func TestConfigCommand_Execute(t *testing.T) {
	app, mock, buf := setupTestApp(t)
	cmd := NewConfigCommand(app)
	ctx := context.Background()

	t.Run("shows current contract", func(t *testing.T) {
		err := cmd.Execute(ctx, ContractChanges{})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Hours per month:   40.00")
		assert.Contains(t, out, "€7.65")
		assert.Contains(t, out, "€9.00")
	})

	t.Run("updates supplied fields", func(t *testing.T) {
		buf.Reset()
		hours := 160.0
		rate := 12.50
		err := cmd.Execute(ctx, ContractChanges{ContractHoursPerMonth: &hours, HourlyRate: &rate})
		require.NoError(t, err)

		cfg := mock.GetContract()
		assert.Equal(t, 160.0, cfg.ContractHoursPerMonth)
		assert.Equal(t, 12.50, cfg.HourlyRate)
		// untouched field keeps its value
		assert.Equal(t, 9.0, cfg.ExtraHourlyRate)
		assert.Contains(t, buf.String(), "160.00")
	})

	t.Run("rejects negative values", func(t *testing.T) {
		hours := -1.0
		err := cmd.Execute(ctx, ContractChanges{ContractHoursPerMonth: &hours})
		require.Error(t, err)
	})
}

func TestExportCommand_Execute(t *testing.T) {
	app, mock, buf := setupTestApp(t)
	cmd := NewExportCommand(app)
	ctx := context.Background()

	_, err := mock.AddEntry(ctx, "2024-01-15", "09:00", "17:00")
	require.NoError(t, err)

	t.Run("csv format", func(t *testing.T) {
		err := cmd.Execute(ctx, "csv")
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "Key,Date,Start,End,Hours")
		assert.Contains(t, out, "1,2024-01-15,09:00,17:00,8.00")
		assert.Contains(t, out, "Contract hours,40.00")
		assert.Contains(t, out, "Regular hours,8.00")
		assert.Contains(t, out, "Extra hours,0.00")
		assert.Contains(t, out, "Total pay,61.20")
	})

	t.Run("text format", func(t *testing.T) {
		buf.Reset()
		err := cmd.Execute(ctx, "text")
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "2024-01-15")
		assert.Contains(t, out, "Summary")
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := cmd.Execute(ctx, "xml")
		require.Error(t, err)
	})
}
