package ui

import (
	"strings"
	"testing"

	"fitness-app/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestSortBiometricsByDateDesc(t *testing.T) {
	t.Parallel()

	entries := []entities.Biometric{
		{Date: "2024-01-01"},
		{Date: "2024-01-03"},
		{Date: "2024-01-02"},
	}
	sortBiometricsByDateDesc(entries)

	assert.Equal(t, "2024-01-03", entries[0].Date)
	assert.Equal(t, "2024-01-02", entries[1].Date)
	assert.Equal(t, "2024-01-01", entries[2].Date)
}

func TestWeightTrend(t *testing.T) {
	t.Parallel()

	down := []entities.Biometric{
		{Date: "2024-02-02", Weight: floatPtr(180.0)},
		{Date: "2024-02-01", Weight: floatPtr(182.5)},
	}
	trend, ok := weightTrend(down)
	require.True(t, ok)
	assert.InDelta(t, -2.5, trend, 1e-9)

	up := []entities.Biometric{
		{Date: "2024-02-02", Weight: floatPtr(182.0)},
		{Date: "2024-02-01", Weight: floatPtr(180.0)},
	}
	trend, ok = weightTrend(up)
	require.True(t, ok)
	assert.InDelta(t, 2.0, trend, 1e-9)

	_, ok = weightTrend(down[:1])
	assert.False(t, ok, "a single entry has no trend")
}

func TestFormatTrend(t *testing.T) {
	t.Parallel()

	down := formatTrend(-2.5)
	assert.Contains(t, down, "-2.5")
	assert.Contains(t, down, "↓")

	up := formatTrend(2.0)
	assert.Contains(t, up, "+2.0")
	assert.Contains(t, up, "↑")
}

func TestBiometricSaveRequiresWeight(t *testing.T) {
	t.Parallel()

	s := newBiometricsScreen(testAppContext(), 1)
	defer s.Teardown()
	s.showForm = true

	cmd := s.save()
	assert.Nil(t, cmd, "no request should be issued without a weight")
	assert.True(t, s.saveState.Failed())
	assert.Equal(t, "Weight is required", s.saveState.Err())
}

func TestBiometricFormDefaultsUnitsToLbs(t *testing.T) {
	t.Parallel()

	s := newBiometricsScreen(testAppContext(), 4)
	defer s.Teardown()
	s.form[formWeight] = "181.5"
	s.form[formUnits] = "  "
	s.form[formAvgHr] = "62"
	s.form[formNotes] = "after run"

	entry := s.buildEntry()
	assert.Equal(t, 4, entry.UserID)
	require.NotNil(t, entry.Weight)
	assert.InDelta(t, 181.5, *entry.Weight, 1e-9)
	require.NotNil(t, entry.WeightUnits)
	assert.Equal(t, "lbs", *entry.WeightUnits)
	require.NotNil(t, entry.AvgHr)
	assert.Equal(t, 62, *entry.AvgHr)
	assert.Nil(t, entry.HighHr)
	require.NotNil(t, entry.Notes)
	assert.Equal(t, "after run", *entry.Notes)
	assert.NotEmpty(t, entry.Date)
}

func TestBiometricsListAppliedSortedOnFetch(t *testing.T) {
	t.Parallel()

	s := newBiometricsScreen(testAppContext(), 1)
	defer s.Teardown()
	gen := s.loadState.Load()

	updated, _ := s.Update(biometricsMsg{gen: gen, list: []entities.Biometric{
		{Date: "2024-01-01"},
		{Date: "2024-01-03"},
		{Date: "2024-01-02"},
	}})

	bs := updated.(*biometricsScreen)
	require.Len(t, bs.entries, 3)
	assert.Equal(t, "2024-01-03", bs.entries[0].Date)

	view := bs.View()
	assert.True(t, strings.Index(view, "2024-01-03") < strings.Index(view, "2024-01-01"))
}
