package ui

import (
	"errors"
	"strings"
	"testing"

	"fitness-app/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWeightLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No weight data", weightLine(nil))
	assert.Equal(t, "No weight data", weightLine(&entities.LatestWeight{Found: false}))

	// found=false means numeric fields are absent even when literally set
	assert.Equal(t, "No weight data", weightLine(&entities.LatestWeight{
		Found:       false,
		Weight:      floatPtr(180),
		WeightUnits: strPtr("lbs"),
	}))

	line := weightLine(&entities.LatestWeight{
		Found:       true,
		Weight:      floatPtr(180),
		WeightUnits: strPtr("lbs"),
		Date:        strPtr("2024-01-02"),
	})
	assert.Equal(t, "Latest weight: 180 lbs on 2024-01-02", line)
}

func TestOverviewPartialFailureStillRendersWeight(t *testing.T) {
	t.Parallel()

	s := newOverviewScreen(testAppContext(), 1)
	defer s.Teardown()
	weightGen := s.weightState.Load()
	activityGen := s.activityState.Load()

	updated, _ := s.Update(latestWeightMsg{gen: weightGen, lw: &entities.LatestWeight{
		Found:       true,
		Weight:      floatPtr(172.4),
		WeightUnits: strPtr("lbs"),
		Date:        strPtr("2024-03-01"),
	}})
	updated, _ = updated.Update(activitiesMsg{gen: activityGen, err: errors.New("connection refused")})

	view := updated.View()
	assert.Contains(t, view, "Latest weight: 172.4 lbs on 2024-03-01")
	assert.Contains(t, view, "connection refused")
	assert.NotContains(t, view, "panic")
}

func TestRecentActivitiesCapsAtFive(t *testing.T) {
	t.Parallel()

	list := make([]entities.Activity, 8)
	assert.Len(t, recentActivities(list, 5), 5)
	assert.Len(t, recentActivities(list[:3], 5), 3)
}

func TestOverviewStaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	s := newOverviewScreen(testAppContext(), 1)
	defer s.Teardown()
	stale := s.weightState.Load()
	fresh := s.weightState.Load()

	updated, _ := s.Update(latestWeightMsg{gen: stale, lw: &entities.LatestWeight{
		Found: true, Weight: floatPtr(999), WeightUnits: strPtr("lbs"),
	}})
	os := updated.(*overviewScreen)
	require.Nil(t, os.weight, "stale response must not be applied")
	assert.True(t, os.weightState.Loading())

	updated, _ = os.Update(latestWeightMsg{gen: fresh, lw: &entities.LatestWeight{
		Found: true, Weight: floatPtr(175), WeightUnits: strPtr("lbs"),
	}})
	os = updated.(*overviewScreen)
	require.NotNil(t, os.weight)
	assert.InDelta(t, 175, *os.weight.Weight, 1e-9)
}

func TestActivityLineDefaultsMissingCalories(t *testing.T) {
	t.Parallel()

	line := activityLine(entities.Activity{
		ActivityDate: "2024-01-05",
		ActivityType: "Running",
	})
	assert.True(t, strings.HasSuffix(line, "0 cal"))
}
