package ui

import (
	"context"
	"fmt"
	"strings"

	"fitness-app/entities"

	tea "github.com/charmbracelet/bubbletea"
)

// overviewScreen shows the latest weight and recent activities. The two
// fetches land independently: if one fails, data from the other still
// renders.
type overviewScreen struct {
	shared *appContext
	userID int

	weight      *entities.LatestWeight
	weightState fetchState

	activities    []entities.Activity
	activityState fetchState

	ctx    context.Context
	cancel context.CancelFunc
}

type latestWeightMsg struct {
	gen int
	lw  *entities.LatestWeight
	err error
}

type activitiesMsg struct {
	gen  int
	list []entities.Activity
	err  error
}

func newOverviewScreen(shared *appContext, userID int) *overviewScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &overviewScreen{shared: shared, userID: userID, ctx: ctx, cancel: cancel}
}

func (s *overviewScreen) Init() tea.Cmd {
	return s.refresh()
}

func (s *overviewScreen) Teardown() { s.cancel() }

func (s *overviewScreen) refresh() tea.Cmd {
	weightGen := s.weightState.Load()
	activityGen := s.activityState.Load()
	return tea.Batch(
		func() tea.Msg {
			lw, err := s.shared.client.GetLatestWeight(s.ctx, s.userID)
			return latestWeightMsg{gen: weightGen, lw: lw, err: err}
		},
		func() tea.Msg {
			list, err := s.shared.client.GetActivities(s.ctx, s.userID)
			return activitiesMsg{gen: activityGen, list: list, err: err}
		},
	)
}

func (s *overviewScreen) loading() bool {
	return s.weightState.Loading() || s.activityState.Loading()
}

func (s *overviewScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if !s.loading() {
				return s, s.refresh()
			}
		case "g":
			if !s.loading() {
				return s, navigate(newGenerateScreen(s.shared, s.userID))
			}
		case "b":
			if !s.loading() {
				return s, navigate(newRecipesScreen(s.shared))
			}
		case "m":
			if !s.loading() {
				return s, navigate(newBiometricsScreen(s.shared, s.userID))
			}
		case "q":
			return s, tea.Quit
		}

	case latestWeightMsg:
		if msg.err != nil {
			s.weightState.Fail(msg.gen, errorMessage(msg.err))
			return s, nil
		}
		if s.weightState.Succeed(msg.gen) {
			s.weight = msg.lw
		}

	case activitiesMsg:
		if msg.err != nil {
			s.activityState.Fail(msg.gen, errorMessage(msg.err))
			return s, nil
		}
		if s.activityState.Succeed(msg.gen) {
			s.activities = msg.list
		}
	}

	return s, nil
}

func (s *overviewScreen) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Your Data") + "\n\n")

	b.WriteString(cardStyle.Render(weightLine(s.weight)) + "\n\n")
	if s.weightState.Failed() {
		b.WriteString(errorStyle.Render("✗ "+s.weightState.Err()) + "\n\n")
	}

	b.WriteString(headingStyle.Render("Recent Activities") + "\n")
	switch {
	case s.activityState.Loading():
		b.WriteString("Loading...\n")
	case s.activityState.Failed():
		b.WriteString(errorStyle.Render("✗ "+s.activityState.Err()) + "\n")
	case len(s.activities) == 0:
		b.WriteString(dimStyle.Render("No activities yet") + "\n")
	default:
		for _, act := range recentActivities(s.activities, 5) {
			b.WriteString(activityLine(act) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("g: generate recipe  b: browse recipes  m: biometrics  r: refresh  q: quit") + "\n")

	return b.String()
}

// weightLine renders the latest-weight card. A found=false response means the
// numeric fields are absent regardless of their literal values.
func weightLine(lw *entities.LatestWeight) string {
	if lw == nil || !lw.Found || lw.Weight == nil || lw.WeightUnits == nil {
		return "No weight data"
	}
	line := fmt.Sprintf("Latest weight: %g %s", *lw.Weight, *lw.WeightUnits)
	if lw.Date != nil {
		line += " on " + *lw.Date
	}
	return line
}

func activityLine(act entities.Activity) string {
	calories := 0
	if act.CaloriesBurned != nil {
		calories = *act.CaloriesBurned
	}
	return fmt.Sprintf("%s: %s - %d cal", act.ActivityDate, act.ActivityType, calories)
}

func recentActivities(list []entities.Activity, n int) []entities.Activity {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
