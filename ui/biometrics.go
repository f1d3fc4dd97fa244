package ui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"fitness-app/entities"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	formWeight = iota
	formUnits
	formAvgHr
	formHighHr
	formLowHr
	formNotes
	formFieldCount
)

var formLabels = [formFieldCount]string{"Weight", "Units", "Avg HR", "High HR", "Low HR", "Notes"}

// biometricsScreen lists a user's biometric entries newest-first and offers
// an add-entry form. After a successful create the full list is re-fetched
// so the screen shows the persisted rows, never a locally-built copy.
type biometricsScreen struct {
	shared *appContext
	userID int

	entries   []entities.Biometric
	loadState fetchState

	showForm  bool
	form      [formFieldCount]string
	formFocus int
	saveState fetchState

	ctx    context.Context
	cancel context.CancelFunc
}

type biometricsMsg struct {
	gen  int
	list []entities.Biometric
	err  error
}

type biometricSavedMsg struct {
	gen int
	err error
}

func newBiometricsScreen(shared *appContext, userID int) *biometricsScreen {
	ctx, cancel := context.WithCancel(context.Background())
	s := &biometricsScreen{shared: shared, userID: userID, ctx: ctx, cancel: cancel}
	s.form[formUnits] = "lbs"
	return s
}

func (s *biometricsScreen) Init() tea.Cmd {
	return s.fetch()
}

func (s *biometricsScreen) Teardown() { s.cancel() }

func (s *biometricsScreen) fetch() tea.Cmd {
	gen := s.loadState.Load()
	return func() tea.Msg {
		list, err := s.shared.client.GetBiometrics(s.ctx, s.userID)
		return biometricsMsg{gen: gen, list: list, err: err}
	}
}

func (s *biometricsScreen) save() tea.Cmd {
	if strings.TrimSpace(s.form[formWeight]) == "" {
		gen := s.saveState.Load()
		s.saveState.Fail(gen, "Weight is required")
		return nil
	}

	gen := s.saveState.Load()
	entry := s.buildEntry()
	return func() tea.Msg {
		_, err := s.shared.client.CreateBiometric(s.ctx, entry)
		return biometricSavedMsg{gen: gen, err: err}
	}
}

// buildEntry assembles the outbound record from the form, dated today. The
// backend's saved row is the source of truth; this copy is discarded after
// the post.
func (s *biometricsScreen) buildEntry() entities.Biometric {
	entry := entities.Biometric{
		UserID: s.userID,
		Date:   time.Now().Format("2006-01-02"),
	}
	if w, err := strconv.ParseFloat(strings.TrimSpace(s.form[formWeight]), 64); err == nil {
		entry.Weight = &w
	}
	units := strings.TrimSpace(s.form[formUnits])
	if units == "" {
		units = "lbs"
	}
	entry.WeightUnits = &units

	entry.AvgHr = parseOptionalInt(s.form[formAvgHr])
	entry.HighHr = parseOptionalInt(s.form[formHighHr])
	entry.LowHr = parseOptionalInt(s.form[formLowHr])

	if notes := strings.TrimSpace(s.form[formNotes]); notes != "" {
		entry.Notes = &notes
	}
	return entry
}

func (s *biometricsScreen) busy() bool {
	return s.loadState.Loading() || s.saveState.Loading()
}

func (s *biometricsScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.busy() {
			return s, nil
		}
		if s.showForm {
			return s.updateForm(msg)
		}
		switch msg.String() {
		case "esc":
			return s, goBack()
		case "a":
			s.showForm = true
			s.formFocus = formWeight
			s.saveState.Reset()
		case "r":
			return s, s.fetch()
		}

	case biometricsMsg:
		if msg.err != nil {
			s.loadState.Fail(msg.gen, "Failed to load biometrics: "+errorMessage(msg.err))
			return s, nil
		}
		if s.loadState.Succeed(msg.gen) {
			sortBiometricsByDateDesc(msg.list)
			s.entries = msg.list
		}

	case biometricSavedMsg:
		if msg.err != nil {
			s.saveState.Fail(msg.gen, "Failed to add biometric: "+errorMessage(msg.err))
			return s, nil
		}
		if s.saveState.Succeed(msg.gen) {
			s.resetForm()
			// Re-fetch instead of appending the local copy, so server-assigned
			// ids and upserted rows are reflected.
			return s, s.fetch()
		}
	}

	return s, nil
}

func (s *biometricsScreen) updateForm(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.resetForm()
	case "tab", "down":
		s.formFocus = (s.formFocus + 1) % formFieldCount
	case "shift+tab", "up":
		s.formFocus = (s.formFocus + formFieldCount - 1) % formFieldCount
	case "enter":
		return s, s.save()
	case "backspace":
		field := s.form[s.formFocus]
		if len(field) > 0 {
			s.form[s.formFocus] = field[:len(field)-1]
		}
	default:
		if len(msg.String()) == 1 {
			s.form[s.formFocus] += msg.String()
		}
	}
	return s, nil
}

func (s *biometricsScreen) resetForm() {
	s.form = [formFieldCount]string{}
	s.form[formUnits] = "lbs"
	s.formFocus = formWeight
	s.showForm = false
	s.saveState.Reset()
}

func (s *biometricsScreen) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Biometrics") + "\n\n")

	if s.showForm {
		b.WriteString(s.viewForm())
	} else {
		b.WriteString(dimStyle.Render("a: add entry  r: refresh  Esc: back") + "\n\n")
	}

	if s.saveState.Failed() {
		b.WriteString(errorStyle.Render("✗ "+s.saveState.Err()) + "\n\n")
	}

	if summary := s.viewSummary(); summary != "" {
		b.WriteString(summary + "\n")
	}

	switch {
	case s.loadState.Loading():
		b.WriteString("Loading...\n")
	case s.loadState.Failed():
		b.WriteString(errorStyle.Render("✗ "+s.loadState.Err()) + "\n")
	case len(s.entries) == 0:
		b.WriteString(dimStyle.Render("No biometric data found") + "\n")
	default:
		for _, entry := range s.entries {
			b.WriteString(cardStyle.Render(biometricLines(entry)) + "\n")
		}
	}

	return b.String()
}

func (s *biometricsScreen) viewForm() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Add New Entry") + "\n")
	for i := 0; i < formFieldCount; i++ {
		marker := "  "
		if i == s.formFocus {
			marker = promptStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, formLabels[i], inputStyle.Render(s.form[i])))
	}
	if s.saveState.Loading() {
		b.WriteString("Saving...\n\n")
	} else {
		b.WriteString(dimStyle.Render("Tab to move, Enter to save, Esc to cancel") + "\n\n")
	}
	return b.String()
}

// viewSummary renders the current-weight and trend cards when at least one
// entry exists.
func (s *biometricsScreen) viewSummary() string {
	if len(s.entries) == 0 {
		return ""
	}

	latest := s.entries[0]
	current := "N/A"
	if latest.Weight != nil {
		units := ""
		if latest.WeightUnits != nil {
			units = " " + *latest.WeightUnits
		}
		current = fmt.Sprintf("%g%s", *latest.Weight, units)
	}

	summary := "Current Weight: " + current
	if trend, ok := weightTrend(s.entries); ok {
		summary += "   Trend: " + formatTrend(trend)
	}
	return cardStyle.Render(summary) + "\n"
}

// weightTrend is latest weight minus the previous entry's weight. Reported
// only when two entries exist; missing weights count as zero, matching the
// backend's rendering of sparse data.
func weightTrend(entries []entities.Biometric) (float64, bool) {
	if len(entries) < 2 {
		return 0, false
	}
	current, previous := 0.0, 0.0
	if entries[0].Weight != nil {
		current = *entries[0].Weight
	}
	if entries[1].Weight != nil {
		previous = *entries[1].Weight
	}
	return current - previous, true
}

// formatTrend shows one decimal place with an explicit sign. A falling
// weight is styled as favorable, a rising one as unfavorable.
func formatTrend(trend float64) string {
	text := fmt.Sprintf("%+.1f", trend)
	if trend < 0 {
		return trendDownStyle.Render(text + " ↓")
	}
	return trendUpStyle.Render(text + " ↑")
}

// sortBiometricsByDateDesc orders entries most-recent-first. Dates are ISO
// formatted so a plain string compare is correct.
func sortBiometricsByDateDesc(entries []entities.Biometric) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

func biometricLines(entry entities.Biometric) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(entry.Date))
	if entry.Weight != nil {
		units := ""
		if entry.WeightUnits != nil {
			units = " " + *entry.WeightUnits
		}
		b.WriteString(fmt.Sprintf("  %g%s", *entry.Weight, units))
	}
	hr := []string{}
	if entry.AvgHr != nil {
		hr = append(hr, fmt.Sprintf("Avg HR: %d", *entry.AvgHr))
	}
	if entry.HighHr != nil {
		hr = append(hr, fmt.Sprintf("High: %d", *entry.HighHr))
	}
	if entry.LowHr != nil {
		hr = append(hr, fmt.Sprintf("Low: %d", *entry.LowHr))
	}
	if len(hr) > 0 {
		b.WriteString("\n" + strings.Join(hr, "  "))
	}
	if entry.Notes != nil && strings.TrimSpace(*entry.Notes) != "" {
		b.WriteString("\n" + dimStyle.Render(*entry.Notes))
	}
	return b.String()
}

func parseOptionalInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}
