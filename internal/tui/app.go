package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/store"
)

// Screen is the page the app is currently showing.
type Screen int

const (
	// ScreenWelcome is the activity entry form.
	ScreenWelcome Screen = iota
	// ScreenProfile asks for email, city and country.
	ScreenProfile
	// ScreenLoading shows the spinner before the report.
	ScreenLoading
	// ScreenReport shows the computed report.
	ScreenReport
	// ScreenError is the fallback shown after an unexpected failure.
	ScreenError
	// ScreenQuitting is set just before the program exits.
	ScreenQuitting
)

// Default dimensions before the first WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options tunes the app.
type Options struct {
	// Unit is the display unit for totals (g, kg, t, lb).
	Unit string

	// LoadingDelay is how long the spinner is shown before the report.
	// Zero skips the loading screen.
	LoadingDelay time.Duration

	// HideEquivalency omits the "equivalent to" insight.
	HideEquivalency bool

	// Precision is the number of decimals in totals; zero means
	// engine.DefaultPrecision.
	Precision int

	// Now stamps new activities and reports; nil means time.Now.
	Now func() time.Time
}

// reportReadyMsg ends the loading screen.
type reportReadyMsg struct{}

// AppModel is the Bubble Tea model for the welcome, profile and report
// screens.
type AppModel struct {
	ctx   context.Context
	store *store.Store
	opts  Options

	screen Screen
	width  int
	height int

	welcome *welcomeForm
	profile *profileForm

	// unconfirmed holds the IDs saved by the last welcome submission until
	// the profile is submitted. Going back to the welcome form removes them.
	unconfirmed []string

	// validation is a blocking message shown under the current form.
	validation string

	loading *LoadingState
	report  engine.Report

	err error
}

// NewAppModel creates the app on the welcome screen. A stored profile
// pre-fills the profile form.
func NewAppModel(ctx context.Context, st *store.Store, opts Options) *AppModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &AppModel{
		ctx:     ctx,
		store:   st,
		opts:    opts,
		screen:  ScreenWelcome,
		width:   defaultWidth,
		height:  defaultHeight,
		welcome: newWelcomeForm(),
		profile: newProfileForm(),
	}
	if p, ok := st.Profile(); ok {
		m.profile.fill(p)
	}
	return m
}

// Screen returns the current screen.
func (m *AppModel) Screen() Screen {
	return m.screen
}

// Err returns the error shown on the error screen, if any.
func (m *AppModel) Err() error {
	return m.err
}

// Init focuses the first activity input.
func (m *AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state. A panic in any
// handler moves the app to the error screen instead of crashing the
// terminal.
func (m *AppModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.fail(fmt.Errorf("unexpected error: %v", r))
			model, cmd = m, nil
		}
	}()

	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
		m.screen = ScreenQuitting
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		return m.updateWelcome(msg)
	case ScreenProfile:
		return m.updateProfile(msg)
	case ScreenLoading:
		return m.updateLoading(msg)
	case ScreenReport:
		return m.updateReport(msg)
	case ScreenError:
		return m.updateError(msg)
	case ScreenQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *AppModel) fail(err error) {
	m.err = err
	m.screen = ScreenError
	logging.FromContext(m.ctx).Error().Err(err).Msg("tui error")
}

func (m *AppModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.welcome.update(msg)
	}

	switch keyMsg.String() {
	case keyEsc:
		m.screen = ScreenQuitting
		return m, tea.Quit
	case keyTab, keyDown:
		return m, m.welcome.move(1)
	case keyShiftTab, keyUp:
		return m, m.welcome.move(-1)
	case keyEnter:
		if !m.welcome.onLast() {
			return m, m.welcome.move(1)
		}
		return m.submitWelcome()
	}
	return m, m.welcome.update(msg)
}

func (m *AppModel) submitWelcome() (tea.Model, tea.Cmd) {
	activities, err := store.ActivitiesFromForm(m.welcome.values(), m.opts.Now())
	if err != nil {
		m.validation = err.Error()
		return m, nil
	}
	if addErr := m.store.Add(m.ctx, activities...); addErr != nil {
		m.fail(addErr)
		return m, nil
	}

	m.unconfirmed = m.unconfirmed[:0]
	for _, a := range activities {
		m.unconfirmed = append(m.unconfirmed, a.ID)
	}

	m.validation = ""
	m.screen = ScreenProfile
	return m, m.profile.focusFirst()
}

func (m *AppModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.profile.update(msg)
	}

	switch keyMsg.String() {
	case keyEsc:
		if m.profile.hasSuggestions() {
			m.profile.dismissSuggestions()
			return m, nil
		}
		return m.backToWelcome()
	case keyUp:
		if m.profile.hasSuggestions() {
			m.profile.moveSuggestion(-1)
			return m, nil
		}
		return m, m.profile.move(-1)
	case keyDown:
		if m.profile.hasSuggestions() {
			m.profile.moveSuggestion(1)
			return m, nil
		}
		return m, m.profile.move(1)
	case keyTab:
		return m, m.profile.move(1)
	case keyShiftTab:
		return m, m.profile.move(-1)
	case keyEnter:
		if m.profile.hasSuggestions() {
			return m, m.profile.acceptSuggestion()
		}
		if !m.profile.onLast() {
			return m, m.profile.move(1)
		}
		return m.submitProfile()
	}
	return m, m.profile.update(msg)
}

// backToWelcome withdraws the activities of the last welcome submission so
// submitting the still-filled form again does not count them twice.
func (m *AppModel) backToWelcome() (tea.Model, tea.Cmd) {
	for _, id := range m.unconfirmed {
		if _, err := m.store.Remove(m.ctx, id); err != nil {
			m.fail(fmt.Errorf("withdrawing activities: %w", err))
			return m, nil
		}
	}
	m.unconfirmed = nil
	m.validation = ""
	m.screen = ScreenWelcome
	return m, m.welcome.focusFirst()
}

func (m *AppModel) submitProfile() (tea.Model, tea.Cmd) {
	_, err := m.store.SetProfile(m.ctx, m.profile.value())
	if errors.Is(err, store.ErrEmailRequired) {
		m.validation = err.Error()
		return m, nil
	}
	if err != nil {
		m.fail(err)
		return m, nil
	}
	m.validation = ""
	m.unconfirmed = nil

	if m.opts.LoadingDelay <= 0 {
		m.showReport()
		return m, nil
	}

	m.screen = ScreenLoading
	m.loading = NewLoadingState()
	return m, tea.Batch(
		m.loading.Init(),
		tea.Tick(m.opts.LoadingDelay, func(time.Time) tea.Msg { return reportReadyMsg{} }),
	)
}

func (m *AppModel) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportReadyMsg:
		m.showReport()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == keyQuit {
			m.screen = ScreenQuitting
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.loading.Update(msg)
}

func (m *AppModel) showReport() {
	var profile *store.Profile
	if p, ok := m.store.Profile(); ok {
		profile = &p
	}
	m.report = engine.BuildReport(m.store.Activities(), profile, engine.ReportOptions{
		Now:             m.opts.Now(),
		Unit:            m.opts.Unit,
		HideEquivalency: m.opts.HideEquivalency,
		Precision:       m.opts.Precision,
	})
	m.screen = ScreenReport

	logging.FromContext(m.ctx).Debug().
		Float64("total_kg", m.report.TotalKg).
		Str("impact", m.report.Impact.String()).
		Msg("report shown")
}

func (m *AppModel) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyQuit, keyEsc:
		m.screen = ScreenQuitting
		return m, tea.Quit
	case keyNew:
		m.welcome = newWelcomeForm()
		m.screen = ScreenWelcome
		return m, textinput.Blink
	case keyReset:
		return m.resetAll()
	}
	return m, nil
}

func (m *AppModel) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyQuit, keyEsc:
		m.screen = ScreenQuitting
		return m, tea.Quit
	case keyRetry:
		return m.resetAll()
	}
	return m, nil
}

// resetAll erases every stored value and returns to an empty welcome form.
func (m *AppModel) resetAll() (tea.Model, tea.Cmd) {
	if err := m.store.Clear(m.ctx); err != nil {
		m.fail(fmt.Errorf("resetting data: %w", err))
		return m, nil
	}
	m.err = nil
	m.validation = ""
	m.report = engine.Report{}
	m.unconfirmed = nil
	m.welcome = newWelcomeForm()
	m.profile = newProfileForm()
	m.screen = ScreenWelcome
	return m, textinput.Blink
}

// View renders the current screen.
func (m *AppModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = renderError(fmt.Errorf("rendering failed: %v", r))
		}
	}()

	switch m.screen {
	case ScreenWelcome:
		return m.welcome.view(m.validation)
	case ScreenProfile:
		return m.profile.view(m.validation)
	case ScreenLoading:
		return RenderLoading(m.loading)
	case ScreenReport:
		return RenderReport(m.report, m.width)
	case ScreenError:
		return renderError(m.err)
	case ScreenQuitting:
		return ""
	default:
		return ""
	}
}

func renderError(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return "\n" + CriticalStyle.Render("Something went wrong.") + "\n\n" +
		LabelStyle.Render(msg) + "\n\n" +
		SubtleStyle.Render("r reset and start over • q quit") + "\n"
}
