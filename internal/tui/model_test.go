package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tripy/tripy-console/internal/api"
	"github.com/tripy/tripy-console/internal/busy"
	"github.com/tripy/tripy-console/internal/config"
	"github.com/tripy/tripy-console/internal/conversation"
	"github.com/tripy/tripy-console/internal/i18n"
	"github.com/tripy/tripy-console/internal/session"
	"github.com/tripy/tripy-console/internal/status"
	"github.com/tripy/tripy-console/internal/views"
)

type nopStore struct{}

func (nopStore) LoadToken() string { return "" }
func (nopStore) SaveToken(string)  {}
func (nopStore) ClearToken()       {}

func newTestModel(t *testing.T) Model {
	t.Helper()
	reporter := status.NewReporter()
	sess := session.NewManager(nil, nopStore{}, reporter)
	conv := conversation.NewEngine(nil, sess, reporter, nil)
	cfg := config.Config{
		API: config.APIConfig{BaseURL: "http://localhost:8000/api/v1"},
		UI:  config.UIConfig{DefaultUsername: "admin", DefaultPassword: "ChangeMe123!"},
	}
	return New(Deps{
		Config:   cfg,
		Client:   api.NewClient(cfg.API.BaseURL, 0),
		Session:  sess,
		Conv:     conv,
		Guard:    &busy.Guard{},
		Reporter: reporter,
		Nav:      views.New(views.Default()...),
		Locale:   i18n.LocaleEN,
	})
}

func TestNewPrefillsLoginForm(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, "admin", m.fields[fieldLoginUser].Value())
	require.Equal(t, "ChangeMe123!", m.fields[fieldLoginPass].Value())
	require.Equal(t, views.Assistant, m.nav.Active())
}

func TestTabCyclesViews(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, views.Identity, m.nav.Active())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	require.Equal(t, views.Assistant, m.nav.Active())
}

func TestEndThenHomeClampNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = next.(Model)
	require.Equal(t, views.System, m.nav.Active())

	// already at the last view, another tab must not wrap
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, views.System, m.nav.Active())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = next.(Model)
	require.Equal(t, views.Assistant, m.nav.Active())
}

func TestBlankPromptDoesNotDispatch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.prompt.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
}

func TestAnonymousPromptDoesNotDispatch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.prompt.SetValue("plan a trip to Kunming")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
}

func TestLocaleToggleRetitlesPrompt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(Model)
	require.Equal(t, i18n.LocaleZH, m.locale)
	require.Equal(t, i18n.T(i18n.LocaleZH, "assistant.placeholder", nil), m.prompt.Placeholder)
}

func TestViewRendersWithoutSession(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	out := m.View()
	require.Contains(t, out, i18n.T(i18n.LocaleEN, "hero.overline", nil))
	require.Contains(t, out, i18n.T(i18n.LocaleEN, "status.ready", nil))
}
