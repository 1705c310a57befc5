// Package tui is the terminal shell over the session and conversation
// engines. It owns no workflow state of its own beyond what is needed to
// paint: the engines are the source of truth and the shell reads them on
// every frame.
package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripy/tripy-console/internal/api"
	"github.com/tripy/tripy-console/internal/busy"
	"github.com/tripy/tripy-console/internal/config"
	"github.com/tripy/tripy-console/internal/conversation"
	"github.com/tripy/tripy-console/internal/i18n"
	"github.com/tripy/tripy-console/internal/session"
	"github.com/tripy/tripy-console/internal/status"
	"github.com/tripy/tripy-console/internal/views"
)

// Action names claimed by the concurrency guard. The shell disables the
// triggering control while its action is registered; the guard itself never
// blocks.
const (
	actionLogin    = "login"
	actionRegister = "register"
	actionRefresh  = "refresh"
	actionGraph    = "graph"
	actionUsers    = "users"
	actionHealth   = "health"
)

// Indexes into the identity-view form fields.
const (
	fieldLoginUser = iota
	fieldLoginPass
	fieldRegUser
	fieldRegPass
	fieldRegPassenger
	fieldCount
)

type healthState struct {
	live      string
	ready     string
	checkedAt string
}

// Model is the bubbletea root model.
type Model struct {
	cfg      config.Config
	keys     keyMap
	client   *api.Client
	sess     *session.Manager
	conv     *conversation.Engine
	guard    *busy.Guard
	reporter *status.Reporter
	nav      *views.Navigator
	locale   i18n.Locale

	width  int
	height int

	prompt     textarea.Model
	fields     []textinput.Model
	fieldFocus int

	users  []api.User
	health healthState
}

// Deps bundles the wired engines handed to the shell.
type Deps struct {
	Config   config.Config
	Client   *api.Client
	Session  *session.Manager
	Conv     *conversation.Engine
	Guard    *busy.Guard
	Reporter *status.Reporter
	Nav      *views.Navigator
	Locale   i18n.Locale
}

// New builds the shell. Login fields are prefilled with the configured
// convenience credentials, matching the original console.
func New(d Deps) Model {
	prompt := textarea.New()
	prompt.Placeholder = i18n.T(d.Locale, "assistant.placeholder", nil)
	prompt.SetHeight(3)
	prompt.ShowLineNumbers = false
	prompt.Focus()

	fields := make([]textinput.Model, fieldCount)
	for i := range fields {
		fields[i] = textinput.New()
	}
	fields[fieldLoginUser].SetValue(d.Config.UI.DefaultUsername)
	fields[fieldLoginPass].SetValue(d.Config.UI.DefaultPassword)
	fields[fieldLoginPass].EchoMode = textinput.EchoPassword
	fields[fieldRegPass].EchoMode = textinput.EchoPassword
	fields[fieldLoginUser].Focus()

	m := Model{
		cfg:      d.Config,
		keys:     newKeyMap(),
		client:   d.Client,
		sess:     d.Session,
		conv:     d.Conv,
		guard:    d.Guard,
		reporter: d.Reporter,
		nav:      d.Nav,
		locale:   d.Locale,
		prompt:   prompt,
		fields:   fields,
		health:   healthState{live: "unknown", ready: "unknown", checkedAt: "-"},
	}
	return m
}

// Init rehydrates any persisted session before the first frame settles.
func (m Model) Init() tea.Cmd {
	return m.bootstrapCmd()
}

// tt renders a dictionary key in the active locale.
func (m Model) tt(key string, params i18n.Params) string {
	return i18n.T(m.locale, key, params)
}
