package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripy/tripy-console/internal/api"
	"github.com/tripy/tripy-console/internal/i18n"
	"github.com/tripy/tripy-console/internal/views"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(msg.Width - 6)
		return m, nil

	case bootstrapDoneMsg:
		return m, nil

	case loginDoneMsg:
		if msg.err == nil {
			// entering a token-holding state always triggers a profile refresh
			return m, m.refreshCmd()
		}
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			// forced invalidation: drop admin data fetched under the dead token
			m.users = nil
		}
		return m, nil

	case registerDoneMsg:
		if msg.err == nil {
			m.fields[fieldRegUser].Reset()
			m.fields[fieldRegPass].Reset()
			m.fields[fieldRegPassenger].Reset()
		}
		return m, nil

	case graphDoneMsg:
		return m, nil

	case usersLoadedMsg:
		if msg.err == nil {
			m.users = msg.users
		}
		return m, nil

	case healthDoneMsg:
		m.health = healthState{live: msg.live, ready: msg.ready, checkedAt: msg.checkedAt}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// global bindings win over any focused input
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Locale):
		m.locale = i18n.Toggle(m.locale)
		m.prompt.Placeholder = m.tt("assistant.placeholder", nil)
		return m, nil

	case key.Matches(msg, m.keys.NextView):
		m.nav.Next()
		return m.syncFocus(), nil

	case key.Matches(msg, m.keys.PrevView):
		m.nav.Prev()
		return m.syncFocus(), nil

	case key.Matches(msg, m.keys.Home):
		m.nav.Home()
		return m.syncFocus(), nil

	case key.Matches(msg, m.keys.End):
		m.nav.End()
		return m.syncFocus(), nil

	case key.Matches(msg, m.keys.SignOut):
		if m.sess.IsAuthenticated() {
			m.sess.Logout()
			m.users = nil
		}
		return m, nil
	}

	switch m.nav.Active() {
	case views.Assistant:
		return m.updateAssistant(msg)
	case views.Identity:
		return m.updateIdentity(msg)
	case views.Admin:
		return m.updateAdmin(msg)
	case views.System:
		return m.updateSystem(msg)
	}
	return m, nil
}

// syncFocus points keyboard focus at the right input for the active view.
func (m Model) syncFocus() Model {
	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.prompt.Blur()

	switch m.nav.Active() {
	case views.Assistant:
		m.prompt.Focus()
	case views.Identity:
		m.fields[m.fieldFocus].Focus()
	}
	return m
}

func (m Model) updateAssistant(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Send):
		prompt := m.prompt.Value()
		if strings.TrimSpace(prompt) == "" {
			return m, nil
		}
		// advisory exclusion happens here: the control is disabled while busy
		if !m.guard.Idle() || !m.sess.IsAuthenticated() {
			return m, nil
		}
		m.prompt.Reset()
		return m, m.sendCmd(prompt)

	case key.Matches(msg, m.keys.Clear):
		if m.conv.Len() > 0 || m.conv.ThreadID() != "" {
			m.conv.Clear()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) updateIdentity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextRow):
		return m.moveFieldFocus(1), nil

	case key.Matches(msg, m.keys.PrevRow):
		return m.moveFieldFocus(-1), nil

	case key.Matches(msg, m.keys.Submit):
		if !m.guard.Idle() {
			return m, nil
		}
		if m.fieldFocus == fieldLoginUser || m.fieldFocus == fieldLoginPass {
			if m.sess.IsAuthenticated() {
				return m, nil
			}
			return m, m.loginCmd(m.fields[fieldLoginUser].Value(), m.fields[fieldLoginPass].Value())
		}
		payload := api.RegisterPayload{
			Username:    strings.TrimSpace(m.fields[fieldRegUser].Value()),
			Password:    m.fields[fieldRegPass].Value(),
			PassengerID: strings.TrimSpace(m.fields[fieldRegPassenger].Value()),
		}
		if payload.Username == "" || payload.Password == "" {
			return m, nil
		}
		return m, m.registerCmd(payload)
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m Model) moveFieldFocus(delta int) Model {
	m.fields[m.fieldFocus].Blur()
	m.fieldFocus = (m.fieldFocus + delta + fieldCount) % fieldCount
	m.fields[m.fieldFocus].Focus()
	return m
}

func (m Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Refresh) && m.guard.Idle() {
		// permission gating happens in the session manager before dispatch
		return m, m.usersCmd()
	}
	return m, nil
}

func (m Model) updateSystem(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Health) && m.guard.Idle() {
		return m, m.healthCmd()
	}
	return m, nil
}
