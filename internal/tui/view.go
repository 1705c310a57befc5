package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tripy/tripy-console/internal/conversation"
	"github.com/tripy/tripy-console/internal/i18n"
	"github.com/tripy/tripy-console/internal/session"
	"github.com/tripy/tripy-console/internal/views"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := headerStyle.Render(m.tt("hero.overline", nil))

	chip := guestChipStyle.Render(m.tt("session.guest", nil))
	if m.sess.IsAuthenticated() {
		chip = okChipStyle.Render(m.tt("session.authed", nil))
	}

	var tabs []string
	for _, id := range m.nav.Order() {
		label := m.tt("view."+string(id), nil)
		if id == m.nav.Active() {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	top := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", chip)
	return top + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m Model) renderContent() string {
	switch m.nav.Active() {
	case views.Assistant:
		return m.renderAssistant()
	case views.Identity:
		return m.renderIdentity()
	case views.Admin:
		return m.renderAdmin()
	case views.System:
		return m.renderSystem()
	}
	return ""
}

func (m Model) renderAssistant() string {
	var b strings.Builder

	thread := m.conv.ThreadID()
	if thread == "" {
		thread = m.tt("assistant.newThread", nil)
	}
	b.WriteString(panelTitleStyle.Render(m.tt("assistant.title", nil)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s: %s", m.tt("assistant.thread", nil), thread)))
	b.WriteString("\n")

	if m.sess.IsAuthenticated() && !m.sess.Can(session.PermGraphExecute) {
		b.WriteString(warnStyle.Render(m.tt("assistant.noPermission", nil)))
		b.WriteString("\n")
	}

	msgs := m.conv.Messages()
	if len(msgs) == 0 {
		b.WriteString(mutedStyle.Render(m.tt("assistant.emptyTitle", nil)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.tt("assistant.emptyDesc", nil)))
		b.WriteString("\n")
	} else {
		for _, msg := range tailMessages(msgs, m.transcriptRows()) {
			b.WriteString(m.renderMessage(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.tt("assistant.tip", nil)))
	return b.String()
}

func (m Model) renderMessage(msg conversation.Message) string {
	ts := msg.CreatedAt.Local().Format("15:04:05")
	head := fmt.Sprintf("[%s] %s", ts, msg.Role)

	var style lipgloss.Style
	switch msg.Role {
	case conversation.RoleUser:
		style = userMsgStyle
	case conversation.RoleSystem:
		style = systemMsgStyle
	default:
		style = assistantMsgStyle
	}

	line := labelStyle.Render(head) + "  " + style.Render(msg.Text)
	if msg.Interrupted {
		line += " " + interruptChipStyle.Render(m.tt("assistant.interrupted", nil))
	}
	return line
}

func (m Model) renderIdentity() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(m.tt("identity.title", nil)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(m.tt("session.title", nil)))
	b.WriteString("\n")
	b.WriteString(m.renderField(fieldLoginUser, m.tt("session.username", nil)))
	b.WriteString(m.renderField(fieldLoginPass, m.tt("session.password", nil)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(m.tt("register.title", nil)))
	b.WriteString("\n")
	b.WriteString(m.renderField(fieldRegUser, m.tt("register.username", nil)))
	b.WriteString(m.renderField(fieldRegPass, m.tt("register.password", nil)))
	b.WriteString(m.renderField(fieldRegPassenger, m.tt("register.passenger", nil)))
	b.WriteString("\n")

	profile, ok := m.sess.Profile()
	if !ok {
		b.WriteString(mutedStyle.Render(m.tt("identity.prompt", nil)))
		return b.String()
	}

	active := m.tt("identity.disabled", nil)
	if profile.IsActive {
		active = m.tt("identity.active", nil)
	}
	b.WriteString(fmt.Sprintf("%s: %d   %s: %s   %s: %s\n",
		m.tt("identity.userId", nil), profile.ID,
		m.tt("identity.passengerId", nil), strOrDash(profile.PassengerID),
		m.tt("identity.userStatus", nil), active))
	b.WriteString(fmt.Sprintf("%s: %s\n", m.tt("identity.email", nil), strOrDash(profile.Email)))
	b.WriteString(fmt.Sprintf("%s: %s\n", m.tt("identity.roles", nil), joinOrNone(m.sess.Roles(), m.tt("identity.none", nil))))
	b.WriteString(fmt.Sprintf("%s: %s\n", m.tt("identity.permissions", nil), joinOrNone(m.sess.Permissions(), m.tt("identity.none", nil))))
	return b.String()
}

func (m Model) renderField(idx int, label string) string {
	marker := "  "
	if idx == m.fieldFocus && m.nav.Active() == views.Identity {
		marker = lipgloss.NewStyle().Foreground(colorFocus).Render("> ")
	}
	return fmt.Sprintf("%s%s %s\n", marker, labelStyle.Render(label+":"), m.fields[idx].View())
}

func (m Model) renderAdmin() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(m.tt("admin.title", nil)))
	b.WriteString("\n\n")

	switch {
	case !m.sess.IsAuthenticated():
		b.WriteString(mutedStyle.Render(m.tt("admin.signInPrompt", nil)))
		b.WriteString("\n")
	case !m.sess.Can(session.PermUsersRead):
		b.WriteString(warnStyle.Render(m.tt("admin.noPermission", nil)))
		b.WriteString("\n")
	}

	if len(m.users) == 0 {
		b.WriteString(mutedStyle.Render(m.tt("admin.empty", nil)))
		return b.String()
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("%-5s %-16s %-20s %s",
		m.tt("admin.id", nil), m.tt("admin.username", nil),
		m.tt("admin.roles", nil), m.tt("admin.permissions", nil))))
	b.WriteString("\n")
	for _, u := range m.users {
		b.WriteString(fmt.Sprintf("%-5d %-16s %-20s %s\n",
			u.ID, u.Username,
			joinOrNone(u.Roles, "-"), joinOrNone(u.Permissions, "-")))
	}
	return b.String()
}

func (m Model) renderSystem() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(m.tt("system.title", nil)))
	b.WriteString("\n\n")

	authed := m.tt("system.no", nil)
	if m.sess.IsAuthenticated() {
		authed = m.tt("system.yes", nil)
	}
	thread := m.conv.ThreadID()
	if thread == "" {
		thread = "-"
	}

	b.WriteString(labelStyle.Render(m.tt("system.connection", nil)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s: %s\n", m.tt("system.api", nil), m.client.BaseURL()))
	b.WriteString(fmt.Sprintf("  %s: %s   %s: %s   %s: %s\n",
		m.tt("env.live", nil), m.health.live,
		m.tt("env.ready", nil), m.health.ready,
		m.tt("env.checked", nil), m.health.checkedAt))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(m.tt("system.session", nil)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s: %s   %s: %s   %s: %d\n",
		m.tt("system.authenticated", nil), authed,
		m.tt("system.roles", nil), joinOrNone(m.sess.Roles(), "-"),
		m.tt("system.permissions", nil), len(m.sess.Permissions())))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(m.tt("system.activity", nil)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s: %d   %s: %s\n",
		m.tt("system.messages", nil), m.conv.Len(),
		m.tt("system.thread", nil), thread))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("h: " + m.tt("env.runHealth", nil)))
	return b.String()
}

func (m Model) renderFooter() string {
	cur := m.reporter.Current()
	line := m.tt(cur.Key, i18n.Params(cur.Params))

	style := footerStyle
	if name := m.guard.Current(); name != "" {
		style = footerBusyStyle
		line = fmt.Sprintf("[%s] %s", name, line)
	}
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(line)
}

// transcriptRows bounds how many messages fit above the prompt box.
func (m Model) transcriptRows() int {
	rows := m.height - 12
	if rows < 4 {
		rows = 4
	}
	return rows
}

func tailMessages(msgs []conversation.Message, n int) []conversation.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func joinOrNone(list []string, none string) string {
	if len(list) == 0 {
		return none
	}
	return strings.Join(list, ", ")
}
