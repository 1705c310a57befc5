package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripy/tripy-console/internal/api"
	"github.com/tripy/tripy-console/internal/status"
)

// Completion messages. Every remote action runs inside the guard so the
// footer can report the busy action; the guard is released on all exit paths.

type bootstrapDoneMsg struct{ err error }
type loginDoneMsg struct{ err error }
type refreshDoneMsg struct{ err error }
type registerDoneMsg struct{ err error }
type graphDoneMsg struct{ err error }
type usersLoadedMsg struct {
	users []api.User
	err   error
}
type healthDoneMsg struct {
	live      string
	ready     string
	checkedAt string
	err       error
}

func (m Model) bootstrapCmd() tea.Cmd {
	sess, guard := m.sess, m.guard
	return func() tea.Msg {
		err := guard.Run(actionRefresh, func() error {
			return sess.Bootstrap(context.Background())
		})
		return bootstrapDoneMsg{err: err}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	sess, guard := m.sess, m.guard
	return func() tea.Msg {
		err := guard.Run(actionLogin, func() error {
			return sess.Login(context.Background(), username, password)
		})
		return loginDoneMsg{err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	sess, guard := m.sess, m.guard
	return func() tea.Msg {
		err := guard.Run(actionRefresh, func() error {
			return sess.RefreshProfile(context.Background())
		})
		return refreshDoneMsg{err: err}
	}
}

func (m Model) registerCmd(payload api.RegisterPayload) tea.Cmd {
	sess, guard := m.sess, m.guard
	return func() tea.Msg {
		err := guard.Run(actionRegister, func() error {
			return sess.Register(context.Background(), payload)
		})
		return registerDoneMsg{err: err}
	}
}

func (m Model) sendCmd(prompt string) tea.Cmd {
	conv, guard := m.conv, m.guard
	return func() tea.Msg {
		err := guard.Run(actionGraph, func() error {
			return conv.Send(context.Background(), prompt)
		})
		return graphDoneMsg{err: err}
	}
}

func (m Model) usersCmd() tea.Cmd {
	sess, guard := m.sess, m.guard
	return func() tea.Msg {
		var users []api.User
		err := guard.Run(actionUsers, func() error {
			var err error
			users, err = sess.ListUsers(context.Background(), 0, 200)
			return err
		})
		return usersLoadedMsg{users: users, err: err}
	}
}

// healthCmd probes both endpoints. Health has no capability gate and no
// session state, so the shell reports its status directly.
func (m Model) healthCmd() tea.Cmd {
	client, guard, reporter := m.client, m.guard, m.reporter
	return func() tea.Msg {
		msg := healthDoneMsg{live: "unknown", ready: "unknown"}
		err := guard.Run(actionHealth, func() error {
			live, err := client.CheckLive(context.Background())
			if err != nil {
				return err
			}
			msg.live = live.Status
			ready, err := client.CheckReady(context.Background())
			if err != nil {
				return err
			}
			msg.ready = ready.Status
			return nil
		})
		msg.checkedAt = time.Now().Format("2006-01-02 15:04:05")
		msg.err = err
		if err != nil {
			reporter.Set("status.healthFailed", status.Params{"reason": api.Reason(err)})
		} else {
			reporter.Set("status.healthPassed", status.Params{"time": msg.checkedAt})
		}
		return msg
	}
}
