// Package session owns the authentication state machine: token, profile, and
// the role/permission claims every feature gate derives from.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/tripy/tripy-console/internal/api"
	"github.com/tripy/tripy-console/internal/status"
)

// Capability strings granted by the service and checked before gated actions.
const (
	PermGraphExecute = "graph:execute"
	PermUsersRead    = "users:read"
)

// ErrPermissionDenied means a local capability check failed before any remote
// call was made. It never reaches the status line.
var ErrPermissionDenied = errors.New("permission denied")

// Gateway is the slice of the remote API the session manager drives.
type Gateway interface {
	Login(ctx context.Context, username, password string) (api.TokenResponse, error)
	Register(ctx context.Context, payload api.RegisterPayload) (api.User, error)
	Me(ctx context.Context, token string) (api.User, error)
	ListUsers(ctx context.Context, token string, skip, limit int) ([]api.User, error)
}

// TokenStore persists the access token across runs.
type TokenStore interface {
	LoadToken() string
	SaveToken(token string)
	ClearToken()
}

// Manager holds the session and is the only writer of the token. The three
// paths that touch it (login, logout, forced invalidation) all go through the
// same store so memory and disk cannot diverge.
type Manager struct {
	gw     Gateway
	store  TokenStore
	status *status.Reporter

	mu          sync.Mutex
	token       string
	profile     *api.User
	roles       []string
	permissions []string
	onReset     []func()
}

// NewManager wires the session manager. The reporter must not be nil.
func NewManager(gw Gateway, store TokenStore, reporter *status.Reporter) *Manager {
	return &Manager{gw: gw, store: store, status: reporter}
}

// OnReset registers a callback invoked whenever the session is torn down, by
// logout or by forced invalidation. The conversation engine registers its
// Clear here so a new session never inherits an old transcript.
func (m *Manager) OnReset(fn func()) {
	m.mu.Lock()
	m.onReset = append(m.onReset, fn)
	m.mu.Unlock()
}

// Bootstrap rehydrates a persisted token and validates it with a profile
// refresh. A missing token is not an error; a rejected one invalidates the
// rehydrated session again.
func (m *Manager) Bootstrap(ctx context.Context) error {
	tok := m.store.LoadToken()
	if tok == "" {
		return nil
	}
	m.mu.Lock()
	m.token = tok
	m.mu.Unlock()
	return m.RefreshProfile(ctx)
}

// Login authenticates and, on success, persists the token and adopts the
// role/permission claims from the login result immediately, without waiting
// for a profile fetch. Callers should follow a successful login with
// RefreshProfile to populate the profile snapshot.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	m.status.Set("status.signingIn", nil)

	res, err := m.gw.Login(ctx, username, password)
	if err != nil {
		m.status.Set("status.loginFailed", status.Params{"reason": api.Reason(err)})
		return err
	}

	m.mu.Lock()
	m.token = res.AccessToken
	m.profile = nil
	m.roles = cloneStrings(res.Roles)
	m.permissions = cloneStrings(res.Permissions)
	m.mu.Unlock()

	m.store.SaveToken(res.AccessToken)

	roleText := strings.Join(res.Roles, ", ")
	if roleText == "" {
		roleText = "none"
	}
	m.status.Set("status.signedIn", status.Params{"roles": roleText})
	return nil
}

// RefreshProfile fetches /auth/me for the current token and replaces the
// profile snapshot wholesale. A failure is treated as proof the token is
// stale or revoked and forcibly invalidates the session, whatever else is in
// flight. The completion is discarded if the token changed while the fetch
// was outstanding.
func (m *Manager) RefreshProfile(ctx context.Context) error {
	m.mu.Lock()
	tok := m.token
	m.mu.Unlock()
	if tok == "" {
		return nil
	}

	user, err := m.gw.Me(ctx, tok)

	m.mu.Lock()
	if m.token != tok {
		// superseded by logout or a fresh login; drop the result
		m.mu.Unlock()
		return nil
	}
	if err != nil {
		resets := m.resetLocked()
		m.mu.Unlock()
		m.store.ClearToken()
		runAll(resets)
		m.status.Set("status.sessionExpired", status.Params{"reason": api.Reason(err)})
		return err
	}
	m.profile = &user
	m.roles = cloneStrings(user.Roles)
	m.permissions = cloneStrings(user.Permissions)
	m.mu.Unlock()
	return nil
}

// Logout tears the session down synchronously: memory, persisted token, and
// every registered reset hook.
func (m *Manager) Logout() {
	m.mu.Lock()
	resets := m.resetLocked()
	m.mu.Unlock()
	m.store.ClearToken()
	runAll(resets)
	m.status.Set("status.signedOut", nil)
}

// Register creates a new account. It does not sign the new user in.
func (m *Manager) Register(ctx context.Context, payload api.RegisterPayload) error {
	if _, err := m.gw.Register(ctx, payload); err != nil {
		m.status.Set("status.registerFailed", status.Params{"reason": api.Reason(err)})
		return err
	}
	m.status.Set("status.userRegistered", nil)
	return nil
}

// ListUsers reads the admin user inventory. The capability check happens
// before dispatch: without users:read no call is made and the status line is
// left untouched.
func (m *Manager) ListUsers(ctx context.Context, skip, limit int) ([]api.User, error) {
	m.mu.Lock()
	tok := m.token
	allowed := containsString(m.permissions, PermUsersRead)
	m.mu.Unlock()
	if tok == "" || !allowed {
		return nil, ErrPermissionDenied
	}

	users, err := m.gw.ListUsers(ctx, tok, skip, limit)
	if err != nil {
		m.status.Set("status.usersFailed", status.Params{"reason": api.Reason(err)})
		return nil, err
	}
	m.status.Set("status.usersLoaded", status.Params{"count": len(users)})
	return users, nil
}

// IsAuthenticated is true exactly when a token is held.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// Token returns the current access token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Profile returns the last fetched profile snapshot, if any.
func (m *Manager) Profile() (api.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return api.User{}, false
	}
	return *m.profile, true
}

// Roles returns the latest role claims.
func (m *Manager) Roles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneStrings(m.roles)
}

// Permissions returns the latest permission claims.
func (m *Manager) Permissions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneStrings(m.permissions)
}

// Can is a pure membership test against the permission claims.
func (m *Manager) Can(perm string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return containsString(m.permissions, perm)
}

// resetLocked clears the in-memory session and returns the reset hooks to run
// once the lock is released.
func (m *Manager) resetLocked() []func() {
	m.token = ""
	m.profile = nil
	m.roles = nil
	m.permissions = nil
	return append([]func(){}, m.onReset...)
}

func runAll(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func containsString(list []string, want string) bool {
	for _, entry := range list {
		if entry == want {
			return true
		}
	}
	return false
}
