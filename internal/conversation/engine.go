// Package conversation maintains the ordered message log and the pinned
// thread identifier for the graph assistant workflow.
package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripy/tripy-console/internal/api"
	"github.com/tripy/tripy-console/internal/session"
	"github.com/tripy/tripy-console/internal/status"
	"github.com/tripy/tripy-console/internal/store"
)

// Role classifies a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one immutable transcript entry. The log is append-only; entries
// are never edited or reordered.
type Message struct {
	ID          string
	Role        Role
	Text        string
	Interrupted bool
	CreatedAt   time.Time
}

// Executor is the single remote operation the engine performs.
type Executor interface {
	ExecuteGraph(ctx context.Context, token, userInput, threadID string) (api.GraphResponse, error)
}

// Session is the slice of session state the engine gates on.
type Session interface {
	Token() string
	Can(perm string) bool
}

// Auditor receives a durable copy of every appended entry. Audit writes are
// best effort and never affect the live log.
type Auditor interface {
	AppendTranscript(ctx context.Context, e store.TranscriptEntry) error
}

// Engine drives one conversational thread against the graph service.
type Engine struct {
	exec    Executor
	session Session
	status  *status.Reporter
	audit   Auditor

	mu       sync.Mutex
	threadID string
	messages []Message
	gen      uint64
}

// NewEngine wires the engine. audit may be nil.
func NewEngine(exec Executor, sess Session, reporter *status.Reporter, audit Auditor) *Engine {
	return &Engine{exec: exec, session: sess, status: reporter, audit: audit}
}

// Send runs one turn. It declines silently - no remote call, no status
// change, no log mutation - when the prompt is blank, no token is held, or
// the operator lacks graph:execute. Otherwise the user entry is appended
// optimistically before the remote call; the completion then appends either
// the assistant entry or a system entry recording the failure, so the
// transcript stays a complete audit trail.
func (e *Engine) Send(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil
	}
	token := e.session.Token()
	if token == "" || !e.session.Can(session.PermGraphExecute) {
		return nil
	}

	e.mu.Lock()
	threadID := e.threadID
	gen := e.gen
	e.appendLocked(ctx, newMessage(RoleUser, prompt, false))
	e.mu.Unlock()

	res, err := e.exec.ExecuteGraph(ctx, token, prompt, threadID)

	e.mu.Lock()
	if e.gen != gen {
		// the thread was cleared while the call was in flight
		e.mu.Unlock()
		return nil
	}
	if err != nil {
		reason := api.Reason(err)
		e.appendLocked(ctx, newMessage(RoleSystem, "Request failed: "+reason, false))
		e.mu.Unlock()
		e.status.Set("status.graphFailed", status.Params{"reason": reason})
		return err
	}
	e.threadID = res.ThreadID
	e.appendLocked(ctx, newMessage(RoleAssistant, res.Assistant, res.Interrupted))
	e.mu.Unlock()

	if res.Interrupted {
		e.status.Set("status.graphInterrupted", nil)
	} else {
		e.status.Set("status.graphReady", nil)
	}
	return nil
}

// Clear empties the log and unpins the thread. No remote call is made; the
// next Send establishes a fresh thread from its response.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.messages = nil
	e.threadID = ""
	e.gen++
	e.mu.Unlock()
}

// ThreadID returns the pinned thread, or "" before one is established.
func (e *Engine) ThreadID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.threadID
}

// Messages returns a copy of the transcript in append order.
func (e *Engine) Messages() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// Len reports the transcript length.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.messages)
}

func (e *Engine) appendLocked(ctx context.Context, msg Message) {
	e.messages = append(e.messages, msg)
	if e.audit != nil {
		_ = e.audit.AppendTranscript(ctx, store.TranscriptEntry{
			ID:          msg.ID,
			ThreadID:    e.threadID,
			Role:        string(msg.Role),
			Text:        msg.Text,
			Interrupted: msg.Interrupted,
			CreatedAt:   msg.CreatedAt,
		})
	}
}

// newMessage mints an entry with a time-ordered id so the log sorts the way
// it was appended even outside the process.
func newMessage(role Role, text string, interrupted bool) Message {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Message{
		ID:          id.String(),
		Role:        role,
		Text:        text,
		Interrupted: interrupted,
		CreatedAt:   time.Now().UTC(),
	}
}
