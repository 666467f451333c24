package service

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/jonboulle/clockwork"
)

type pendingAction struct {
	action   func(ctx context.Context) (string, error)
	deadline time.Time
}

// confirmer holds destructive actions until the requester confirms them
type confirmer struct {
	clock   clockwork.Clock
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]pendingAction
}

func newConfirmer(clock clockwork.Clock, timeout time.Duration) *confirmer {
	return &confirmer{
		clock:   clock,
		timeout: timeout,
		pending: make(map[string]pendingAction),
	}
}

// Request parks action under key, replacing any earlier request, and returns
// the deadline for confirming it.
func (c *confirmer) Request(key string, action func(ctx context.Context) (string, error)) time.Time {
	deadline := c.clock.Now().Add(c.timeout)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[key] = pendingAction{action: action, deadline: deadline}
	return deadline
}

// Confirm runs the action parked under key. A late confirmation discards the
// action without running it.
func (c *confirmer) Confirm(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	p, ok := c.pending[key]
	delete(c.pending, key)
	c.mu.Unlock()

	if !ok {
		return "", domain.NotFound("pending confirmation", key)
	}
	if c.clock.Now().After(p.deadline) {
		return "", &domain.Error{Kind: domain.ErrTimeout, Handle: key}
	}
	return p.action(ctx)
}

// AwaitConfirmation waits for a line equal to word on r. It fails with
// ErrTimeout once timeout elapses and with InvalidInput on any other answer.
func AwaitConfirmation(ctx context.Context, clock clockwork.Clock, timeout time.Duration, r io.Reader, word string) error {
	answers := make(chan string, 1)
	go func() {
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && line == "" {
			close(answers)
			return
		}
		answers <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(timeout):
		return domain.ErrTimeout
	case answer, ok := <-answers:
		if !ok || answer != word {
			return domain.InvalidInput("confirmation declined")
		}
		return nil
	}
}
