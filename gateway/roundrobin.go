package gateway

import (
	"context"
	"errors"
	"sync"

	"github.com/zkmesh/relay/shared"
)

// roundRobin gathers many gateway clients. It dispatches each call to
// one gateway and moves on to the next one when the current gateway
// cannot serve it. Errors caused by the request itself (invalid request,
// unknown job) are returned immediately - another gateway would reject
// them all the same.
type roundRobin struct {
	clients []Client

	mu   sync.Mutex
	last int
}

// NewRoundRobin combines gateway clients into a single Client which
// fails over between them.
func NewRoundRobin(clients ...Client) Client {
	return &roundRobin{clients: clients}
}

func (r *roundRobin) pick() Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clients[r.last]
}

func (r *roundRobin) advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = (r.last + 1) % len(r.clients)
}

func terminal(err error) bool {
	return errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrNotFound)
}

func tryEach[T any](ctx context.Context, r *roundRobin, call func(Client) (T, error)) (T, error) {
	var result T
	var err error
	for retries := 0; retries < len(r.clients); retries++ {
		result, err = call(r.pick())
		if err == nil || terminal(err) || ctx.Err() != nil {
			return result, err
		}
		r.advance()
	}
	return result, err
}

func (r *roundRobin) Accounts(ctx context.Context) ([]shared.AccountID, error) {
	return tryEach(ctx, r, func(c Client) ([]shared.AccountID, error) {
		return c.Accounts(ctx)
	})
}

func (r *roundRobin) CreateAccount(ctx context.Context) (shared.AccountID, error) {
	return tryEach(ctx, r, func(c Client) (shared.AccountID, error) {
		return c.CreateAccount(ctx)
	})
}

func (r *roundRobin) Balance(ctx context.Context, account shared.AccountID) (float64, error) {
	return tryEach(ctx, r, func(c Client) (float64, error) {
		return c.Balance(ctx, account)
	})
}

func (r *roundRobin) TopUp(ctx context.Context, account shared.AccountID, amount float64) (*shared.TopUpReceipt, error) {
	// Not failed over: retrying a top-up on another gateway could issue
	// the credit transaction twice.
	return r.pick().TopUp(ctx, account, amount)
}

func (r *roundRobin) SubmitProof(ctx context.Context, proof []byte, account shared.AccountID) (*shared.Submission, error) {
	// Same as TopUp: submissions are billed, so they are not replayed.
	return r.pick().SubmitProof(ctx, proof, account)
}

func (r *roundRobin) ProofStatus(ctx context.Context, jobID string) (*shared.JobStatus, error) {
	return tryEach(ctx, r, func(c Client) (*shared.JobStatus, error) {
		return c.ProofStatus(ctx, jobID)
	})
}
