package gateway

import (
	"context"
	"errors"

	"github.com/zkmesh/relay/shared"
)

//go:generate mockgen -package mocks -destination mocks/client.go . Client

var (
	ErrNotFound       = errors.New("not found")
	ErrUnavailable    = errors.New("gateway unavailable")
	ErrInvalidRequest = errors.New("invalid request")
)

// Client is the capability set consumed from a verification network
// gateway. Implementations must be safe for concurrent use; connection
// pooling and transport-level timeouts are the adapter's concern, not
// the caller's.
type Client interface {
	// Accounts lists the billing accounts known to the gateway for the
	// configured credentials.
	Accounts(ctx context.Context) ([]shared.AccountID, error)

	// CreateAccount registers a fresh billing account.
	CreateAccount(ctx context.Context) (shared.AccountID, error)

	// Balance returns the prepaid balance of an account in native
	// currency units.
	Balance(ctx context.Context, account shared.AccountID) (float64, error)

	// TopUp adds prepaid credits to an account. The returned receipt
	// confirms the transaction was accepted by the ledger, not that it
	// has settled.
	TopUp(ctx context.Context, account shared.AccountID, amount float64) (*shared.TopUpReceipt, error)

	// SubmitProof sends an opaque proof payload for verification,
	// billed to the given account.
	SubmitProof(ctx context.Context, proof []byte, account shared.AccountID) (*shared.Submission, error)

	// ProofStatus fetches the current state of a verification job.
	ProofStatus(ctx context.Context, jobID string) (*shared.JobStatus, error)
}
