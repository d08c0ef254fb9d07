package relayer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zkmesh/relay/gateway"
	"github.com/zkmesh/relay/logging"
	"github.com/zkmesh/relay/shared"
)

// Relayer sequences the submission workflow: account resolution, funds
// guard, submission. It holds no state about submitted jobs - the job id
// returned to the caller is the only handle, and status queries go
// straight to the network. The optional journal records successful
// submissions for observability only.
//
// A Relayer is safe for concurrent use, but it makes no atomicity
// guarantee across concurrent submissions sharing one account: balance
// checks and top-ups are only as serialized as the remote ledger makes
// them.
type Relayer struct {
	cfg     Config
	client  gateway.Client
	journal *journal
	sleep   func(time.Duration)
}

type newRelayerOptionFunc func(*newRelayerOptions)

type newRelayerOptions struct {
	cfg        Config
	journalDir string
	sleep      func(time.Duration)
}

func WithConfig(cfg Config) newRelayerOptionFunc {
	return func(opts *newRelayerOptions) {
		opts.cfg = cfg
	}
}

// WithJournal enables the submission journal in the given directory.
func WithJournal(dir string) newRelayerOptionFunc {
	return func(opts *newRelayerOptions) {
		opts.journalDir = dir
	}
}

// WithSleepFunc replaces the settlement wait. Tests use it to avoid
// sleeping for real.
func WithSleepFunc(sleep func(time.Duration)) newRelayerOptionFunc {
	return func(opts *newRelayerOptions) {
		opts.sleep = sleep
	}
}

func New(ctx context.Context, client gateway.Client, opts ...newRelayerOptionFunc) (*Relayer, error) {
	options := newRelayerOptions{
		cfg:   DefaultConfig(),
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.cfg.Account != "" {
		// Fail on boot rather than on the first submission.
		if _, err := shared.ParseAccountID(options.cfg.Account); err != nil {
			return nil, fmt.Errorf("configured account: %w", err)
		}
	}

	r := &Relayer{
		cfg:    options.cfg,
		client: client,
		sleep:  options.sleep,
	}
	if options.journalDir != "" {
		journal, err := openJournal(options.journalDir)
		if err != nil {
			return nil, fmt.Errorf("opening submission journal: %w", err)
		}
		r.journal = journal
		logging.FromContext(ctx).Info("submission journal enabled", zap.String("dir", options.journalDir))
	}
	return r, nil
}

func (r *Relayer) Close() error {
	if r.journal != nil {
		return r.journal.Close()
	}
	return nil
}

// Submit relays a proof payload to the verification network. The billing
// account is resolved first (explicit > configured > discovered), its
// prepaid balance is ensured, then the proof is sent in a single round
// trip. The returned submission carries the job id to use with Status.
//
// Every failure is returned as an error from the taxonomy in errors.go;
// nothing here is fatal and there is no retry loop.
func (r *Relayer) Submit(ctx context.Context, proof []byte, explicitAccount string) (*shared.Submission, error) {
	if len(proof) == 0 {
		return nil, ErrMissingProof
	}
	started := time.Now()
	logger := logging.FromContext(ctx)

	account, err := r.resolveAccount(ctx, explicitAccount)
	if err != nil {
		submissionsMetric.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("resolving billing account: %w", err)
	}
	logger = logger.With(zap.Stringer("account", account))
	ctx = logging.NewContext(ctx, logger)

	if err := r.ensureFunds(ctx, account); err != nil {
		submissionsMetric.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("ensuring funds: %w", err)
	}

	submission, err := r.client.SubmitProof(ctx, proof, account)
	if err != nil {
		submissionsMetric.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrSubmissionRejected, err)
	}
	submissionsMetric.WithLabelValues("succeeded").Inc()
	submitLatencyMetric.Observe(time.Since(started).Seconds())
	logger.Info("proof submitted", zap.String("job_id", submission.JobID))

	if r.journal != nil {
		if err := r.journal.append(submission.JobID, account, proof); err != nil {
			logger.Warn("failed to journal submission", zap.Error(err), zap.String("job_id", submission.JobID))
		}
	}
	return submission, nil
}

// Status fetches the current state of a verification job. It is a pure
// read: one request, one response, nothing cached.
func (r *Relayer) Status(ctx context.Context, jobID string) (*shared.JobStatus, error) {
	if jobID == "" {
		return nil, ErrMissingJobID
	}
	status, err := r.client.ProofStatus(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatusLookup, err)
	}
	return status, nil
}

// Submissions returns the most recent journaled submissions, newest
// first. It returns nil when the journal is disabled.
func (r *Relayer) Submissions(limit int) ([]SubmissionRecord, error) {
	if r.journal == nil {
		return nil, nil
	}
	return r.journal.list(limit)
}
