package relayer

import "errors"

var (
	ErrMissingProof = errors.New("proof payload is missing")
	ErrMissingJobID = errors.New("job id is missing")

	// ErrInsufficientFunds marks a balance that stayed below the
	// submission threshold after a top-up settled. It is logged rather
	// than returned: the top-up transaction is the authoritative success
	// signal and the submission proceeds anyway.
	ErrInsufficientFunds = errors.New("balance below submission threshold after top-up")

	ErrSubmissionRejected = errors.New("submission rejected by the verification network")
	ErrStatusLookup       = errors.New("job status lookup failed")
)
