package relayer

import "time"

const (
	defaultSubmissionThreshold = 0.004
	defaultSettlementDelay     = 5 * time.Second
)

func DefaultConfig() Config {
	return Config{
		SubmissionThreshold: defaultSubmissionThreshold,
		SettlementDelay:     defaultSettlementDelay,
	}
}

//nolint:lll
type Config struct {
	Account             string        `long:"account"              description:"Billing account identifier (hex, 0x prefix optional). Resolved from the gateway when empty"`
	SubmissionThreshold float64       `long:"submission-threshold" description:"The minimum prepaid balance required before a proof is submitted"`
	SettlementDelay     time.Duration `long:"settlement-delay"     description:"How long to wait for a top-up transaction to be reflected by the remote ledger"`
}
