package shared

// JobState is the lifecycle phase of a verification job as reported by
// the network. The job state machine lives entirely on the remote side;
// this service only mirrors whatever the network reports.
type JobState string

const (
	JobPending    JobState = "PENDING"
	JobProcessing JobState = "PROCESSING"
	JobCompleted  JobState = "COMPLETED"
	JobFailed     JobState = "FAILED"
	JobUnknown    JobState = "UNKNOWN"
)

// ParseJobState maps a state string from the wire to a JobState.
// Anything unrecognized maps to JobUnknown.
func ParseJobState(s string) JobState {
	switch JobState(s) {
	case JobPending, JobProcessing, JobCompleted, JobFailed:
		return JobState(s)
	default:
		return JobUnknown
	}
}

// Submission is the handle returned by the network for an accepted proof.
// The job id is the only way to query the job later.
type Submission struct {
	JobID string
}

// JobStatus is a point-in-time snapshot of a verification job.
// It is fetched fresh on every query and never cached.
type JobStatus struct {
	State          JobState
	RequestID      string
	AdditionalInfo string
	Error          string
}

// TopUpReceipt records a credit top-up transaction issued against an
// account.
type TopUpReceipt struct {
	TxHash string
	Amount float64
}
