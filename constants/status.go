package constants

// JobStatus is the canonical status for rows in parse_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 1 completed (text extracted)
	JobStatusParsed    JobStatus = "PARSED"     // stage 2 completed (course structure built)
	JobStatusRejected  JobStatus = "REJECTED"   // content not recognized as a roadmap
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)
