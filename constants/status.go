package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning  JobStatus = "RUNNING"  // in progress
	JobStatusOCROK    JobStatus = "OCR_OK"   // recognition accepted, fields extracted
	JobStatusLedgered JobStatus = "LEDGERED" // ledger entry written
	JobStatusFailed   JobStatus = "FAILED"   // terminal failure
)

// JobStatuses holds the allowed values for the status field in extract_job.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusOCROK),
	string(JobStatusLedgered),
	string(JobStatusFailed),
}
