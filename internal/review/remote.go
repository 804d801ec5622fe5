package review

// Reason is the structured outcome of a remote status check.
type Reason string

const (
	ReasonOK                Reason = "ok"
	ReasonArchived          Reason = "archived"
	ReasonMissing           Reason = "missing"
	ReasonRedirect          Reason = "redirect"
	ReasonRepositoryMissing Reason = "repository-missing"
	ReasonError             Reason = "error"
)

// RepoStatus is the result of a repository-activity check. When RateLimited
// is true the remaining fields are advisory only and must never be turned
// into a validation failure.
type RepoStatus struct {
	RateLimited bool
	Reason      Reason

	// OldLocation and NewLocation are set when Reason is ReasonRedirect.
	OldLocation string
	NewLocation string

	// Detail carries the underlying error text when Reason is ReasonError.
	Detail string
}

// LabelStatus is the result of a label-activity check. The same RateLimited
// contract as RepoStatus applies.
type LabelStatus struct {
	RateLimited bool
	Reason      Reason

	// URL is the canonical label URL, set on success.
	URL string

	// Detail carries the underlying error text when Reason is ReasonError.
	Detail string
}
