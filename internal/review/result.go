package review

// Kind classifies the outcome of reviewing one project record.
type Kind string

const (
	KindValid                Kind = "valid"
	KindSchemaError          Kind = "schema-error"
	KindTagError             Kind = "tag-error"
	KindURLError             Kind = "url-error"
	KindRepositoryError      Kind = "repository-error"
	KindLabelError           Kind = "label-error"
	KindUnsupportedExtension Kind = "unsupported-extension"

	// KindUnknown is never produced by the engine; presenters keep a
	// default case for it so kinds added in later versions are reported
	// rather than silently dropped.
	KindUnknown Kind = "unknown"
)

// Result is the classified outcome for one record. Exactly one Kind is set
// and only the payload fields valid for that Kind are populated; construct
// results through the helpers below.
type Result struct {
	// Path is the reviewed record's identity.
	Path string `json:"path"`
	Kind Kind   `json:"kind"`

	// Violations holds validator output for schema-error and tag-error.
	Violations []string `json:"violations,omitempty"`
	// URL is the offending link for url-error.
	URL string `json:"url,omitempty"`
	// Message is the single explanation for repository-error and label-error.
	Message string `json:"message,omitempty"`
}

// Flagged reports whether the result requires author attention.
func (r Result) Flagged() bool {
	return r.Kind != KindValid
}

func Valid(path string) Result {
	return Result{Path: path, Kind: KindValid}
}

func SchemaError(path string, violations []string) Result {
	return Result{Path: path, Kind: KindSchemaError, Violations: violations}
}

func TagError(path string, violations []string) Result {
	return Result{Path: path, Kind: KindTagError, Violations: violations}
}

func URLError(path, url string) Result {
	return Result{Path: path, Kind: KindURLError, URL: url}
}

func RepositoryError(path, message string) Result {
	return Result{Path: path, Kind: KindRepositoryError, Message: message}
}

func LabelError(path, message string) Result {
	return Result{Path: path, Kind: KindLabelError, Message: message}
}

func UnsupportedExtension(path string) Result {
	return Result{Path: path, Kind: KindUnsupportedExtension}
}
