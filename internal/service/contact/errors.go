package contact

// FailureKind classifies why a submission attempt terminated without mail
// being delivered. Every kind is terminal for the attempt; there is no retry.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureInvalid
	FailureRateLimited
	FailureNotConfigured
	FailureTransport
)

// User-facing reasons. Transport and configuration failures are collapsed to
// generic text so nothing the submitter typed can leak back out or into logs.
const (
	ReasonInvalid       = "Invalid form data."
	ReasonRateLimited   = "Too many requests. Please wait a moment."
	ReasonNotConfigured = "Server not configured."
	ReasonServerError   = "Server error."
)

// Result is the tri-state outcome surfaced to the caller.
type Result struct {
	OK     bool
	Kind   FailureKind
	Reason string
	// Fields lists the violated constraints on validation failures, by field
	// name, so the UI can render field-level hints.
	Fields []string
}

func success() Result {
	return Result{OK: true}
}

func invalid(fields []string) Result {
	return Result{Kind: FailureInvalid, Reason: ReasonInvalid, Fields: fields}
}

func failure(kind FailureKind) Result {
	r := Result{Kind: kind}
	switch kind {
	case FailureRateLimited:
		r.Reason = ReasonRateLimited
	case FailureNotConfigured:
		r.Reason = ReasonNotConfigured
	default:
		r.Reason = ReasonServerError
	}
	return r
}
