package domain

// Status is the closed vocabulary carried in every response body. The numeric
// values are part of the wire contract shared by all five services.
type Status int

const (
	// StatusOK means the operation succeeded.
	StatusOK Status = 1
	// StatusAuthFailed covers missing or invalid tokens; lookup routes reuse
	// the same value for "not found".
	StatusAuthFailed Status = 2
	// StatusRejected covers authorization and validation failures: a valid
	// non-employee caller on an employee-only action, malformed or missing
	// input, or a dependent-service failure during orchestration.
	StatusRejected Status = 3
	// StatusPasswordPolicy is returned by registration only, when the
	// password fails the complexity policy.
	StatusPasswordPolicy Status = 4
)
