package domain

// Verdict is the internal, non-externalized result of an access check.
// Every denial variant maps to the same external 401 response; the
// distinction exists for server-side logging only.
type Verdict string

const (
	VerdictGranted             Verdict = "granted"
	VerdictDeniedNoToken       Verdict = "denied_no_token"
	VerdictDeniedInvalidToken  Verdict = "denied_invalid_token"
	VerdictDeniedMisconfigured Verdict = "denied_misconfigured"
	// VerdictDeniedNotFound is produced by the lookup step, not by
	// DecideAccess: an unknown slug never reaches the gate.
	VerdictDeniedNotFound Verdict = "denied_not_found"
)

// Granted reports whether the verdict allows access.
func (v Verdict) Granted() bool {
	return v == VerdictGranted
}

// TokenVerifier compares a plaintext secret against a stored hash.
// Implementations must return false on malformed stored hashes rather
// than erroring, so the gate can treat the result as a plain verdict.
type TokenVerifier interface {
	Verify(secret, storedHash string) bool
}

// DecideAccess evaluates whether a requester may view a trip. The branch
// order is load-bearing: the admin bypass and the public check come before
// any token material is inspected, so neither path ever reaches the
// hashing primitive.
//
// A private trip with no stored hash yields VerdictDeniedMisconfigured.
// That state is a data inconsistency, not a client error; callers log it.
func DecideAccess(trip *Trip, presentedToken string, callerIsAdmin bool, verifier TokenVerifier) Verdict {
	if callerIsAdmin {
		return VerdictGranted
	}
	if trip.IsPublic {
		return VerdictGranted
	}
	if presentedToken == "" {
		return VerdictDeniedNoToken
	}
	if !trip.HasAccessToken() {
		return VerdictDeniedMisconfigured
	}
	if verifier.Verify(presentedToken, *trip.AccessTokenHash) {
		return VerdictGranted
	}
	return VerdictDeniedInvalidToken
}
