// Package captcha gates sensitive public submissions behind a
// human-interaction proof. The concrete provider hides behind Verifier so
// call sites never depend on a specific captcha vendor.
package captcha

import "context"

// Proof carries the opaque tokens issued by the captcha widget together
// with the caller's IP, as required by the provider's result-lookup API.
type Proof struct {
	Ticket  string
	Randstr string
	UserIP  string
}

// Verifier validates a human-interaction proof. Implementations must
// return false (never an error that leaks provider internals) for any
// failed or unverifiable proof; the detail belongs in server-side logs.
type Verifier interface {
	Verify(ctx context.Context, proof Proof) bool
}
