package captcha

import (
	"context"

	"github.com/mojocn/base64Captcha"
)

// LocalVerifier generates and verifies digit challenges in-process. It is
// the dev/offline stand-in for the cloud provider: Ticket carries the
// challenge id and Randstr the solved digits.
type LocalVerifier struct {
	store   base64Captcha.Store
	captcha *base64Captcha.Captcha
}

// NewLocalVerifier creates a LocalVerifier with an in-memory store.
func NewLocalVerifier() *LocalVerifier {
	store := base64Captcha.DefaultMemStore
	driver := base64Captcha.NewDriverDigit(80, 240, 4, 0.7, 80)
	return &LocalVerifier{
		store:   store,
		captcha: base64Captcha.NewCaptcha(driver, store),
	}
}

// Challenge generates a new challenge, returning its id and a base64 PNG.
func (v *LocalVerifier) Challenge() (id, b64 string, err error) {
	id, b64, _, err = v.captcha.Generate()
	return id, b64, err
}

// Verify checks the solution against the stored challenge. A challenge is
// single-use: verification consumes it regardless of outcome.
func (v *LocalVerifier) Verify(_ context.Context, proof Proof) bool {
	if proof.Ticket == "" || proof.Randstr == "" {
		return false
	}
	return v.store.Verify(proof.Ticket, proof.Randstr, true)
}
