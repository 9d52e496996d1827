package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func cloudAgainst(t *testing.T, handler http.HandlerFunc) *CloudVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCloudVerifier(srv.URL, "app-id", "app-secret", zerolog.Nop())
}

func TestCloudVerifySuccessCode(t *testing.T) {
	v := cloudAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostFormValue("Ticket"); got != "t-123" {
			t.Fatalf("ticket = %q, want t-123", got)
		}
		if got := r.PostFormValue("CaptchaAppId"); got != "app-id" {
			t.Fatalf("app id = %q, want app-id", got)
		}
		w.Write([]byte(`{"CaptchaCode":1,"CaptchaMsg":"OK"}`))
	})

	ok := v.Verify(context.Background(), Proof{Ticket: "t-123", Randstr: "r", UserIP: "1.2.3.4"})
	if !ok {
		t.Fatalf("expected verification to pass")
	}
}

func TestCloudVerifyRejectsOtherCodes(t *testing.T) {
	for _, body := range []string{
		`{"CaptchaCode":6,"CaptchaMsg":"ticket expired"}`,
		`{"CaptchaCode":0}`,
		`{"CaptchaCode":-1}`,
	} {
		v := cloudAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		if v.Verify(context.Background(), Proof{Ticket: "t", Randstr: "r"}) {
			t.Fatalf("body %s should not verify", body)
		}
	}
}

func TestCloudVerifyCollapsesTransportFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on.

	v := NewCloudVerifier(srv.URL, "id", "secret", zerolog.Nop())
	if v.Verify(context.Background(), Proof{Ticket: "t", Randstr: "r"}) {
		t.Fatalf("unreachable provider must fail verification")
	}
}

func TestCloudVerifyRejectsMalformedBody(t *testing.T) {
	v := cloudAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	if v.Verify(context.Background(), Proof{Ticket: "t", Randstr: "r"}) {
		t.Fatalf("malformed body must fail verification")
	}
}

func TestCloudVerifyRejectsNon200(t *testing.T) {
	v := cloudAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	if v.Verify(context.Background(), Proof{Ticket: "t", Randstr: "r"}) {
		t.Fatalf("non-200 must fail verification")
	}
}

func TestLocalVerifierRoundTrip(t *testing.T) {
	v := NewLocalVerifier()
	if v.Verify(context.Background(), Proof{Ticket: "missing", Randstr: "0000"}) {
		t.Fatalf("unknown challenge must fail")
	}
	if v.Verify(context.Background(), Proof{}) {
		t.Fatalf("empty proof must fail")
	}
}
