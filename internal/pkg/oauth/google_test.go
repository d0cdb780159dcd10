package oauth

import (
	"strings"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	g := NewGoogle("client", "secret", "http://localhost/callback", "state-key")

	state := g.MakeState("nonce-123")
	if !g.VerifyState(state) {
		t.Fatal("freshly signed state must verify")
	}
}

func TestStateTamperDetection(t *testing.T) {
	g := NewGoogle("client", "secret", "http://localhost/callback", "state-key")
	state := g.MakeState("nonce-123")

	tampered := strings.Replace(state, "nonce-123", "nonce-124", 1)
	if g.VerifyState(tampered) {
		t.Fatal("tampered state must not verify")
	}

	if g.VerifyState("") {
		t.Fatal("empty state must not verify")
	}
	if g.VerifyState("no-signature-part") {
		t.Fatal("state without signature must not verify")
	}

	other := NewGoogle("client", "secret", "http://localhost/callback", "different-key")
	if other.VerifyState(state) {
		t.Fatal("state signed with another key must not verify")
	}
}

func TestAuthURLCarriesState(t *testing.T) {
	g := NewGoogle("client", "secret", "http://localhost/callback", "state-key")
	state := g.MakeState("abc")
	url := g.AuthURL(state)
	if !strings.Contains(url, "state=") {
		t.Fatalf("auth url missing state parameter: %s", url)
	}
}
