package token

import (
	"encoding/base64"
	"strings"
	"testing"
)

var key = []byte("test-signing-key")

func TestIssueVerify_RoundTrip(t *testing.T) {
	for _, username := range []string{"alice", "bob", "user.with.dots", "émile"} {
		tok, err := Issue(key, username)
		if err != nil {
			t.Fatalf("Issue(%q) error: %v", username, err)
		}
		claims, err := Verify(key, tok)
		if err != nil {
			t.Fatalf("Verify error for %q: %v", username, err)
		}
		if claims.Username != username {
			t.Fatalf("round trip: got %q, want %q", claims.Username, username)
		}
	}
}

func TestIssue_Format(t *testing.T) {
	tok, err := Issue(key, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(parts))
	}

	headerJSON, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		t.Fatalf("header not base64url: %v", err)
	}
	if string(headerJSON) != `{"alg":"HS256","typ":"JWT"}` {
		t.Fatalf("unexpected header: %s", headerJSON)
	}

	// Signature must be lowercase hex of a SHA-256 MAC: 64 hex chars.
	if len(parts[2]) != 64 {
		t.Fatalf("expected 64-char hex signature, got %d chars", len(parts[2]))
	}
	if parts[2] != strings.ToLower(parts[2]) {
		t.Fatalf("signature not lowercase: %s", parts[2])
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	tok, _ := Issue(key, "alice")
	parts := strings.Split(tok, ".")

	sig := []byte(parts[2])
	for i := range sig {
		flipped := make([]byte, len(sig))
		copy(flipped, sig)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}
		bad := parts[0] + "." + parts[1] + "." + string(flipped)
		if _, err := Verify(key, bad); err == nil {
			t.Fatalf("tampered signature at index %d accepted", i)
		}
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	tok, _ := Issue(key, "alice")
	parts := strings.Split(tok, ".")

	other, _ := Issue(key, "mallory")
	otherPayload := strings.Split(other, ".")[1]

	bad := parts[0] + "." + otherPayload + "." + parts[2]
	if _, err := Verify(key, bad); err == nil {
		t.Fatal("token with swapped payload accepted")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	tok, _ := Issue(key, "alice")
	if _, err := Verify([]byte("other-key"), tok); err == nil {
		t.Fatal("token verified under wrong key")
	}
}

func TestVerify_Malformed(t *testing.T) {
	cases := []string{
		"",
		"only-one-segment",
		"two.segments",
		"a.b.c.d",
		"!!!.???.abc",
	}
	for _, tok := range cases {
		if _, err := Verify(key, tok); err == nil {
			t.Fatalf("malformed token %q accepted", tok)
		}
	}
}

func TestVerify_PayloadWithoutUsername(t *testing.T) {
	headerB64 := base64.URLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payloadB64 := base64.URLEncoding.EncodeToString([]byte(`{"role":"admin"}`))
	input := headerB64 + "." + payloadB64
	tok := input + "." + sign(key, input)

	if _, err := Verify(key, tok); err == nil {
		t.Fatal("payload without username accepted")
	}
}

func TestVerify_Idempotent(t *testing.T) {
	tok, _ := Issue(key, "alice")
	first, err1 := Verify(key, tok)
	second, err2 := Verify(key, tok)
	if err1 != nil || err2 != nil {
		t.Fatalf("verify errors: %v %v", err1, err2)
	}
	if first != second {
		t.Fatalf("verify not idempotent: %+v vs %+v", first, second)
	}
}
