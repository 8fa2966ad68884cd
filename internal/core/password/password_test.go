package password

import "testing"

func TestHash_Deterministic(t *testing.T) {
	h1 := Hash("Passw0rd", "salty")
	h2 := Hash("Passw0rd", "salty")
	if h1 != h2 {
		t.Fatalf("hash not deterministic: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64-char hex digest, got %d chars", len(h1))
	}
	if Hash("Passw0rd", "other") == h1 {
		t.Fatal("different salts produced the same hash")
	}
}

func TestValid_Policy(t *testing.T) {
	cases := []struct {
		name                      string
		username, first, last, pw string
		want                      bool
	}{
		{"accepted", "alice", "Alice", "Smith", "Passw0rd", true},
		{"too short", "alice", "", "", "Pw1a", false},
		{"no uppercase", "alice", "", "", "password1", false},
		{"no lowercase", "alice", "", "", "PASSWORD1", false},
		{"no digit", "alice", "", "", "Password", false},
		{"contains username", "alice", "", "", "alice123A", false},
		{"contains username mixed case", "alice", "", "", "xALiCE9z", false},
		{"contains first name", "bob", "Carol", "", "1Carolxy", false},
		{"contains last name", "bob", "", "Jones", "jones1XY", false},
		{"empty", "alice", "", "", "", false},
	}

	for _, tc := range cases {
		if got := Valid(tc.username, tc.first, tc.last, tc.pw); got != tc.want {
			t.Fatalf("%s: Valid(%q) = %v, want %v", tc.name, tc.pw, got, tc.want)
		}
	}
}
