package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword rejected the right password")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword accepted the wrong password")
	}
	if CheckPassword("correct horse battery staple", "not-a-hash") {
		t.Error("CheckPassword accepted a malformed hash")
	}
}

func TestCSRFTokens(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")

	token, err := gen.GenerateToken("session-1")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if !gen.ValidateToken("session-1", token) {
		t.Error("valid token rejected")
	}
	if gen.ValidateToken("session-2", token) {
		t.Error("token accepted for a different session")
	}
	if gen.ValidateToken("session-1", "forged") {
		t.Error("forged token accepted")
	}

	other := NewCSRFGenerator("other-secret")
	if other.ValidateToken("session-1", token) {
		t.Error("token accepted under a different secret")
	}
}

func TestGenerateSessionIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateSessionID()
		if id == "" {
			t.Fatal("empty session id")
		}
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
}
