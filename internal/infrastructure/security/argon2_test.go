package security

import (
	"strings"
	"testing"
)

// Small params keep tests fast; production uses DefaultArgon2Params.
func testHasher() *Argon2Hasher {
	return NewArgon2Hasher(Argon2Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

func TestHashAndVerify(t *testing.T) {
	h := testHasher()
	encoded, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Errorf("unexpected encoding %q", encoded)
	}
	if strings.Contains(encoded, "password123") {
		t.Error("plaintext must not appear in the encoded hash")
	}
	if !h.Verify("password123", encoded) {
		t.Error("correct password should verify")
	}
	if h.Verify("password124", encoded) {
		t.Error("wrong password should not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := testHasher()
	a, err := h.Hash("password123")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("password123")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestVerifySurvivesParamChange(t *testing.T) {
	old := NewArgon2Hasher(Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	encoded, err := old.Hash("password123")
	if err != nil {
		t.Fatal(err)
	}
	// A hasher configured with different costs still verifies stored
	// hashes, because params are encoded alongside them.
	current := NewArgon2Hasher(Argon2Params{Memory: 16 * 1024, Iterations: 2, Parallelism: 2, SaltLength: 16, KeyLength: 32})
	if !current.Verify("password123", encoded) {
		t.Error("hash should verify under a hasher with different params")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	h := testHasher()
	for _, bad := range []string{"", "plaintext", "$argon2id$v=19$m=8192,t=1,p=1$short", "$md5$whatever$x$y$z"} {
		if h.Verify("password123", bad) {
			t.Errorf("garbage hash %q should not verify", bad)
		}
	}
}
