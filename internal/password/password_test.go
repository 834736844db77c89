package password_test

import (
	"strings"
	"testing"

	"github.com/danabekov/course-catalog/internal/password"
)

// The lowest bcrypt cost keeps the tests fast.
const testCost = 4

func TestHash_ProducesBcryptDigest(t *testing.T) {
	digest, err := password.Hash("secret1", testCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("digest %q is not a bcrypt digest", digest)
	}
	if strings.Contains(digest, "secret1") {
		t.Error("digest contains the plaintext")
	}
}

func TestHash_SamePasswordDifferentDigests(t *testing.T) {
	a, err := password.Hash("secret1", testCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := password.Hash("secret1", testCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("two digests of the same password are identical, salt missing")
	}
}

func TestHash_OutOfRangeCostFallsBack(t *testing.T) {
	digest, err := password.Hash("secret1", 99)
	if err != nil {
		t.Fatalf("hash with out-of-range cost: %v", err)
	}
	if !password.Verify("secret1", digest) {
		t.Error("digest from fallback cost does not verify")
	}
}

func TestVerify_CorrectPassword(t *testing.T) {
	digest, err := password.Hash("secret1", testCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !password.Verify("secret1", digest) {
		t.Error("correct password did not verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	digest, err := password.Hash("secret1", testCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if password.Verify("secret2", digest) {
		t.Error("wrong password verified")
	}
}

func TestVerify_GarbageDigest(t *testing.T) {
	if password.Verify("secret1", "not-a-digest") {
		t.Error("garbage digest verified")
	}
}
