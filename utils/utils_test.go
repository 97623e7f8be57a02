package utils

import "testing"

func TestSha512String(t *testing.T) {
	first := Sha512String("password" + "salt")
	if len(first) != 128 {
		t.Errorf("hex length = %d", len(first))
	}
	if first != Sha512String("passwordsalt") {
		t.Errorf("hash is not deterministic")
	}
	if first == Sha512String("passwordsalt2") {
		t.Errorf("different inputs collided")
	}
}

func TestRandSalt(t *testing.T) {
	a := RandSalt(60)
	b := RandSalt(60)
	if a == "" || a == b {
		t.Errorf("salts not random: %q %q", a, b)
	}
}
