// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("token"))
	want := hex.EncodeToString(mac.Sum(nil))

	if got := HashString("token", "key"); got != want {
		t.Errorf("hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_DependsOnKey(t *testing.T) {
	if HashString("token", "key-1") == HashString("token", "key-2") {
		t.Error("different keys must produce different hashes")
	}
}

func TestEqualHashes(t *testing.T) {
	h := HashString("token", "key")
	if !EqualHashes(h, HashString("token", "key")) {
		t.Error("expected equal hashes")
	}
	if EqualHashes(h, HashString("other", "key")) {
		t.Error("expected different hashes")
	}
}
