package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// tokenHexLen is the number of hex characters kept from the digest; enough to
// keep collisions negligible for donor-population sizes while staying short.
const tokenHexLen = 12

// AnonymousToken derives a stable one-way pseudonym for a donor identifier.
// The same identifier and salt always produce the same token, so longitudinal
// analysis across exports remains possible, but the original identifier cannot
// be recovered without the salt.
func AnonymousToken(donorID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(donorID))
	return "ANON_" + hex.EncodeToString(h.Sum(nil))[:tokenHexLen]
}
