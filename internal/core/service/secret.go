package service

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor for stored secrets.
var passwordCost = bcrypt.DefaultCost

// bcrypt only reads the first 72 bytes of its input and rejects longer
// ones, so secrets are reduced to a fixed-length BLAKE3 hex digest first.
func digestSecret(password string) []byte {
	sum := blake3.Sum256([]byte(password))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}

func hashSecret(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(digestSecret(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func secretMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digestSecret(password)) == nil
}
