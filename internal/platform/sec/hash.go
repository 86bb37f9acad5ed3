// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxSecretBytes is the longest secret bcrypt accepts.
const MaxSecretBytes = 72

// ErrSecretTooLong is returned for secrets over [MaxSecretBytes].
var ErrSecretTooLong = errors.New("sec: secret exceeds 72 bytes")

// decoyHash is compared against when no stored hash exists, so a login for
// an unknown cedula costs as much as one with a wrong secret.
var decoyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("postgrado-decoy"), bcrypt.DefaultCost)
	return hash
})

// HashSecret hashes a credential secret with bcrypt. The secret is used
// verbatim; callers must not case-fold it.
func HashSecret(secret string) (string, error) {
	if len(secret) > MaxSecretBytes {
		return "", ErrSecretTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// CheckSecret reports whether secret matches storedHash. An empty
// storedHash never matches but still pays for a full comparison.
func CheckSecret(secret, storedHash string) bool {
	if storedHash == "" {
		_ = bcrypt.CompareHashAndPassword(decoyHash(), []byte(secret))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
