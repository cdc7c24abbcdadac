/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocknative

import (
	"crypto/rand"

	"github.com/btcsuite/btcutil/base58"
)

// NewIdentity returns a random did/verkey pair shaped the way libindy
// builds them: the did is the base58 encoding of the first 16 bytes of the
// 32-byte verkey.
func NewIdentity() (string, string) {
	key := make([]byte, 32)

	if _, err := rand.Read(key); err != nil {
		panic(err)
	}

	return base58.Encode(key[:16]), base58.Encode(key)
}

// Abbreviate returns the abbreviated verkey ("~" plus the base58 encoding
// of the last 16 bytes) when the did was derived from the verkey, otherwise
// the full verkey unchanged. Mirrors indy_abbreviate_verkey.
func Abbreviate(did, verkey string) string {
	key := base58.Decode(verkey)
	if len(key) != 32 || base58.Encode(key[:16]) != did {
		return verkey
	}

	return "~" + base58.Encode(key[16:])
}
