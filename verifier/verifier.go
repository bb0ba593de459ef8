// Package verifier exposes a standalone Falcon-512 verification entrypoint
// with the size validation a contract-facing boundary needs, layered over
// the falcon package's pure verification logic.
package verifier

import "github.com/SoundnessLabs/stellar-pq/falcon"

// Verify checks a Falcon-512 signature over message under publicKey.
//
// It first enforces the wire-format size bounds a caller at a contract
// boundary should reject before doing any cryptographic work: publicKey
// must be exactly falcon.PubKeySize bytes, and signature must fall in
// [falcon.SigMinSize, falcon.SigMaxSize]. message has no length bound here;
// unlike a no_std contract runtime, nothing requires message to fit in a
// fixed-size stack buffer.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != falcon.PubKeySize {
		return false
	}
	if len(signature) < falcon.SigMinSize || len(signature) > falcon.SigMaxSize {
		return false
	}
	return falcon.Verify512(publicKey, message, signature)
}
