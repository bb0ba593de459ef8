// Package account implements a post-quantum smart-account abstraction: a
// stored Falcon-512 public key plus an authorization check that verifies a
// transaction hash against a submitted signature.
//
// It mirrors the lifecycle of a custom-account contract (constructor,
// public key accessor, authorization check) without depending on any
// particular contract runtime; callers wire Account into whatever
// account/storage layer their environment provides.
package account

import (
	"errors"

	"github.com/SoundnessLabs/stellar-pq/falcon"
)

// Errors returned by Account methods. Each corresponds to one of the
// rejection reasons a custom-account authorization check must distinguish.
var (
	ErrInvalidPublicKeySize = errors.New("account: invalid public key size")
	ErrInvalidSignatureSize = errors.New("account: invalid signature size")
	ErrVerificationFailed   = errors.New("account: signature verification failed")
)

// Account holds one Falcon-512 public key and authorizes transactions
// signed under it.
type Account struct {
	publicKey [falcon.PubKeySize]byte
}

// NewAccount constructs an Account from an encoded Falcon-512 public key.
// It returns ErrInvalidPublicKeySize if publicKey is not exactly
// falcon.PubKeySize bytes, mirroring the constructor-time panic of a
// contract that rejects malformed deployment arguments outright.
func NewAccount(publicKey []byte) (*Account, error) {
	if len(publicKey) != falcon.PubKeySize {
		return nil, ErrInvalidPublicKeySize
	}
	a := &Account{}
	copy(a.publicKey[:], publicKey)
	return a, nil
}

// MustNewAccount is like NewAccount but panics on a malformed public key,
// for call sites that want the Soroban constructor's panic-on-misuse
// ergonomics instead of an error return.
func MustNewAccount(publicKey []byte) *Account {
	a, err := NewAccount(publicKey)
	if err != nil {
		panic(err)
	}
	return a
}

// PublicKey returns the stored public key's encoded form.
func (a *Account) PublicKey() []byte {
	out := make([]byte, falcon.PubKeySize)
	copy(out, a.publicKey[:])
	return out
}

// CheckAuth verifies that signature is a valid Falcon-512 signature over
// payloadHash (the 32-byte transaction hash) under the account's stored
// public key.
//
// Unlike the contract interface this is modeled on, CheckAuth takes no
// authorization-contexts argument: this account authorizes any transaction
// whose hash is correctly signed, regardless of what the transaction does.
func (a *Account) CheckAuth(payloadHash [32]byte, signature []byte) error {
	if len(signature) < falcon.SigMinSize || len(signature) > falcon.SigMaxSize {
		return ErrInvalidSignatureSize
	}
	if !falcon.Verify512(a.publicKey[:], payloadHash[:], signature) {
		return ErrVerificationFailed
	}
	return nil
}
