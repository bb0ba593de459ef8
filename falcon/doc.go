// Package falcon implements verification of Falcon-512 signatures, the
// NTRU-lattice post-quantum signature scheme standardized by NIST, for use
// inside a resource-metered smart-contract environment.
//
// The package is verify-only: it decodes an 897-byte public key and a
// 42-700 byte signature in one of three on-wire formats, recomputes the
// signature's first component via NTT multiplication in Z_q[X]/(X^512+1),
// and checks the recovered vector's squared L2 norm against a fixed bound.
// Key generation and signing are out of scope.
package falcon
