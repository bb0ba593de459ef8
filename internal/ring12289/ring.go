// Package ring12289 wraps the lattigo negacyclic ring over Z_q[X]/(X^N+1)
// for the single fixed Falcon-512 instance N=512, Q=12289. It is adapted
// from the generic multi-limb RNS ring helpers used elsewhere in this module's
// lattice tooling, specialized down to the one modulus Falcon needs and with
// the RNS/limb plumbing removed since Falcon-512 never needs more than one.
package ring12289

import (
	"sync"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// N is the Falcon-512 ring dimension.
const N = 512

// Q is the Falcon-512 prime modulus. It satisfies Q = 1 mod 2N, which is
// exactly the condition lattigo requires to build an NTT-capable ring.
const Q = 12289

var (
	once    sync.Once
	shared  *ring.Ring
	initErr error
)

// Get returns the canonical Falcon-512 ring, built once and reused for the
// lifetime of the process. The returned *ring.Ring is never mutated after
// construction, so sharing it across concurrent callers is safe.
func Get() (*ring.Ring, error) {
	once.Do(func() {
		shared, initErr = ring.NewRing(N, []uint64{Q})
	})
	return shared, initErr
}

// FromCoeffs builds a ring element from Falcon's native coefficient
// representation, values in [0, Q).
func FromCoeffs(r *ring.Ring, coeffs [N]uint16) *ring.Poly {
	p := r.NewPoly()
	for i, c := range coeffs {
		p.Coeffs[0][i] = uint64(c)
	}
	return p
}

// ToCoeffs extracts a ring element back into Falcon's coefficient
// representation, values in [0, Q).
func ToCoeffs(r *ring.Ring, p *ring.Poly) [N]uint16 {
	var out [N]uint16
	for i := 0; i < N; i++ {
		out[i] = uint16(p.Coeffs[0][i])
	}
	return out
}

// PrepareForMul converts a coefficient-domain polynomial into the
// NTT-evaluation domain used by PointwiseMul. Calling it twice on the same
// polynomial without an intervening Inverse is a caller error (it is not
// idempotent in representation, only in the final algebraic semantics when
// correctly paired with PointwiseMul/Inverse).
func PrepareForMul(r *ring.Ring, p *ring.Poly) {
	r.NTT(p, p)
}

// Forward is the bare forward NTT, used where callers need the transform
// without implying the "prepared for repeated multiplication" semantics of
// PrepareForMul (e.g. the round-trip law test).
func Forward(r *ring.Ring, p *ring.Poly) {
	r.NTT(p, p)
}

// Inverse is the bare inverse NTT, converting back to the coefficient
// domain.
func Inverse(r *ring.Ring, p *ring.Poly) {
	r.InvNTT(p, p)
}

// PointwiseMul computes out[i] = a[i] * b[i] mod Q for polynomials already
// in the NTT-evaluation domain (see PrepareForMul/Forward). out may alias a.
func PointwiseMul(r *ring.Ring, a, b, out *ring.Poly) {
	r.MulCoeffs(a, b, out)
}

// Sub computes out[i] = (a[i] - b[i]) mod Q, result in [0, Q). out may alias a.
func Sub(r *ring.Ring, a, b, out *ring.Poly) {
	r.Sub(a, b, out)
}
