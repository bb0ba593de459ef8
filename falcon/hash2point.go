package falcon

import "golang.org/x/crypto/sha3"

// acceptThreshold is the rejection-sampling cutoff used by hashToPoint: the
// largest multiple of Q that still fits comfortably under 2^16, biased
// towards discarding as few XOF outputs as possible while keeping the
// reduction to Q a simple repeated subtraction.
const acceptThreshold = 5 * Q

// hashToPoint maps a nonce and message to a point in Z_q[X]/(X^N+1) by
// absorbing nonce then message into a SHAKE256 XOF and reading 2-byte
// big-endian words, rejecting any word at or above acceptThreshold and
// reducing accepted words into [0, Q) by repeated subtraction.
func hashToPoint(nonce [NonceSize]byte, message []byte) (c0 [N]uint16) {
	xof := sha3.NewShake256()
	xof.Write(nonce[:])
	xof.Write(message)

	var buf [2]byte
	i := 0
	for i < N {
		xof.Read(buf[:])
		w := uint32(buf[0])<<8 | uint32(buf[1])
		if w < acceptThreshold {
			for w >= Q {
				w -= Q
			}
			c0[i] = uint16(w)
			i++
		}
	}
	return c0
}
