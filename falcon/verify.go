package falcon

import "github.com/SoundnessLabs/stellar-pq/internal/ring12289"

// Verify512 verifies a Falcon-512 signature over message under publicKey.
//
// publicKey must be the 897-byte encoded form produced by EncodePublicKey.
// signature must be 42-700 bytes in one of the three Falcon wire formats
// (Padded, Compressed, Constant-Time), dispatched on its header byte's high
// nibble. Verify512 returns false, never an error, for any malformed or
// invalid input: callers that need to distinguish malformed input from a
// correctly-formed but invalid signature should decode the inputs
// themselves first.
func Verify512(publicKey, message, signature []byte) bool {
	h, ok := DecodePublicKey(publicKey)
	if !ok {
		return false
	}

	if len(signature) < SigMinSize || len(signature) > SigMaxSize {
		return false
	}
	sigHeader := signature[0]
	if sigHeader&headerLogNMask != LogN {
		return false
	}
	format := SignatureFormat(sigHeader & headerFormatMask)
	switch format {
	case FormatPadded, FormatCompressed, FormatCT:
	default:
		return false
	}

	var nonce [NonceSize]byte
	copy(nonce[:], signature[1:1+NonceSize])
	sigData := signature[1+NonceSize:]

	var s2 [N]int16
	var consumed int
	if format == FormatCT {
		s2, consumed, ok = decodeCT(sigData)
	} else {
		s2, consumed, ok = decodeCompressed(sigData)
	}
	if !ok {
		return false
	}

	if format != FormatCT && consumed < len(sigData) {
		for _, b := range sigData[consumed:] {
			if b != 0 {
				return false
			}
		}
	}

	c0 := hashToPoint(nonce, message)

	return verifyRaw512(c0, s2, h)
}

// verifyRaw512 recomputes s1 = c0 - s2*h in Z_q[X]/(X^N+1) and checks that
// the recovered (s1, s2) vector is short enough.
func verifyRaw512(c0 [N]uint16, s2 [N]int16, h [N]uint16) bool {
	r, err := ring12289.Get()
	if err != nil {
		return false
	}

	var tt [N]uint16
	for i, z := range s2 {
		w := int32(z)
		if w < 0 {
			w += Q
		}
		tt[i] = uint16(w)
	}

	ttPoly := ring12289.FromCoeffs(r, tt)
	hPoly := ring12289.FromCoeffs(r, h)

	ring12289.Forward(r, ttPoly)
	ring12289.PrepareForMul(r, hPoly)

	prod := r.NewPoly()
	ring12289.PointwiseMul(r, ttPoly, hPoly, prod)
	ring12289.Inverse(r, prod)

	c0Poly := ring12289.FromCoeffs(r, c0)
	diff := r.NewPoly()
	ring12289.Sub(r, prod, c0Poly, diff)

	negS1 := ring12289.ToCoeffs(r, diff)

	var s1 [N]int16
	for i, w := range negS1 {
		v := int32(w)
		if v > Q/2 {
			v -= Q
		}
		s1[i] = int16(v)
	}

	return isShort(s1, s2)
}
