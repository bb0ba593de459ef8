package falcon

// decodeCompressed decodes a Falcon-512 signature polynomial from the
// compressed (entropy-coded) body format shared by the Compressed and
// Padded wire variants.
//
// Per coefficient: 8 bits are read where the top bit is the sign and the
// low 7 bits are the magnitude's low bits; a unary-terminated prefix then
// adds 128 per leading zero bit until a terminating 1 bit. The "negative
// zero" encoding (sign=1, magnitude=0) and magnitudes above 2047 are
// rejected. After all N coefficients are decoded, any bits left over in the
// accumulator must be zero.
//
// Returns ok=false on any malformed input; consumed is the number of bytes
// of body actually read (meaningful only when ok is true).
func decodeCompressed(body []byte) (s2 [N]int16, consumed int, ok bool) {
	var acc uint32
	var accLen uint
	v := 0

	for u := 0; u < N; u++ {
		if v >= len(body) {
			return s2, 0, false
		}
		acc = (acc << 8) | uint32(body[v])
		v++

		b := acc >> accLen
		sign := b & 128
		m := uint32(b & 127)

		for {
			if accLen == 0 {
				if v >= len(body) {
					return s2, 0, false
				}
				acc = (acc << 8) | uint32(body[v])
				v++
				accLen = 8
			}
			accLen--
			if (acc>>accLen)&1 != 0 {
				break
			}
			m += 128
			if m > 2047 {
				return s2, 0, false
			}
		}

		if sign != 0 && m == 0 {
			return s2, 0, false
		}
		if sign != 0 {
			s2[u] = -int16(m)
		} else {
			s2[u] = int16(m)
		}
	}

	if accLen > 0 && (acc&((1<<accLen)-1)) != 0 {
		return s2, 0, false
	}
	return s2, v, true
}

// decodeCT decodes a Falcon-512 signature polynomial from the
// constant-time (fixed-width) body format: N 12-bit two's-complement
// values packed MSB-first, requiring an exact body length of
// ceil(N*12/8) = 768 bytes.
//
// The value -2048 is outside Falcon's legal signed-12-bit range and is
// rejected by direct comparison against the literal, not by reconstructing
// the sign-bit mask the reference implementation derives it from.
func decodeCT(body []byte) (s2 [N]int16, consumed int, ok bool) {
	const bits = 12
	if len(body) < ctBodySize {
		return s2, 0, false
	}

	var acc uint32
	var accLen uint
	buf := 0
	for u := 0; u < N; {
		acc = (acc << 8) | uint32(body[buf])
		buf++
		accLen += 8

		for accLen >= bits && u < N {
			accLen -= bits
			w := int32((acc >> accLen) & 0xFFF)
			if w&0x800 != 0 {
				w -= 0x1000
			}
			if w == -2048 {
				return s2, 0, false
			}
			s2[u] = int16(w)
			u++
		}
	}

	if accLen > 0 && (acc&((1<<accLen)-1)) != 0 {
		return s2, 0, false
	}
	return s2, ctBodySize, true
}
