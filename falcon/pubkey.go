package falcon

// DecodePublicKey decodes a Falcon-512 public key from its 897-byte wire
// format: 1 header byte (value 9) followed by 512 coefficients packed
// 14 bits each, MSB-first.
//
// It returns ok=false for any malformed input: wrong length, wrong header,
// an out-of-range coefficient, or a nonzero tail in the final bit
// accumulator.
func DecodePublicKey(data []byte) (h [N]uint16, ok bool) {
	if len(data) != PubKeySize {
		return h, false
	}
	if data[0] != LogN {
		return h, false
	}

	body := data[1:]
	var acc uint32
	var accLen uint
	buf := 0
	for u := 0; u < N; {
		acc = (acc << 8) | uint32(body[buf])
		buf++
		accLen += 8

		if accLen >= 14 {
			accLen -= 14
			w := (acc >> accLen) & 0x3FFF
			if w >= Q {
				return h, false
			}
			h[u] = uint16(w)
			u++
		}
	}

	if accLen > 0 && (acc&((1<<accLen)-1)) != 0 {
		return h, false
	}
	return h, true
}

// EncodePublicKey re-encodes a decoded public key back into its 897-byte
// wire form. It is the right inverse of DecodePublicKey on any value it
// produces: DecodePublicKey(EncodePublicKey(h)) always succeeds and returns
// h, and re-encoding a successfully decoded key reproduces the original
// bytes (the canonicality property tested in falcon_test.go).
func EncodePublicKey(h [N]uint16) [PubKeySize]byte {
	var out [PubKeySize]byte
	out[0] = LogN

	var acc uint32
	var accLen uint
	pos := 1
	for _, c := range h {
		acc = (acc << 14) | uint32(c)
		accLen += 14
		for accLen >= 8 {
			accLen -= 8
			out[pos] = byte(acc >> accLen)
			pos++
		}
	}
	if accLen > 0 {
		out[pos] = byte(acc << (8 - accLen))
	}
	return out
}
