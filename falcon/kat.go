package falcon

import "encoding/binary"

// ReassembleFromKAT reconstructs a standard Falcon signature (header ||
// nonce || compressed body) and the signed message from a NIST "sm"
// envelope of the form
//
//	sig_len (2 bytes, big-endian) || nonce (40 bytes) || message || sig_data
//
// where sig_data is itself header || compressed body, sig_data's length is
// sig_len, and the message's length is whatever remains of sm once the
// 2-byte length field, the nonce, and sig_data (sig_len bytes) are
// accounted for — the NIST KAT format never pads sm, so this is recoverable
// from sm alone without a separately-tracked mlen.
//
// It returns ok=false if sm is too short for the lengths it declares.
func ReassembleFromKAT(sm []byte) (nonce [NonceSize]byte, message, signature []byte, ok bool) {
	if len(sm) < 2+NonceSize {
		return nonce, nil, nil, false
	}
	sigLen := int(binary.BigEndian.Uint16(sm[:2]))
	copy(nonce[:], sm[2:2+NonceSize])

	mlen := len(sm) - 2 - NonceSize - sigLen
	if mlen < 0 || sigLen < 1 {
		return nonce, nil, nil, false
	}
	msgStart := 2 + NonceSize
	msgEnd := msgStart + mlen
	message = sm[msgStart:msgEnd]

	sigData := sm[msgEnd:]
	header := sigData[0]
	body := sigData[1:]

	signature = make([]byte, 0, 1+NonceSize+len(body))
	signature = append(signature, header)
	signature = append(signature, nonce[:]...)
	signature = append(signature, body...)

	return nonce, message, signature, true
}
