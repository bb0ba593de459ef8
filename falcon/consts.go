package falcon

// Falcon-512 ring and signature-size constants. These mirror the values
// fixed by the Falcon specification and are compile-time constants so the
// compiler can inline the reductions that use them.
const (
	// N is the polynomial degree for Falcon-512.
	N = 512

	// LogN is log2(N), encoded in the low nibble of the public key and
	// signature header bytes.
	LogN = 9

	// Q is the NTT-friendly prime modulus of the ring Z_q[X]/(X^N+1).
	Q = 12289

	// L2Bound is the squared L2 norm bound a valid Falcon-512 signature's
	// (s1, s2) vector must satisfy.
	L2Bound = 34034726

	// PubKeySize is the encoded public key length: 1 header byte plus
	// N*14 bits.
	PubKeySize = 897

	// SigMinSize and SigMaxSize bound the encoded signature length across
	// all three wire formats.
	SigMinSize = 42
	SigMaxSize = 700

	// NonceSize is the length of the salt/nonce prefix inside a signature.
	NonceSize = 40

	// paddedSigSize is the fixed total length of the Padded format.
	paddedSigSize = 666
	// ctBodySize is the fixed body length of the Constant-Time format;
	// ctSigSize is the resulting fixed total signature length.
	ctBodySize = (N*12 + 7) / 8
	ctSigSize  = 1 + NonceSize + ctBodySize

	// headerLogNMask / headerFormatMask split the signature header byte
	// into its logn low nibble and format high nibble.
	headerLogNMask   = 0x0F
	headerFormatMask = 0xF0
)

// SignatureFormat identifies one of Falcon's three on-wire signature
// encodings. The orchestrator branches on it exactly once.
type SignatureFormat uint8

const (
	// FormatPadded is the compressed encoding zero-padded to a fixed
	// 666-byte total signature length.
	FormatPadded SignatureFormat = 0x20
	// FormatCompressed is the variable-length entropy-coded encoding.
	FormatCompressed SignatureFormat = 0x30
	// FormatCT is the fixed-width 12-bit-per-coefficient encoding.
	FormatCT SignatureFormat = 0x50
)

// headerByte is the signature header encoding a format and LogN.
func headerByte(f SignatureFormat) byte {
	return byte(f) | LogN
}
