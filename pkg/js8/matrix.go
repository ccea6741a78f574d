package js8

/*
 * Bit-matrix helpers shared by the encoder and OSD decoder.
 * ldpcParityHex/ldpcGenHex rows are 22 hex characters (88 bits) with
 * the trailing padding bit always zero; only the first 87 bits are used.
 */

// hexRowBits decodes a big-endian hex row into its first n bits, MSB first
// within each nibble.
func hexRowBits(hex string, n int) []uint8 {
	bits := make([]uint8, n)
	for j := 0; j < len(hex) && j*4 < n; j++ {
		c := hex[j]
		var v uint8
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		}
		for bit := 0; bit < 4; bit++ {
			col := j*4 + bit
			if col >= n {
				break
			}
			if v&(1<<(3-bit)) != 0 {
				bits[col] = 1
			}
		}
	}
	return bits
}

// parityMatrix is the 87x87 bit matrix used directly by the encoder (§4.12):
// parityMatrix[i][j] selects whether message bit j contributes to parity bit i.
var parityMatrix = buildParityMatrix()

func buildParityMatrix() [ldpcM][ldpcK]uint8 {
	var m [ldpcM][ldpcK]uint8
	for i, hex := range ldpcParityHex {
		copy(m[i][:], hexRowBits(hex, ldpcK))
	}
	return m
}

// genMatrix is the systematic K x N generator matrix used by the OSD
// re-encoder (§4.5): genMatrix[i][0:87] is column i of parityMatrix (the
// parity bits that message bit i feeds), and genMatrix[i][87+i] = 1
// completes the identity on the message-bit columns, so mrbEncode yields
// the same codeword buildToneSequence frames.
var genMatrix = buildGenMatrix()

func buildGenMatrix() [ldpcK][ldpcN]uint8 {
	var g [ldpcK][ldpcN]uint8
	for i := 0; i < ldpcK; i++ {
		for j := 0; j < ldpcM; j++ {
			g[i][j] = parityMatrix[j][i]
		}
		g[i][ldpcM+i] = 1
	}
	return g
}
