package js8

import "fmt"

/*
 * Encoder (§4.12): 12-character payload + 3-bit frame type -> 79 tones.
 */

// EncodeMessage packs a 12-character alphabet payload and a 3-bit frame type
// into the 79-tone sequence for one of the five submodes' Costas family.
func EncodeMessage(frameType int, costas CostasFamily, payload string) ([nn]int, error) {
	var tones [nn]int
	if len(payload) != 12 {
		return tones, fmt.Errorf("js8: payload must be 12 characters, got %d", len(payload))
	}

	var bytes [11]byte
	for i, j := 0, 0; i < 12; i, j = i+4, j+3 {
		var words [4]int8
		for k := 0; k < 4; k++ {
			idx := alphabetIndex[payload[i+k]]
			if idx < 0 {
				return tones, fmt.Errorf("js8: invalid alphabet character %q at position %d", payload[i+k], i+k)
			}
			words[k] = idx
		}
		packed := uint32(words[0])<<18 | uint32(words[1])<<12 | uint32(words[2])<<6 | uint32(words[3])
		bytes[j] = byte(packed >> 16)
		bytes[j+1] = byte(packed >> 8)
		bytes[j+2] = byte(packed)
	}

	bytes[9] = byte((frameType & 0b111) << 5)

	crc := crc12(bytes[:])
	spliceCRC12(bytes[:], crc)

	// Unpack the 87 message bits from the byte array, MSB first.
	var msg [ldpcK]uint8
	for i := 0; i < ldpcK; i++ {
		byteIdx, bitMask := i/8, byte(0x80>>(i%8))
		if bytes[byteIdx]&bitMask != 0 {
			msg[i] = 1
		}
	}

	return buildToneSequence(costas.Costas(), msg), nil
}

// buildToneSequence frames 87 systematic message bits (parity block then
// message block, 29 3-bit tones each) between the three Costas arrays,
// producing the full 79-tone sequence (§4.12 steps 4-5). Shared by the
// encoder and the per-candidate decoder's reference-tone reconstruction
// (§4.9 step 10), which needs the Costas tones too, not just the data ones.
func buildToneSequence(costas [costasBlocks][costasLen]int, msg [ldpcK]uint8) [nn]int {
	var tones [nn]int
	for i := 0; i < costasLen; i++ {
		tones[i] = costas[0][i]
		tones[36+i] = costas[1][i]
		tones[72+i] = costas[2][i]
	}

	for i := 0; i < ldpcK; i++ {
		var parityBit uint8
		row := parityMatrix[i]
		for j := 0; j < ldpcK; j++ {
			parityBit ^= row[j] & msg[j]
		}
		block, offset := i/3, i%3
		if offset == 0 {
			tones[7+block] = 0
			tones[43+block] = 0
		}
		tones[7+block] = (tones[7+block] << 1) | int(parityBit)
		tones[43+block] = (tones[43+block] << 1) | int(msg[i])
	}

	return tones
}
