package js8

import "testing"

func TestOSDDecodeCorrectsSingleError(t *testing.T) {
	var msg [ldpcK]uint8
	for i := range msg {
		msg[i] = uint8((i*3 + 1) % 2)
	}
	cw := codewordFromMessage(msg)

	llr := llrFromCodeword(cw, 10.0)
	// Flip one bit's sign but keep it at the same confident magnitude, as if
	// the channel handed the decoder one wrong-but-reliable-looking sample.
	flipPos := 40
	llr[flipPos] = -llr[flipPos]

	result := osdDecode(llr, 3)
	if result.Codeword != cw {
		t.Fatalf("osdDecode did not recover the true codeword for a single flipped bit at position %d", flipPos)
	}
}

func TestOSDDecodeNoopOnCleanInput(t *testing.T) {
	var msg [ldpcK]uint8
	msg[5] = 1
	msg[20] = 1
	cw := codewordFromMessage(msg)
	llr := llrFromCodeword(cw, 8.0)

	result := osdDecode(llr, 3)
	if result.Codeword != cw {
		t.Fatal("osdDecode altered an already-clean codeword")
	}
	if result.NHardErrs != 0 {
		t.Fatalf("osdDecode reported %d hard errors against a clean codeword", result.NHardErrs)
	}
}

func TestGenMatrixIdentityBlock(t *testing.T) {
	// genMatrix[i][87+i] completes the identity on the message-bit columns;
	// every other message column in row i must be zero.
	for i := 0; i < ldpcK; i++ {
		if genMatrix[i][ldpcM+i] != 1 {
			t.Fatalf("genMatrix[%d][%d] = 0, want 1 (identity block)", i, ldpcM+i)
		}
		for j := 0; j < ldpcK; j++ {
			if j == i {
				continue
			}
			if genMatrix[i][ldpcM+j] != 0 {
				t.Fatalf("genMatrix[%d][%d] = 1, want 0 off the identity diagonal", i, ldpcM+j)
			}
		}
	}
}

func TestMrbEncodeIsCodewordUnderTannerGraph(t *testing.T) {
	// Any codeword produced by the generator matrix must satisfy every
	// parity check in the sparse Tanner graph used by bpDecode.
	var msg [ldpcK]uint8
	msg[2] = 1
	msg[50] = 1
	msg[86] = 1

	cw := mrbEncode(msg, genMatrix)
	for m := 0; m < ldpcM; m++ {
		row := ldpcNm[m]
		var x uint8
		for j := 0; j < row.Valid; j++ {
			x ^= cw[row.Bits[j]]
		}
		if x != 0 {
			t.Fatalf("generator-matrix codeword fails parity check %d", m)
		}
	}
}

func TestForEachCombinationCount(t *testing.T) {
	count := 0
	forEachCombination(6, 3, func(positions []int) {
		count++
		if len(positions) != 3 {
			t.Fatalf("combination had %d positions, want 3", len(positions))
		}
	})
	// C(6,3) = 20
	if count != 20 {
		t.Fatalf("forEachCombination visited %d combinations, want 20", count)
	}
}

func TestForEachCombinationCoversAllSubsets(t *testing.T) {
	seen := make(map[[2]int]bool)
	forEachCombination(4, 2, func(positions []int) {
		seen[[2]int{positions[0], positions[1]}] = true
	})
	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(seen) != len(want) {
		t.Fatalf("saw %d distinct combinations, want %d", len(seen), len(want))
	}
	for _, w := range want {
		if !seen[w] {
			t.Fatalf("missing combination %v", w)
		}
	}
}
