package js8

import "testing"

func TestEncodeMessageToneRange(t *testing.T) {
	tones, err := EncodeMessage(2, CostasModified, "CQCQDEK1ABC0")
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	for i, tone := range tones {
		if tone < 0 || tone > 7 {
			t.Fatalf("tone[%d] = %d, out of 8-FSK range", i, tone)
		}
	}
}

func TestEncodeMessageCostasPlacement(t *testing.T) {
	tones, err := EncodeMessage(0, CostasOriginal, "000000000000")
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	want := costasOriginal
	for i := 0; i < costasLen; i++ {
		if tones[i] != want[0][i] {
			t.Fatalf("tones[%d] = %d, want Costas block 0 tone %d", i, tones[i], want[0][i])
		}
		if tones[36+i] != want[1][i] {
			t.Fatalf("tones[%d] = %d, want Costas block 1 tone %d", 36+i, tones[36+i], want[1][i])
		}
		if tones[72+i] != want[2][i] {
			t.Fatalf("tones[%d] = %d, want Costas block 2 tone %d", 72+i, tones[72+i], want[2][i])
		}
	}
}

func TestEncodeMessageRejectsBadInput(t *testing.T) {
	if _, err := EncodeMessage(0, CostasModified, "SHORT"); err == nil {
		t.Fatal("EncodeMessage accepted a payload of the wrong length")
	}
	if _, err := EncodeMessage(0, CostasModified, "CQCQDEK1AB@0"); err == nil {
		t.Fatal("EncodeMessage accepted a character outside the alphabet")
	}
}

func TestEncodeMessageDecodesThroughLDPC(t *testing.T) {
	tones, err := EncodeMessage(5, CostasModified, "K1ABC-K2XYZ0")
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	// Recover the 174-bit codeword directly from the tone framing (§4.12
	// steps 4-5 in reverse): parity block at symbols 7..35, data block at
	// symbols 43..71, 3 bits per tone.
	var cw [ldpcN]uint8
	for block := 0; block < 29; block++ {
		pt := tones[7+block]
		dt := tones[43+block]
		for bit := 0; bit < 3; bit++ {
			cw[block*3+bit] = uint8((pt >> (2 - bit)) & 1)
			cw[ldpcM+block*3+bit] = uint8((dt >> (2 - bit)) & 1)
		}
	}

	llr := llrFromCodeword(cw, 15.0)
	result := bpDecode(llr, bpMaxIterations)
	if !result.OK {
		t.Fatalf("bpDecode could not decode an encoded message, NErr=%d", result.NErr)
	}

	msg, ok := ExtractMessage(messageBits(result.Codeword))
	if !ok {
		t.Fatal("ExtractMessage rejected a decoded, noiseless encoded message")
	}
	if msg.Payload != "K1ABC-K2XYZ0" {
		t.Fatalf("decoded payload = %q, want %q", msg.Payload, "K1ABC-K2XYZ0")
	}
	if msg.FrameType != 5 {
		t.Fatalf("decoded frame type = %d, want 5", msg.FrameType)
	}
}

func TestBuildToneSequenceMatchesEncoder(t *testing.T) {
	var msg [ldpcK]uint8
	msg[10] = 1
	msg[60] = 1
	tones := buildToneSequence(CostasModified.Costas(), msg)

	cw := codewordFromMessage(msg)
	for block := 0; block < 29; block++ {
		var pt, dt int
		for bit := 0; bit < 3; bit++ {
			pt = (pt << 1) | int(cw[block*3+bit])
			dt = (dt << 1) | int(cw[ldpcM+block*3+bit])
		}
		if tones[7+block] != pt {
			t.Fatalf("parity tone[%d] = %d, want %d", block, tones[7+block], pt)
		}
		if tones[43+block] != dt {
			t.Fatalf("data tone[%d] = %d, want %d", block, tones[43+block], dt)
		}
	}
}
