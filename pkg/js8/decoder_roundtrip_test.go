package js8

import (
	"math"
	"testing"
)

/*
 * End-to-end encode -> decode round trip (§8 first invariant, spec.md test
 * 2): a message encoded to 8-FSK tones must come back out the symbol
 * extraction / belief-propagation / CRC pipeline unchanged. This is the
 * exact chain costasQualityGate -> extractLLR -> bitMetric -> bpDecode ->
 * ExtractMessage runs on a real candidate; an inverted bitMetric sign would
 * fail every symbol's hard decision and this test would not decode.
 */

// synthesizeNarrowbandTones builds a noiseless narrowband baseband exactly
// as buildSymbolFFTs expects to see one coming out of narrowbandDownsample:
// each symbol is the pure DFT basis vector for its tone's bin, so the
// per-symbol complex FFT recovers a clean peak at row == tone.
func synthesizeNarrowbandTones(tones [nn]int, ndownsps int) []complex128 {
	out := make([]complex128, nn*ndownsps)
	idx := 0
	for _, tone := range tones {
		for i := 0; i < ndownsps; i++ {
			phase := 2 * math.Pi * float64(tone) * float64(i) / float64(ndownsps)
			out[idx] = complex(math.Cos(phase), math.Sin(phase))
			idx++
		}
	}
	return out
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, m := range []Submode{SubmodeNormal, SubmodeFast, SubmodeTurbo, SubmodeSlow, SubmodeUltra} {
		params := Submodes[m]
		t.Run(params.Submode.String(), func(t *testing.T) {
			const payload = "HELLOWORLD01"
			const frameType = 3

			tones, err := EncodeMessage(frameType, params.Costas, payload)
			if err != nil {
				t.Fatalf("EncodeMessage: %v", err)
			}

			st := &candidateState{cd0: synthesizeNarrowbandTones(tones, params.NDownSPS)}
			plans, err := NewPlanSet(params.Derive(), params.NDownSPS)
			if err != nil {
				t.Fatalf("NewPlanSet: %v", err)
			}
			buildSymbolFFTs(st, 0, params.NDownSPS, plans)

			costas := params.Costas.Costas()
			nsync := costasQualityGate(st, costas)
			if nsync != costasBlocks*costasLen {
				t.Fatalf("costasQualityGate = %d, want %d (perfect match on a noiseless signal)", nsync, costasBlocks*costasLen)
			}
			quality := float64(nsync) / float64(costasBlocks*costasLen)
			if quality <= 0.9 {
				t.Fatalf("quality = %v, want > 0.9 for a clean decode", quality)
			}

			llr0, _ := extractLLR(st)
			bp := bpDecode(llr0, bpMaxIterations)
			if !bp.OK {
				t.Fatalf("bpDecode failed to converge on a noiseless signal, NErr=%d", bp.NErr)
			}

			msg, ok := ExtractMessage(messageBits(bp.Codeword))
			if !ok {
				t.Fatal("ExtractMessage rejected a noiseless decoded codeword (CRC mismatch)")
			}
			if msg.Payload != payload {
				t.Errorf("decoded payload = %q, want %q", msg.Payload, payload)
			}
			if msg.FrameType != frameType {
				t.Errorf("decoded frame type = %d, want %d", msg.FrameType, frameType)
			}
		})
	}
}
