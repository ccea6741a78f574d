package js8

import "testing"

func TestSubmodeString(t *testing.T) {
	tests := map[Submode]string{
		SubmodeNormal: "A",
		SubmodeFast:   "B",
		SubmodeTurbo:  "C",
		SubmodeSlow:   "E",
		SubmodeUltra:  "I",
		Submode(99):   "?",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Submode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestUltraDisabledByDefault(t *testing.T) {
	if Submodes[SubmodeUltra].Enabled {
		t.Fatal("SubmodeUltra must default to disabled (JS8_ENABLE_JS8I=0)")
	}
	for _, m := range []Submode{SubmodeNormal, SubmodeFast, SubmodeTurbo, SubmodeSlow} {
		if !Submodes[m].Enabled {
			t.Errorf("submode %s must default to enabled", m)
		}
	}
}

func TestDeriveNormal(t *testing.T) {
	d := Submodes[SubmodeNormal].Derive()
	if d.NMax != 15*rxSampleRate {
		t.Errorf("NMax = %d, want %d", d.NMax, 15*rxSampleRate)
	}
	if d.NStep != 1920/4 {
		t.Errorf("NStep = %d, want %d", d.NStep, 1920/4)
	}
	if d.NFFT1 != 2*1920 {
		t.Errorf("NFFT1 = %d, want %d", d.NFFT1, 2*1920)
	}
	wantBaud := float64(rxSampleRate) / 1920.0
	if d.Baud != wantBaud {
		t.Errorf("Baud = %v, want %v", d.Baud, wantBaud)
	}
}

func TestDeriveWidebandFFTSizing(t *testing.T) {
	// NDFFT1/NDFFT2 come from NSPS*NDD, not NFFT1. Verify against every
	// submode's ground-truth NDD/NDownSPS pair.
	for _, p := range Submodes {
		d := p.Derive()
		wantNDFFT1 := p.NSPS * p.NDD
		if d.NDFFT1 != wantNDFFT1 {
			t.Errorf("submode %s: NDFFT1 = %d, want %d", p.Submode, d.NDFFT1, wantNDFFT1)
		}
		ndown := p.NSPS / p.NDownSPS
		wantNDFFT2 := wantNDFFT1 / ndown
		if d.NDFFT2 != wantNDFFT2 {
			t.Errorf("submode %s: NDFFT2 = %d, want %d", p.Submode, d.NDFFT2, wantNDFFT2)
		}
		// NDFFT1 must be at least NMax: the BB plan zero-pads the real
		// decode window, it never truncates it.
		if d.NDFFT1 < d.NMax {
			t.Errorf("submode %s: NDFFT1 %d < NMax %d, decode window would be truncated", p.Submode, d.NDFFT1, d.NMax)
		}
	}
}

func TestCostasFamilySelection(t *testing.T) {
	if CostasOriginal.Costas() != costasOriginal {
		t.Fatal("CostasOriginal.Costas() did not return costasOriginal")
	}
	if CostasModified.Costas() != costasModified {
		t.Fatal("CostasModified.Costas() did not return costasModified")
	}
	for i := 1; i < costasBlocks; i++ {
		if costasOriginal[i] != costasOriginal[0] {
			t.Fatal("costasOriginal blocks must be three identical copies")
		}
	}
}

func TestAlphabetIndexRoundTrip(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		if alphabetIndex[c] != int8(i) {
			t.Fatalf("alphabetIndex[%q] = %d, want %d", c, alphabetIndex[c], i)
		}
	}
	if alphabetIndex['@'] != -1 {
		t.Fatalf("alphabetIndex['@'] = %d, want -1 (not in Alphabet)", alphabetIndex['@'])
	}
}
