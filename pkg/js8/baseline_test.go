package js8

import "testing"

func TestPercentileExactRank(t *testing.T) {
	data := []float64{5, 1, 4, 2, 3}
	if got := percentile(data, 0); got != 1 {
		t.Errorf("percentile(data,0) = %v, want 1 (minimum)", got)
	}
	if got := percentile(data, 100); got != 5 {
		t.Errorf("percentile(data,100) = %v, want 5 (maximum)", got)
	}
}

func TestPercentileEmpty(t *testing.T) {
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile(nil,50) = %v, want 0", got)
	}
}

func TestEvalPolyEstrinMatchesHornerForm(t *testing.T) {
	coeffs := []float64{1, -2, 3, 0.5} // 1 - 2x + 3x^2 + 0.5x^3
	x := 2.5
	want := coeffs[0] + coeffs[1]*x + coeffs[2]*x*x + coeffs[3]*x*x*x
	got := evalPolyEstrin(coeffs, x)
	if diff := got - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("evalPolyEstrin = %v, want %v", got, want)
	}
}

func TestEstimateBaselineMonotonicUnderFlatInput(t *testing.T) {
	nfa, nfb := 100, 300
	savg := make([]float64, 400)
	for i := nfa; i <= nfb; i++ {
		savg[i] = 1.0 // flat power spectrum: baseline should be flat too
	}
	sbase := estimateBaseline(savg, nfa, nfb)
	if len(sbase) != len(savg) {
		t.Fatalf("estimateBaseline returned %d entries, want %d", len(sbase), len(savg))
	}
	first := sbase[nfa]
	for i := nfa; i <= nfb; i++ {
		if diff := sbase[i] - first; diff < -0.5 || diff > 0.5 {
			t.Errorf("sbase[%d] = %v deviates from flat baseline %v by more than 0.5 dB", i, sbase[i], first)
		}
	}
}

func TestEstimateBaselineOutOfRangeReturnsZero(t *testing.T) {
	savg := make([]float64, 10)
	sbase := estimateBaseline(savg, 5, 3) // nfb <= nfa
	for i, v := range sbase {
		if v != 0 {
			t.Fatalf("estimateBaseline with an invalid range returned non-zero at %d: %v", i, v)
		}
	}
}
