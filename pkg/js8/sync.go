package js8

import (
	"math"
	"sort"
)

/*
 * Symbol spectra and Costas sync search (§4.7), grounded on syncjs8() in
 * the reference implementation.
 */

// nuttallWindow returns a Kahan-compensated Nuttall window of length n,
// normalised so its elements sum to n/300 (§4.7 step 1, §9 numeric
// reproducibility).
func nuttallWindow(n int) []float64 {
	const a0, a1, a2, a3 = 0.3635819, -0.4891775, 0.1365995, -0.0106411
	w := make([]float64, n)
	sum, c := 0.0, 0.0
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * float64(i) / float64(n-1)
		v := a0 + a1*math.Cos(phase) + a2*math.Cos(2*phase) + a3*math.Cos(3*phase)
		w[i] = v
		// Kahan summation.
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	target := float64(n) / 300.0
	if sum != 0 {
		scale := target / sum
		for i := range w {
			w[i] *= scale
		}
	}
	return w
}

// SymbolSpectra holds the per-segment, per-bin power used by sync search
// and baseline estimation: s[seg][bin] = |FFT segment|^2 up to NSPS bins.
type SymbolSpectra struct {
	NHSym int
	NSPS  int
	S     [][]float64 // [NHSym][NSPS]
	Savg  []float64   // [NSPS], accumulated power
}

// BuildSymbolSpectra windows and FFTs NHSym overlapping segments of the
// NMax-sample decode window (§4.7 steps 1-2).
func BuildSymbolSpectra(samples []float64, d Derived, plan *PlanSet, nsps int) *SymbolSpectra {
	window := nuttallWindow(d.NFFT1)
	spectra := &SymbolSpectra{NHSym: d.NHSym, NSPS: nsps, S: make([][]float64, d.NHSym), Savg: make([]float64, nsps)}

	seg := make([]float64, d.NFFT1)
	for h := 0; h < d.NHSym; h++ {
		start := h * d.NStep
		for i := 0; i < d.NFFT1; i++ {
			if start+i < len(samples) {
				seg[i] = samples[start+i] * window[i]
			} else {
				seg[i] = 0
			}
		}
		coeffs := plan.SD.Coefficients(nil, seg)
		row := make([]float64, nsps)
		for i := 0; i < nsps && i < len(coeffs); i++ {
			mag2 := real(coeffs[i])*real(coeffs[i]) + imag(coeffs[i])*imag(coeffs[i])
			row[i] = mag2
			spectra.Savg[i] += mag2
		}
		spectra.S[h] = row
	}
	return spectra
}

// clipBand clips [nfa,nfb] to [100,4910] preserving a minimum 100 Hz width
// where possible (§4.7 step 3, §8 boundary behaviour).
func clipBand(nfa, nfb int) (int, int) {
	if nfa < 100 {
		nfa = 100
	}
	if nfb > 4910 {
		nfb = 4910
	}
	if nfb-nfa < 100 {
		nfb = nfa + 100
	}
	return nfa, nfb
}

// SyncCandidate is one (frequency, time-offset) trial point with its
// matched-Costas sync power (§3 "Sync candidate").
type SyncCandidate struct {
	Freq float64 // Hz
	Step float64 // DT offset, seconds
	Sync float64
}

// searchSync evaluates the Costas matched filter over the clipped frequency
// band and DT range, normalises by the 40th-percentile rank, and extracts
// up to nMaxCand candidates in descending-sync order with near-duplicate
// suppression (§4.7 steps 3-7).
func searchSync(spectra *SymbolSpectra, params SubmodeParams, derived Derived, nfa, nfb int) []SyncCandidate {
	nfa, nfb = clipBand(nfa, nfb)
	binLo := int(float64(nfa) / derived.DF)
	binHi := int(float64(nfb) / derived.DF)
	if binHi >= spectra.NSPS {
		binHi = spectra.NSPS - 1
	}

	costas := params.Costas.Costas()
	jz := params.JZ
	jstrt := 0

	type binBest struct {
		bin  int
		j    int
		sync float64
	}
	var bests []binBest

	for bin := binLo; bin <= binHi; bin++ {
		bestSync := math.Inf(-1)
		bestJ := 0
		for j := -jz; j <= jz; j++ {
			sync := costasSyncAt(spectra, costas, bin, j, jstrt)
			if sync > bestSync {
				bestSync = sync
				bestJ = j
			}
		}
		bests = append(bests, binBest{bin: bin, j: bestJ, sync: bestSync})
	}

	if len(bests) == 0 {
		return nil
	}

	// 40th-percentile rank normalisation (stable, exact rank).
	vals := make([]float64, 0, len(bests))
	for _, b := range bests {
		if !math.IsNaN(b.sync) && !math.IsInf(b.sync, 0) {
			vals = append(vals, b.sync)
		}
	}
	norm := 1.0
	if len(vals) > 0 {
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		idx := len(sorted) * 40 / 100
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		if sorted[idx] != 0 {
			norm = sorted[idx]
		}
	}

	candidates := make([]SyncCandidate, 0, len(bests))
	for _, b := range bests {
		s := b.sync / norm
		if math.IsNaN(s) {
			continue
		}
		candidates = append(candidates, SyncCandidate{
			Freq: float64(b.bin) * derived.DF,
			Step: float64(b.j) * derived.TStep,
			Sync: s,
		})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Sync > candidates[j].Sync })

	az := derived.AZ
	var out []SyncCandidate
	taken := make([]bool, len(candidates))
	for i := range candidates {
		if taken[i] {
			continue
		}
		if candidates[i].Sync < asyncMin || math.IsNaN(candidates[i].Sync) {
			break
		}
		out = append(out, candidates[i])
		if len(out) >= nMaxCand {
			break
		}
		for j := i + 1; j < len(candidates); j++ {
			if math.Abs(candidates[j].Freq-candidates[i].Freq) <= az {
				taken[j] = true
			}
		}
	}
	return out
}

// costasSyncAt computes the matched-Costas sync ratio for one (bin, DT
// offset) trial, taking the maximum over the three block-subset ranges
// [0,2],[0,1],[1,2] per §4.7 step 5 and §9's preserved rationale.
func costasSyncAt(spectra *SymbolSpectra, costas [costasBlocks][costasLen]int, bin, j, jstrt int) float64 {
	var t0, t1 [costasBlocks]float64
	for p := 0; p < costasBlocks; p++ {
		for n := 0; n < costasLen; n++ {
			idx := j + jstrt + 4*n + p*144
			if idx < 0 || idx >= spectra.NHSym {
				continue
			}
			toneBin := bin + 2*costas[p][n]
			if toneBin >= 0 && toneBin < spectra.NSPS {
				t0[p] += spectra.S[idx][toneBin]
			}
			for f := 0; f < 8; f++ {
				fb := bin + 2*f
				if fb >= 0 && fb < spectra.NSPS {
					t1[p] += spectra.S[idx][fb]
				}
			}
		}
	}

	computeSync := func(lo, hi int) float64 {
		tx, t1x := 0.0, 0.0
		for p := lo; p <= hi; p++ {
			tx += t0[p]
			t1x += t1[p]
		}
		denom := (t1x - tx) / 6.0
		if denom == 0 {
			return math.Inf(-1)
		}
		return tx / denom
	}

	best := computeSync(0, 2)
	if v := computeSync(0, 1); v > best {
		best = v
	}
	if v := computeSync(1, 2); v > best {
		best = v
	}
	return best
}
