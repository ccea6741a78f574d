package js8

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

/*
 * Baseline estimator (§4.8): Chebyshev-node polynomial fit to the lower
 * envelope of the average symbol-spectrum power, used as a noise-floor
 * reference during sync search and per-candidate SNR computation.
 */

// estimateBaseline converts savg[nfa:nfb+1] to dB, samples 6 Chebyshev-node
// positions, takes a 10th-percentile value within an arm around each node,
// fits a degree-5 polynomial via Vandermonde + QR, and evaluates it across
// the full span. The result is indexed the same as the input slice.
func estimateBaseline(savg []float64, nfa, nfb int) []float64 {
	sbase := make([]float64, len(savg))
	if nfb <= nfa || nfa < 0 || nfb >= len(savg) {
		return sbase
	}

	span := nfb - nfa + 1
	x := make([]float64, span)
	for i := 0; i < span; i++ {
		v := savg[nfa+i]
		if v > 0 {
			x[i] = 10 * math.Log10(v)
		} else {
			x[i] = -120
		}
	}

	nodeX := make([]float64, baselineNodes)
	nodeY := make([]float64, baselineNodes)
	arm := float64(span) / (2 * baselineNodes)
	for i := 0; i < baselineNodes; i++ {
		frac := 0.5 * (1 - math.Cos(math.Pi*float64(2*i+1)/float64(2*baselineNodes)))
		center := frac * float64(span-1)
		lo := int(math.Max(0, center-arm))
		hi := int(math.Min(float64(span-1), center+arm))
		nodeX[i] = center
		nodeY[i] = percentile(x[lo:hi+1], baselinePctile)
	}

	coeffs := polyfitQR(nodeX, nodeY, baselineDegree)

	for i := 0; i < span; i++ {
		sbase[nfa+i] = evalPolyEstrin(coeffs, float64(i)) + 0.65
	}
	return sbase
}

// percentile returns the exact-rank npct-th percentile (npct in [0,100]) of data.
func percentile(data []float64, npct int) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	idx := (len(sorted) * npct) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// polyfitQR fits y = sum(coeffs[k] * x^k) for k in [0,degree] via a
// Vandermonde system solved by Householder QR (gonum mat.QR, no column
// pivoting).
func polyfitQR(x, y []float64, degree int) []float64 {
	n := len(x)
	terms := degree + 1
	if n < terms {
		// Underdetermined: pad with the mean so the solve stays well posed.
		return meanPolyfit(y, terms)
	}

	A := mat.NewDense(n, terms, nil)
	for i := 0; i < n; i++ {
		xi := 1.0
		for j := 0; j < terms; j++ {
			A.Set(i, j, xi)
			xi *= x[i]
		}
	}
	b := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(A)

	var coeffVec mat.VecDense
	if err := qr.SolveVecTo(&coeffVec, false, b); err != nil {
		return meanPolyfit(y, terms)
	}

	coeffs := make([]float64, terms)
	for i := 0; i < terms; i++ {
		coeffs[i] = coeffVec.AtVec(i)
	}
	return coeffs
}

func meanPolyfit(y []float64, terms int) []float64 {
	coeffs := make([]float64, terms)
	sum := 0.0
	for _, v := range y {
		sum += v
	}
	if len(y) > 0 {
		coeffs[0] = sum / float64(len(y))
	}
	return coeffs
}

// evalPolyEstrin evaluates a polynomial via Estrin's scheme (pairwise
// combination), matching the numeric-reproducibility requirement in §9.
func evalPolyEstrin(coeffs []float64, x float64) float64 {
	terms := make([]float64, len(coeffs))
	copy(terms, coeffs)
	xp := x
	for len(terms) > 1 {
		next := make([]float64, (len(terms)+1)/2)
		for i := range next {
			lo := terms[2*i]
			if 2*i+1 < len(terms) {
				next[i] = lo + xp*terms[2*i+1]
			} else {
				next[i] = lo
			}
		}
		terms = next
		xp *= xp
	}
	return terms[0]
}
