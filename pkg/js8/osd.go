package js8

import (
	"math"
	"sort"
)

/*
 * Ordered-statistics decoding fallback (§4.5).
 *
 * For each order 1..ndeep, the reference decoder enumerates every distinct
 * permutation of a length-K vector holding `order` ones (std::prev_permutation
 * over a mostly-zero vector), which visits exactly the C(K,order) weight-order
 * error patterns over the K most-reliable positions. This reproduces the same
 * candidate set via a combination walk rather than a permutation walk, and
 * exploits linearity of mrbencode (XOR of generator rows) to score each
 * candidate incrementally instead of re-encoding all K rows per candidate.
 */

// osdResult is the outcome of an OSD decode attempt.
type osdResult struct {
	Codeword  [ldpcN]uint8
	NHardErrs int
	Dmin      float64
}

// mrbEncode XORs together the rows of g selected by a 1-bit message vector.
func mrbEncode(message [ldpcK]uint8, g [ldpcK][ldpcN]uint8) [ldpcN]uint8 {
	var cw [ldpcN]uint8
	for i := 0; i < ldpcK; i++ {
		if message[i] == 1 {
			for j := 0; j < ldpcN; j++ {
				cw[j] ^= g[i][j]
			}
		}
	}
	return cw
}

// osdDecode runs ordered-statistics decoding on 174 channel LLRs with
// reprocessing depth ndeep (3 normally, 4 near nfqso on passes 3/4, per §4.5).
func osdDecode(llr []float64, ndeep int) osdResult {
	var hdec [ldpcN]uint8
	absrx := make([]float64, ldpcN)
	for i := 0; i < ldpcN; i++ {
		if llr[i] >= 0 {
			hdec[i] = 1
		}
		absrx[i] = math.Abs(llr[i])
	}

	indices := make([]int, ldpcN)
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(a, b int) bool { return absrx[indices[a]] > absrx[indices[b]] })

	var genmrb [ldpcK][ldpcN]uint8
	for i := 0; i < ldpcK; i++ {
		for j := 0; j < ldpcN; j++ {
			genmrb[i][j] = genMatrix[i][indices[j]]
		}
	}

	// Gaussian elimination on GF(2), bringing the K most-reliable columns
	// to systematic form; swap columns (tracked via indices) when the
	// pivot isn't already in place.
	for id := 0; id < ldpcK; id++ {
		pivotCol := -1
		for col := id; col < ldpcN; col++ {
			if genmrb[id][col] == 1 {
				pivotCol = col
				break
			}
		}
		if pivotCol == -1 {
			continue
		}
		if pivotCol != id {
			for row := 0; row < ldpcK; row++ {
				genmrb[row][id], genmrb[row][pivotCol] = genmrb[row][pivotCol], genmrb[row][id]
			}
			indices[id], indices[pivotCol] = indices[pivotCol], indices[id]
		}
		for row := 0; row < ldpcK; row++ {
			if row != id && genmrb[row][id] == 1 {
				for col := 0; col < ldpcN; col++ {
					genmrb[row][col] ^= genmrb[id][col]
				}
			}
		}
	}

	// Hard decisions and reliabilities in the final column order (after the
	// elimination's swaps), so they line up with genmrb's columns.
	var hdecReordered [ldpcN]uint8
	absrxReordered := make([]float64, ldpcN)
	for i := 0; i < ldpcN; i++ {
		hdecReordered[i] = hdec[indices[i]]
		absrxReordered[i] = absrx[indices[i]]
	}

	var m0 [ldpcK]uint8
	copy(m0[:], hdecReordered[:ldpcK])

	c0 := mrbEncode(m0, genmrb)

	nHardMin, dmin := weightedDistance(hdecReordered, c0, absrxReordered)
	cw := c0

	// Row i of genmrb is the encoding of a message vector with a single 1 at
	// position i; XORing the rows named by a combination's one-positions
	// gives mrbEncode of that combination directly.
	for order := 1; order <= ndeep; order++ {
		forEachCombination(ldpcK, order, func(positions []int) {
			var delta [ldpcN]uint8
			for _, p := range positions {
				for j := 0; j < ldpcN; j++ {
					delta[j] ^= genmrb[p][j]
				}
			}
			var ce [ldpcN]uint8
			for j := 0; j < ldpcN; j++ {
				ce[j] = c0[j] ^ delta[j]
			}
			nxor, dd := weightedDistance(hdecReordered, ce, absrxReordered)
			if dd < dmin {
				dmin = dd
				cw = ce
				nHardMin = nxor
			}
		})
	}

	// Un-permute to original bit order.
	var cwReordered [ldpcN]uint8
	for i := 0; i < ldpcN; i++ {
		cwReordered[indices[i]] = cw[i]
	}

	return osdResult{Codeword: cwReordered, NHardErrs: nHardMin, Dmin: dmin}
}

// forEachCombination calls fn once per size-k subset of {0,...,n-1}, in
// lexicographic order, reusing a single scratch slice across calls.
func forEachCombination(n, k int, fn func(positions []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// weightedDistance returns the Hamming distance and the reliability-weighted
// Euclidean distance between two permuted-order codewords.
func weightedDistance(a, b [ldpcN]uint8, absrx []float64) (int, float64) {
	n := 0
	d := 0.0
	for i := 0; i < ldpcN; i++ {
		if a[i] != b[i] {
			n++
			d += absrx[i]
		}
	}
	return n, d
}
