package js8

import "math"

/*
 * Belief-propagation decoder for the (174,87) LDPC code (§4.4).
 * Tanner graph neighbour tables are ldpcMn/ldpcNm (ldpc_tables.go).
 */

// bpResult is the outcome of one BP decode attempt.
type bpResult struct {
	Codeword   [ldpcN]uint8 // full 174-bit hard-decision codeword
	OK         bool         // syndrome fully satisfied
	NErr       int          // sign mismatches between decoded bits and llr (only valid if OK)
	Iterations int          // iterations run up to success; maxIter whenever OK is false, including after early termination
}

// bpDecode runs the sum-product belief-propagation decoder described in §4.4
// for up to maxIter iterations. It returns the best (lowest check-failure)
// codeword seen; OK is true only if a zero-syndrome codeword was found.
func bpDecode(llr []float64, maxIter int) bpResult {
	var tov [ldpcN][3]float64 // check -> bit messages
	var toc [ldpcM][7]float64 // bit -> check messages

	var best [ldpcN]uint8
	bestChecks := ldpcM + 1
	noImprove := 0

	for iter := 0; iter < maxIter; iter++ {
		var cw [ldpcN]uint8
		for i := 0; i < ldpcN; i++ {
			zn := llr[i] + tov[i][0] + tov[i][1] + tov[i][2]
			if zn > 0 {
				cw[i] = 1
			}
		}

		ncheck := 0
		for m := 0; m < ldpcM; m++ {
			var x uint8
			row := ldpcNm[m]
			for j := 0; j < row.Valid; j++ {
				x ^= cw[row.Bits[j]]
			}
			if x != 0 {
				ncheck++
			}
		}

		if ncheck < bestChecks {
			bestChecks = ncheck
			best = cw
			noImprove = 0
		} else {
			noImprove++
		}

		if ncheck == 0 {
			return bpResult{Codeword: cw, OK: true, NErr: countSignMismatches(cw, llr), Iterations: iter + 1}
		}

		// Early termination (§4.4 step 3).
		if noImprove >= 5 && iter >= 10 && ncheck > 15 {
			break
		}

		// Bit -> check messages: toc[m][nIdx] = tanh(-Tnm/2).
		for m := 0; m < ldpcM; m++ {
			row := ldpcNm[m]
			for nIdx := 0; nIdx < row.Valid; nIdx++ {
				n := row.Bits[nIdx]
				tnm := llr[n]
				for mIdx := 0; mIdx < 3; mIdx++ {
					if ldpcMn[n][mIdx] != m {
						tnm += tov[n][mIdx]
					}
				}
				toc[m][nIdx] = math.Tanh(-tnm / 2.0)
			}
		}

		// Check -> bit messages: tov[n][mIdx] = -2*atanh(product of other toc in that check).
		for n := 0; n < ldpcN; n++ {
			for mIdx := 0; mIdx < 3; mIdx++ {
				m := ldpcMn[n][mIdx]
				row := ldpcNm[m]
				prod := 1.0
				for nIdx := 0; nIdx < row.Valid; nIdx++ {
					if row.Bits[nIdx] != n {
						prod *= toc[m][nIdx]
					}
				}
				tov[n][mIdx] = -2.0 * math.Atanh(clampUnit(prod))
			}
		}
	}

	return bpResult{Codeword: best, OK: false, NErr: bestChecks, Iterations: maxIter}
}

// clampUnit keeps atanh's argument strictly inside (-1, 1) to avoid +/-Inf
// from floating-point rounding.
func clampUnit(x float64) float64 {
	const eps = 1e-9
	if x > 1-eps {
		return 1 - eps
	}
	if x < -1+eps {
		return -1 + eps
	}
	return x
}

// countSignMismatches counts bits whose hard decision disagrees with the
// sign of the channel LLR (used as the decoder's reported error count).
func countSignMismatches(cw [ldpcN]uint8, llr []float64) int {
	n := 0
	for i, b := range cw {
		hard := 0
		if b != 0 {
			hard = 1
		}
		soft := 0
		if llr[i] > 0 {
			soft = 1
		}
		if hard != soft {
			n++
		}
	}
	return n
}

// messageBits extracts the 87 systematic message bits (indices M..N-1) from
// a full 174-bit codeword.
func messageBits(cw [ldpcN]uint8) [ldpcK]uint8 {
	var out [ldpcK]uint8
	copy(out[:], cw[ldpcM:])
	return out
}
