package js8

import "math"

/*
 * Per-candidate decoder (§4.9), grounded on js8dec() in the reference
 * implementation: narrowband downsample, DT/frequency refinement,
 * per-symbol FFT, Costas quality gate, LLR extraction, four-pass
 * BP+OSD decode, and the acceptance test.
 */

// DecodeOutcome is one successful decode from a single candidate (§3 "Decoded
// artifact", §3 "Decode event" Decoded variant).
type DecodeOutcome struct {
	Message  DecodedMessage
	Freq     float64
	XDT      float64
	SNR      float64
	Pass     int
	HardErrs int
	Quality  float64 // normalised confidence in [0,1], from the Costas quality gate count
	Tones    [nn]int
}

// candidateState carries the narrowband-downsampled complex samples and the
// per-symbol tone magnitudes used across refinement and LLR extraction.
type candidateState struct {
	cd0 []complex128 // narrowband downsampled baseband
	s2  [8][nn]float64
}

// candidateStats accumulates per-candidate decode diagnostics for
// internal/metrics' Decode collector, gathered across every pass attempted.
type candidateStats struct {
	BPIterations []int // one entry per BP invocation
	OSDCount     int   // OSD fallback invocations
	CRCRejects   int   // passes that reached a codeword but failed CRC
}

// decodeCandidate runs §4.9 steps 1-10 for one sync candidate. ok is false
// if the Costas quality gate rejects the candidate or no pass accepts.
// stats, if non-nil, is populated with per-pass diagnostics regardless of
// the final outcome.
func decodeCandidate(cand SyncCandidate, params SubmodeParams, derived Derived, plans *PlanSet,
	baseband []complex128, sbase []float64, ndepth, napwid, nfqso int, stats *candidateStats) (DecodeOutcome, bool) {

	f1 := cand.Freq
	xdt := cand.Step

	xbase := math.Pow(10, 0.1*(sbaseAt(sbase, f1, derived.DF)-params.BaseSub))

	st := narrowbandDownsample(baseband, f1, derived, params.NDD, plans)

	// fs2 is the narrowband downsample's own sample rate (12000/NDOWN,
	// NDOWN=NSPS/NDownSPS per mode), distinct from the fixed 48k->12k
	// front-end decimation ratio even though both happen to be 4 in
	// some submodes.
	ndown := params.NSPS / params.NDownSPS
	fs2 := float64(rxSampleRate) / float64(ndown)

	// DT refinement: search quarter-symbol steps around the nominal start.
	i0 := int(math.Round((xdt + params.AStart) * fs2))
	best := i0
	bestSync := math.Inf(-1)
	nq := params.NDownSPS / 4
	if nq < 1 {
		nq = 1
	}
	for idt := i0 - nq; idt <= i0+nq; idt++ {
		s := syncPowerAt(st, params, idt, 0)
		if s > bestSync {
			bestSync = s
			best = idt
		}
	}
	xdt2 := float64(best) / fs2

	// Frequency refinement: +/-2.5 Hz in 0.5 Hz steps.
	bestDelf := 0.0
	bestSync = math.Inf(-1)
	for delf := -2.5; delf <= 2.5+1e-9; delf += 0.5 {
		s := syncPowerAt(st, params, best, delf)
		if s > bestSync {
			bestSync = s
			bestDelf = delf
		}
	}
	rotatePhase(st.cd0, -bestDelf, fs2)
	xdt = xdt2
	f1 += bestDelf

	buildSymbolFFTs(st, best, params.NDownSPS, plans)

	nsync := costasQualityGate(st, params.Costas.Costas())
	if nsync <= 6 {
		return DecodeOutcome{}, false
	}

	llr0, llr1 := extractLLR(st)

	npasses := calculateNPass(ndepth)
	for pass := 1; pass <= npasses; pass++ {
		llr := selectPassLLR(llr0, llr1, pass)

		bp := bpDecode(llr, bpMaxIterations)
		if stats != nil {
			stats.BPIterations = append(stats.BPIterations, bp.Iterations)
		}
		var codeword [ldpcN]uint8
		hardErrs := 0
		ok := bp.OK
		if ok {
			codeword = bp.Codeword
			hardErrs = bp.NErr
		} else if ndepth >= 3 {
			ndeep := 3
			if math.Abs(float64(nfqso)-f1) <= float64(napwid) && (pass == 3 || pass == 4) {
				ndeep = 4
			}
			if stats != nil {
				stats.OSDCount++
			}
			osd := osdDecode(llr, ndeep)
			codeword = osd.Codeword
			hardErrs = osd.NHardErrs
			ok = true // OSD always returns a candidate; acceptance test gates it below
			_ = osd.Dmin
		}
		if !ok {
			continue
		}

		if !acceptable(cand.Sync, hardErrs, pass) {
			continue
		}

		msgBits := messageBits(codeword)
		msg, crcOK := ExtractMessage(msgBits)
		if !crcOK {
			if stats != nil {
				stats.CRCRejects++
			}
			continue
		}

		tones := buildToneSequence(params.Costas.Costas(), msgBits)
		snr := computeSNR(st, tones, xbase)

		return DecodeOutcome{
			Message:  msg,
			Freq:     f1,
			XDT:      xdt,
			SNR:      snr,
			Pass:     pass,
			HardErrs: hardErrs,
			Quality:  float64(nsync) / float64(costasBlocks*costasLen),
			Tones:    tones,
		}, true
	}

	return DecodeOutcome{}, false
}

// calculateNPass maps ndepth to a pass count (§6 "Job parameters").
func calculateNPass(ndepth int) int {
	switch {
	case ndepth <= 1:
		return 1
	case ndepth == 2:
		return 3
	default:
		return 4
	}
}

// acceptable implements §4.9 step 9's acceptance test.
func acceptable(sync float64, nharderrors, pass int) bool {
	if nharderrors < 0 {
		return false
	}
	if sync < 2 && nharderrors > 35 {
		return false
	}
	if pass > 2 && nharderrors > 39 {
		return false
	}
	if pass == 4 && nharderrors > 30 {
		return false
	}
	return true
}

// selectPassLLR returns the LLR vector for one of the four decode passes
// (§4.9 step 8).
func selectPassLLR(llr0, llr1 []float64, pass int) []float64 {
	out := make([]float64, len(llr0))
	switch pass {
	case 1:
		copy(out, llr0)
	case 2:
		copy(out, llr1)
	case 3:
		copy(out, llr0)
		for i := 0; i < 24 && i < len(out); i++ {
			out[i] = 0
		}
	case 4:
		copy(out, llr0)
		for i := 24; i < 48 && i < len(out); i++ {
			out[i] = 0
		}
	}
	return out
}

func sbaseAt(sbase []float64, freq, df float64) float64 {
	idx := int(math.Round(freq / df))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sbase) {
		idx = len(sbase) - 1
	}
	if len(sbase) == 0 {
		return 0
	}
	return sbase[idx]
}

// narrowbandDownsample extracts the baseband FFT bins around f1, tapers and
// recentres them, and inverse-FFTs to a narrowband complex baseband (§4.9
// step 2).
func narrowbandDownsample(baseband []complex128, f1 float64, d Derived, ndd int, plans *PlanSet) *candidateState {
	n := d.NDFFT2
	buf := make([]complex128, n)
	baud := d.Baud
	dfBase := float64(rxSampleRate) / float64(d.NDFFT1) // bin width of the BB plan, distinct from d.DF (NFFT1-based)
	lo := int((f1 - 1.5*baud) / dfBase)
	hi := int((f1 + 8.5*baud) / dfBase)
	width := hi - lo
	if width <= 0 {
		width = 1
	}

	for i := 0; i < width && i < n; i++ {
		src := lo + i
		if src >= 0 && src < len(baseband) {
			buf[i] = baseband[src]
		}
	}
	applyEdgeTaper(buf, width, ndd)

	out := plans.DS.Sequence(nil, buf)
	norm := 1.0 / math.Sqrt(float64(d.NDFFT1)*float64(d.NDFFT2))
	for i := range out {
		out[i] *= complex(norm, 0)
	}
	return &candidateState{cd0: out}
}

// applyEdgeTaper applies head/tail cosine tapers of length ndd+1 to the
// first `width` samples of buf (§4.9 step 2).
func applyEdgeTaper(buf []complex128, width, ndd int) {
	if ndd <= 0 || width == 0 {
		return
	}
	taperLen := ndd + 1
	if taperLen > width {
		taperLen = width
	}
	for i := 0; i < taperLen; i++ {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(taperLen)))
		buf[i] *= complex(w, 0)
		buf[width-1-i] *= complex(w, 0)
	}
}

// syncPowerAt computes the Costas-matched sync power at a trial (idt, delf)
// pair against the narrowband downsample, grounded on syncjs8d()/csyncs(): at
// each Costas symbol, conjugate-multiply against both the trial frequency
// derotation and the expected tone's own reference carrier before
// accumulating, so the result actually depends on which tone the Costas
// array predicts for that symbol.
func syncPowerAt(st *candidateState, params SubmodeParams, idt int, delf float64) float64 {
	n := len(st.cd0)
	if n == 0 {
		return math.Inf(-1)
	}
	fs2 := float64(rxSampleRate) / float64(params.NSPS/params.NDownSPS)
	costas := params.Costas.Costas()
	power := 0.0
	for p := 0; p < costasBlocks; p++ {
		for s := 0; s < costasLen; s++ {
			offset := idt + (p*36+s)*params.NDownSPS
			if offset < 0 || offset+params.NDownSPS > n {
				continue
			}
			tone := costas[p][s]
			var acc complex128
			for k := 0; k < params.NDownSPS; k++ {
				derotate := 2 * math.Pi * (delf / fs2) * float64(k)
				toneRef := 2 * math.Pi * float64(tone) * float64(k) / float64(params.NDownSPS)
				phase := derotate + toneRef
				acc += st.cd0[offset+k] * complex(math.Cos(phase), -math.Sin(phase))
			}
			power += real(acc)*real(acc) + imag(acc)*imag(acc)
		}
	}
	return power
}

// rotatePhase rotates cd0 in place by the complex phasor of delf Hz at
// sample rate fs (multiplies sample i by exp(j*2*pi*delf*i/fs)); the caller
// passes -bestDelf to remove a +bestDelf offset (§4.9 step 4).
func rotatePhase(cd0 []complex128, delf, fs float64) {
	for i := range cd0 {
		phase := 2 * math.Pi * (delf / fs) * float64(i)
		cd0[i] *= complex(math.Cos(phase), math.Sin(phase))
	}
}

// buildSymbolFFTs computes the 79 per-symbol FFTs and stores the first 8
// tone magnitudes in st.s2 (§4.9 step 5).
func buildSymbolFFTs(st *candidateState, ibest, ndownsps int, plans *PlanSet) {
	seg := make([]complex128, ndownsps)
	for k := 0; k < nn; k++ {
		start := ibest + k*ndownsps
		for i := 0; i < ndownsps; i++ {
			if start+i >= 0 && start+i < len(st.cd0) {
				seg[i] = st.cd0[start+i]
			} else {
				seg[i] = 0
			}
		}
		coeffs := plans.CS.Coefficients(nil, seg)
		for row := 0; row < 8 && row < len(coeffs); row++ {
			st.s2[row][k] = math.Hypot(real(coeffs[row]), imag(coeffs[row]))
		}
	}
}

// costasQualityGate counts, over the three Costas blocks, how many columns
// have their maximum magnitude in the expected tone row (§4.9 step 6).
func costasQualityGate(st *candidateState, costas [costasBlocks][costasLen]int) int {
	nsync := 0
	blockStart := [costasBlocks]int{0, 36, 72}
	for p := 0; p < costasBlocks; p++ {
		for n := 0; n < costasLen; n++ {
			col := blockStart[p] + n
			expected := costas[p][n]
			maxRow, maxVal := 0, -math.MaxFloat64
			for row := 0; row < 8; row++ {
				if st.s2[row][col] > maxVal {
					maxVal = st.s2[row][col]
					maxRow = row
				}
			}
			if maxRow == expected {
				nsync++
			}
		}
	}
	return nsync
}

// dataColumns are the 58 data-symbol column indices (Costas columns dropped).
var dataColumns = buildDataColumns()

func buildDataColumns() [58]int {
	var cols [58]int
	n := 0
	for i := 7; i < 36; i++ {
		cols[n] = i
		n++
	}
	for i := 43; i < 72; i++ {
		cols[n] = i
		n++
	}
	return cols
}

// extractLLR computes the two LLR sets over the 174 codeword bit positions
// (58 data symbols x 3 bits: the 29 parity-block tones give bits 0..86, the
// 29 message-block tones bits 87..173) following §4.9 step 7: normalise by
// the median of all 8x58 data magnitudes, then combine 8-FSK tone
// magnitudes into bit metrics via OR-max.
func extractLLR(st *candidateState) ([]float64, []float64) {
	mags := make([]float64, 0, 8*58)
	for _, col := range dataColumns {
		for row := 0; row < 8; row++ {
			mags = append(mags, st.s2[row][col])
		}
	}
	median := medianOf(append([]float64(nil), mags...))
	if median == 0 {
		median = 1
	}

	llr0 := make([]float64, 0, ldpcN-ldpcK+ldpcK) // 174 codeword bits' worth of metrics, 3 bits/symbol * 29 symbols per block * 2 blocks
	llr1 := make([]float64, 0, cap(llr0))

	for _, col := range dataColumns {
		var mag [8]float64
		var logMag [8]float64
		for row := 0; row < 8; row++ {
			m := st.s2[row][col] / median
			mag[row] = m
			logMag[row] = math.Log(m + 1e-32)
		}
		for bit := 0; bit < 3; bit++ {
			llr0 = append(llr0, bitMetric(mag, bit))
			llr1 = append(llr1, bitMetric(logMag, bit))
		}
	}

	normalizeLLR(llr0)
	normalizeLLR(llr1)
	return llr0, llr1
}

// bitMetric computes the OR-max 8-FSK soft-bit LLR for one of the three bits
// of a Gray-free 3-bit tone index: max magnitude among tones whose bit is 1
// minus max magnitude among tones whose bit is 0, so a positive result means
// bit=1 is more likely, matching bpDecode's hard-decision convention
// (zn>0 -> cw[i]=1).
func bitMetric(mag [8]float64, bit int) float64 {
	max0, max1 := -math.MaxFloat64, -math.MaxFloat64
	for tone := 0; tone < 8; tone++ {
		b := (tone >> (2 - bit)) & 1
		if b == 0 {
			if mag[tone] > max0 {
				max0 = mag[tone]
			}
		} else {
			if mag[tone] > max1 {
				max1 = mag[tone]
			}
		}
	}
	return max1 - max0
}

// normalizeLLR standardises llr to zero mean and variance 2.83^2 (§4.9 step 7).
func normalizeLLR(llr []float64) {
	if len(llr) == 0 {
		return
	}
	mean := 0.0
	for _, v := range llr {
		mean += v
	}
	mean /= float64(len(llr))

	variance := 0.0
	for _, v := range llr {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(llr))
	if variance == 0 {
		return
	}
	const target = 2.83 * 2.83
	scale := math.Sqrt(target / variance)
	for i := range llr {
		llr[i] = (llr[i] - mean) * scale
	}
}

func medianOf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sortFloat64s(v)
	n := len(v)
	if n%2 == 1 {
		return v[n/2]
	}
	return (v[n/2-1] + v[n/2]) / 2
}

func sortFloat64s(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}

// computeSNR implements the SNR formula in §4.9 step 10, including the -60dB
// floor deviation from the original Fortran (see SPEC_FULL.md).
func computeSNR(st *candidateState, tones [nn]int, xbase float64) float64 {
	xsig := 0.0
	for k, t := range tones {
		v := st.s2[t][k]
		xsig += v * v
	}
	ratio := xsig/xbase - 1
	if ratio < 1.259e-10 {
		ratio = 1.259e-10
	}
	snr := 10*math.Log10(ratio) - 32
	if snr < -60 {
		snr = -60
	}
	return snr
}
