package js8

import "math"

/*
 * Band-limited signal subtraction (§4.10), grounded on subtractjs8() in the
 * reference implementation: synthesise the decoded tone sequence at its
 * recovered frequency and DT, align it against the wideband baseband, and
 * subtract its filtered contribution so slower submodes can find signals
 * masked by an already-decoded faster one.
 */

// subtractSignal removes the contribution of one decoded candidate from the
// wideband 12kHz real sample buffer dd, in place (§4.10). The reference
// tone sequence is synthesised at the submode's full (not downsampled)
// samples/symbol; nsps here must be SubmodeParams.NSPS.
func subtractSignal(dd []float64, tones [nn]int, freq, dt float64, d Derived, nsps int, plans *PlanSet) {
	cref := synthesizeReference(tones, freq, dt, d, nsps)

	n := len(dd)
	cfilt := make([]complex128, n)

	i0 := int(math.Round(dt * rxSampleRate))
	for i := range cref {
		idx := i0 + i
		if idx < 0 || idx >= n {
			continue
		}
		cfilt[idx] = complex(dd[idx], 0) * cmplxConj(cref[i])
	}

	spec := plans.CF.Coefficients(nil, cfilt)
	lowpassFilterSpectrum(spec, d)
	filtered := plans.CB.Sequence(nil, spec)

	norm := 1.0 / float64(n)
	for i := range dd {
		idx := i - i0
		if idx < 0 || idx >= len(cref) {
			continue
		}
		dd[i] -= 2 * real(filtered[i]*cref[idx]) * norm
	}
}

func cmplxConj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

// synthesizeReference builds the complex baseband tone sequence for the 79
// symbols of a decoded transmission at the given frequency offset.
func synthesizeReference(tones [nn]int, freq float64, dt float64, d Derived, nsps int) []complex128 {
	baud := d.Baud
	out := make([]complex128, nn*nsps)
	phase := 0.0
	idx := 0
	for _, tone := range tones {
		toneFreq := freq + float64(tone)*baud
		step := 2 * math.Pi * toneFreq / float64(rxSampleRate)
		for i := 0; i < nsps; i++ {
			out[idx] = complex(math.Cos(phase), math.Sin(phase))
			phase += step
			idx++
		}
	}
	return out
}

// lowpassFilterSpectrum zeroes spectral bins outside a narrow band around DC
// in the frequency domain, matching the reference's post-multiply filter
// before the inverse transform.
func lowpassFilterSpectrum(spec []complex128, d Derived) {
	n := len(spec)
	dfFull := float64(rxSampleRate) / float64(n) // bin width of the CF plan, sized to the full sample buffer
	cutoff := int(1.5 * d.Baud / dfFull)
	if cutoff <= 0 || cutoff >= n/2 {
		return
	}
	for i := cutoff; i < n-cutoff; i++ {
		spec[i] = 0
	}
}
