package js8

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

/*
 * FFT plan cache (§4.6). Each DecodeMode owns six reusable plans; gonum's
 * fourier.FFT/CmplxFFT play the role the reference implementation's FFTW
 * plans do. Plan construction (not execution) is serialised on a
 * process-wide mutex, mirroring the reference's process-wide planner lock
 * (§5 Shared-resource policy, §9 "Plan cache").
 */

var fftPlanMu sync.Mutex

// PlanSet holds the six named FFT plans used by one submode's decoder.
type PlanSet struct {
	DS *fourier.CmplxFFT // inverse complex, size NDFFT2 (narrowband downsample inverse)
	BB *fourier.FFT      // forward real-to-complex, size NDFFT1 (wideband baseband)
	CF *fourier.CmplxFFT // forward complex, size NMAX (filter/subtract)
	CB *fourier.CmplxFFT // inverse complex, size NMAX
	SD *fourier.FFT      // forward real-to-complex, size NFFT1 (symbol spectra)
	CS *fourier.CmplxFFT // forward complex, size NDownSPS (per-symbol FFT)
}

// NewPlanSet constructs the six plans for a submode's derived sizes. Failure
// is fatal to DecodeMode construction (§7 "FFT plan creation failure").
func NewPlanSet(d Derived, ndownsps int) (ps *PlanSet, err error) {
	fftPlanMu.Lock()
	defer fftPlanMu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			ps, err = nil, fmt.Errorf("js8: FFT plan construction failed: %v", r)
		}
	}()

	return &PlanSet{
		DS: fourier.NewCmplxFFT(d.NDFFT2),
		BB: fourier.NewFFT(d.NDFFT1),
		CF: fourier.NewCmplxFFT(d.NMax),
		CB: fourier.NewCmplxFFT(d.NMax),
		SD: fourier.NewFFT(d.NFFT1),
		CS: fourier.NewCmplxFFT(ndownsps),
	}, nil
}
