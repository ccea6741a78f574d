package js8

import (
	"log"
	"math"
)

/*
 * 49-tap FIR decimator, 48 kHz -> 12 kHz (§4.1).
 * Coefficients and structure grounded on Detector::Filter (Detector.hpp/cpp).
 */

const (
	decimatorTaps  = 49
	decimatorRatio = 4
)

// ChannelMode selects which channel(s) of a stereo capture feed the
// decimator when the host offers more than one (§4.1).
type ChannelMode int

const (
	ChannelMono  ChannelMode = iota // single-channel capture, no de-interleave
	ChannelLeft                     // left channel of a stereo capture
	ChannelRight                    // right channel of a stereo capture
	ChannelBoth                     // both (spec: "for both use left")
)

// FrameBytes returns the raw-PCM frame size in bytes for a channel mode:
// 2 for mono, 4 for stereo (§6 "Input sample format").
func FrameBytes(mode ChannelMode) int {
	if mode == ChannelMono {
		return 2
	}
	return 4
}

// ValidateFrameBytes rejects a raw PCM write whose length isn't a multiple
// of the channel frame size, per §4.1 Failure / §6 / §7 "Torn-frame write":
// a contract violation by the host. The usable prefix is returned along
// with whether the whole buffer was accepted.
func ValidateFrameBytes(b []byte, mode ChannelMode) (usable []byte, ok bool) {
	fs := FrameBytes(mode)
	if len(b)%fs == 0 {
		return b, true
	}
	n := len(b) - len(b)%fs
	log.Printf("[js8/decimator] rejected torn write: %d bytes not a multiple of frame size %d", len(b), fs)
	return b[:n], false
}

// SelectChannel extracts the samples the decimator should see from a raw
// int16 PCM buffer according to mode. For ChannelMono, samples is returned
// unchanged; for stereo modes samples is interleaved L,R,L,R,...
func SelectChannel(samples []int16, mode ChannelMode) []int16 {
	if mode == ChannelMono {
		return samples
	}
	out := make([]int16, len(samples)/2)
	offset := 0
	if mode == ChannelRight {
		offset = 1
	}
	for i := range out {
		out[i] = samples[2*i+offset]
	}
	return out
}

// lowpassCoeffs is the 49-tap linear-phase lowpass (fc~4.5kHz, fstop~6kHz,
// 1dB ripple, 40dB stopband) used to decimate 48kHz to 12kHz.
var lowpassCoeffs = [decimatorTaps]float64{
	0.000861074040, 0.010051920210, 0.010161983649, 0.011363155076,
	0.008706594219, 0.002613872664, -0.005202883094, -0.011720748164,
	-0.013752163325, -0.009431602741, 0.000539063909, 0.012636767098,
	0.021494659597, 0.021951235065, 0.011564169382, -0.007656470131,
	-0.028965787341, -0.042637874109, -0.039203309748, -0.013153301537,
	0.034320769178, 0.094717832646, 0.154224604789, 0.197758325022,
	0.213715139513, 0.197758325022, 0.154224604789, 0.094717832646,
	0.034320769178, -0.013153301537, -0.039203309748, -0.042637874109,
	-0.028965787341, -0.007656470131, 0.011564169382, 0.021951235065,
	0.021494659597, 0.012636767098, 0.000539063909, -0.009431602741,
	-0.013752163325, -0.011720748164, -0.005202883094, 0.002613872664,
	0.008706594219, 0.011363155076, 0.010161983649, 0.010051920210,
	0.000861074040,
}

// Decimator holds the sliding FIR state across successive DownSample calls.
type Decimator struct {
	state [decimatorTaps]float64
}

// NewDecimator returns a zero-initialised decimator.
func NewDecimator() *Decimator {
	return &Decimator{}
}

// DownSample shifts in exactly decimatorRatio (4) new 48kHz samples and
// returns one decimated 12kHz int16 sample (§4.1 Implementation contract).
func (d *Decimator) DownSample(samples [decimatorRatio]int16) int16 {
	copy(d.state[:decimatorTaps-decimatorRatio], d.state[decimatorRatio:])
	for i, s := range samples {
		d.state[decimatorTaps-decimatorRatio+i] = float64(s)
	}

	var acc float64
	for i, c := range lowpassCoeffs {
		acc += c * d.state[i]
	}
	return int16(math.Round(acc))
}

// DownSampleBatch decimates a full batch of 48kHz samples (length must be a
// multiple of decimatorRatio, enforced by the caller per §4.1 torn-frame
// rejection) into 12kHz samples.
func (d *Decimator) DownSampleBatch(samples []int16) []int16 {
	out := make([]int16, 0, len(samples)/decimatorRatio)
	var group [decimatorRatio]int16
	for i := 0; i+decimatorRatio <= len(samples); i += decimatorRatio {
		copy(group[:], samples[i:i+decimatorRatio])
		out = append(out, d.DownSample(group))
	}
	return out
}
