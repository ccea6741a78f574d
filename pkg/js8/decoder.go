package js8

import (
	"log"
	"sync"
	"time"
)

/*
 * Worker dispatcher (§4.11): one semaphore-gated worker goroutine per
 * Engine, decoding submodes in the fixed order I, E, C, B, A, grounded on
 * js8_decode()'s iteration order in the reference implementation. Each
 * submode works on its own snapshot of the ring buffer, so a signal
 * subtracted in one submode's pass does not carry over to the next.
 */

// decodeOrder lists submodes in decode order (I, E, C, B, A), per §4.11.
var decodeOrder = [5]Submode{SubmodeUltra, SubmodeSlow, SubmodeTurbo, SubmodeFast, SubmodeNormal}

// MetricsSink receives per-submode decode counters. internal/metrics.Decode
// satisfies this structurally; nil leaves metrics unobserved.
type MetricsSink interface {
	ObserveCandidates(submode string, n int)
	ObserveDecode(submode string)
	ObserveCRCReject(submode string)
	ObserveBPIterations(submode string, n int)
	ObserveOSD(submode string)
	ObservePassLatency(submode string, dur time.Duration)
}

type nullMetrics struct{}

func (nullMetrics) ObserveCandidates(string, int)        {}
func (nullMetrics) ObserveDecode(string)                 {}
func (nullMetrics) ObserveCRCReject(string)              {}
func (nullMetrics) ObserveBPIterations(string, int)      {}
func (nullMetrics) ObserveOSD(string)                    {}
func (nullMetrics) ObservePassLatency(string, time.Duration) {}

// modePlans bundles one submode's precomputed FFT plans and derived sizes.
type modePlans struct {
	params  SubmodeParams
	derived Derived
	plans   *PlanSet
}

// Engine owns the ring buffer, per-submode plan sets, and the single worker
// goroutine that serialises decode passes (§5 Shared-resource policy).
type Engine struct {
	Ring    *RingBuffer
	Sink    EventSink
	Metrics MetricsSink

	modes map[Submode]*modePlans

	sem   chan struct{} // capacity 1: at most one decode pass in flight
	quit  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
	jobCh chan JobParams
}

// NewEngine constructs an Engine with plan sets for every submode named in
// enabledMask (bit int(m) per JobParams.enabled). Plan construction failure
// for any requested submode is returned to the caller (§7).
func NewEngine(ring *RingBuffer, sink EventSink, enabledMask int) (*Engine, error) {
	if sink == nil {
		sink = nullSink{}
	}
	e := &Engine{
		Ring:    ring,
		Sink:    sink,
		Metrics: nullMetrics{},
		modes:   make(map[Submode]*modePlans),
		sem:     make(chan struct{}, 1),
		quit:    make(chan struct{}),
		jobCh:   make(chan JobParams, 8),
	}
	for _, m := range decodeOrder {
		if enabledMask&(1<<uint(m)) == 0 {
			continue
		}
		params := Submodes[m]
		derived := params.Derive()
		plans, err := NewPlanSet(derived, params.NDownSPS)
		if err != nil {
			return nil, err
		}
		e.modes[m] = &modePlans{params: params, derived: derived, plans: plans}
	}
	return e, nil
}

// Start launches the worker goroutine. Submit enqueues decode passes for it
// to process in order; Stop performs a graceful shutdown.
func (e *Engine) Start() {
	e.wg.Add(1)
	go e.run()
}

// Submit enqueues a decode pass. It blocks if the queue is full, applying
// natural backpressure to the capture side.
func (e *Engine) Submit(job JobParams) {
	select {
	case e.jobCh <- job:
	case <-e.quit:
	}
}

// Stop signals the worker to exit, then waits for it (§5 "Cancellation"). A
// pass in progress is abandoned at the next submode or candidate boundary,
// without a DecodeFinished event.
func (e *Engine) Stop() {
	e.once.Do(func() { close(e.quit) })
	e.wg.Wait()
}

func (e *Engine) run() {
	defer e.wg.Done()
	for {
		select {
		case <-e.quit:
			return
		case job := <-e.jobCh:
			e.sem <- struct{}{}
			e.decodePass(job)
			<-e.sem
		}
	}
}

// decodePass runs one JobParams across every enabled submode in
// decodeOrder, emitting DecodeStarted/DecodeFinished and per-candidate events.
func (e *Engine) decodePass(job JobParams) {
	e.Sink.Emit(DecodeEvent{Kind: EventDecodeStarted, DecodeStarted: struct{ SubmodesMask int }{job.NSubmodesMask}})

	count := 0
	for _, m := range decodeOrder {
		select {
		case <-e.quit:
			return
		default:
		}
		if !job.enabled(m) {
			continue
		}
		mp, ok := e.modes[m]
		if !ok {
			log.Printf("[js8/decoder] submode %s requested but not configured, skipping", m)
			continue
		}
		count += e.decodeSubmode(job, mp)
	}

	e.Sink.Emit(DecodeEvent{Kind: EventDecodeFinished, DecodeFinished: struct{ Count int }{count}})
}

// decodeSubmode runs sync search and per-candidate decode for one submode
// window of the ring buffer; when job.NDepth > 1 it subtracts each decoded
// signal before moving to the next candidate (§4.11 steps, §4.10).
func (e *Engine) decodeSubmode(job JobParams, mp *modePlans) int {
	kpos, ksz := job.kposKsz(mp.params.Submode)
	if ksz <= 0 {
		return 0
	}
	raw := e.Ring.Snapshot(kpos, ksz)
	samples := make([]float64, len(raw))
	for i, s := range raw {
		samples[i] = float64(s)
	}

	e.Sink.Emit(DecodeEvent{Kind: EventSyncStart, SyncStart: struct {
		Pos  int
		Size int
	}{kpos, ksz}})

	spectra := BuildSymbolSpectra(samples, mp.derived, mp.plans, mp.params.NSPS)
	nfa, nfb := job.NFA, job.NFB
	if nfb <= nfa {
		nfa, nfb = 200, 3000
	}
	clippedLo, clippedHi := clipBand(nfa, nfb)
	sbase := estimateBaseline(spectra.Savg, clippedLo, clippedHi)

	candidates := searchSync(spectra, mp.params, mp.derived, nfa, nfb)
	submodeName := mp.params.Submode.String()
	e.Metrics.ObserveCandidates(submodeName, len(candidates))
	passStart := time.Now()

	baseband := basebandFromSamples(samples, mp.derived, mp.plans)

	count := 0
	for _, cand := range candidates {
		select {
		case <-e.quit:
			return count
		default:
		}

		if job.SyncStats {
			e.Sink.Emit(DecodeEvent{Kind: EventSyncState, SyncState: struct {
				Kind    SyncStateKind
				Submode Submode
				Freq    float64
				DT      float64
				Detail  string
			}{SyncCandidateState, mp.params.Submode, cand.Freq, cand.Step, ""}})
		}

		var stats candidateStats
		outcome, ok := decodeCandidate(cand, mp.params, mp.derived, mp.plans, baseband, sbase, job.NDepth, job.NApWid, job.NFQSO, &stats)
		for _, n := range stats.BPIterations {
			e.Metrics.ObserveBPIterations(submodeName, n)
		}
		for i := 0; i < stats.OSDCount; i++ {
			e.Metrics.ObserveOSD(submodeName)
		}
		for i := 0; i < stats.CRCRejects; i++ {
			e.Metrics.ObserveCRCReject(submodeName)
		}
		if !ok {
			continue
		}
		count++
		e.Metrics.ObserveDecode(submodeName)

		if job.SyncStats {
			e.Sink.Emit(DecodeEvent{Kind: EventSyncState, SyncState: struct {
				Kind    SyncStateKind
				Submode Submode
				Freq    float64
				DT      float64
				Detail  string
			}{SyncDecodedState, mp.params.Submode, outcome.Freq, outcome.XDT, outcome.Message.Payload}})
		}

		e.Sink.Emit(DecodeEvent{Kind: EventDecoded, Decoded: struct {
			UTC     time.Time
			SNR     float64
			XDT     float64
			Freq    float64
			Data    string
			Type    int
			Quality float64
			Submode Submode
		}{
			UTC:     job.DateTime,
			SNR:     outcome.SNR,
			XDT:     outcome.XDT,
			Freq:    outcome.Freq,
			Data:    outcome.Message.Payload,
			Type:    outcome.Message.FrameType,
			Quality: outcome.Quality,
			Submode: mp.params.Submode,
		}})

		if job.NDepth > 1 {
			subtractSignal(samples, outcome.Tones, outcome.Freq, outcome.XDT, mp.derived, mp.params.NSPS, mp.plans)
			baseband = basebandFromSamples(samples, mp.derived, mp.plans)
		}
	}
	e.Metrics.ObservePassLatency(submodeName, time.Since(passStart))
	return count
}

// basebandFromSamples forward-transforms the real decode window into a
// complex baseband buffer, used for both sync-adjacent work and subtraction.
// The BB plan is sized NDFFT1, which pads slightly past NMAX; samples beyond
// the real decode window are zero, matching the legacy zero-padded real input.
func basebandFromSamples(samples []float64, d Derived, plans *PlanSet) []complex128 {
	padded := make([]float64, d.NDFFT1)
	copy(padded, samples)
	return plans.BB.Coefficients(nil, padded)
}
