package js8

import "time"

/*
 * Decode event stream (§9 "Event channel"): a tagged union emitted as the
 * decoder progresses through sync search and per-candidate decode, and the
 * sink interface consumers implement to receive it.
 */

// EventKind tags which variant a DecodeEvent carries.
type EventKind int

const (
	EventSyncStart EventKind = iota
	EventSyncState
	EventDecoded
	EventDecodeStarted
	EventDecodeFinished
)

// SyncStateKind distinguishes a sync-search hit that never reached CRC
// acceptance from one that did.
type SyncStateKind int

const (
	SyncCandidateState SyncStateKind = iota
	SyncDecodedState
)

// DecodeEvent is the tagged union described in §9; exactly one of the
// typed fields is meaningful, selected by Kind.
type DecodeEvent struct {
	Kind EventKind

	SyncStart struct {
		Pos  int
		Size int
	}

	SyncState struct {
		Kind    SyncStateKind
		Submode Submode
		Freq    float64
		DT      float64
		Detail  string
	}

	Decoded struct {
		UTC     time.Time
		SNR     float64
		XDT     float64
		Freq    float64
		Data    string
		Type    int
		Quality float64 // normalised confidence in [0,1]; see DecodeOutcome.Quality
		Submode Submode
	}

	DecodeStarted struct {
		SubmodesMask int
	}

	DecodeFinished struct {
		Count int
	}
}

// EventSink receives decode events as they're produced. Implementations
// must not block the decode worker; buffer internally if needed.
type EventSink interface {
	Emit(DecodeEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(DecodeEvent)

func (f EventSinkFunc) Emit(e DecodeEvent) { f(e) }

// nullSink discards every event; used when no sink is configured.
type nullSink struct{}

func (nullSink) Emit(DecodeEvent) {}
