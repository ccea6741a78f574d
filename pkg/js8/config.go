package js8

import "time"

/*
 * Job parameters (§6 "Job parameters"), a flat value type mirroring the
 * dec_data-shaped contract passed from the capture side to each decode
 * worker invocation.
 */

// JobParams is the per-decode-pass request handed to the worker dispatcher.
// One JobParams snapshot serves every submode iterated in a single pass;
// KposX/KszX give each submode's ring-buffer window since their NTXDUR
// differs.
type JobParams struct {
	NUTC  int // hhmm of the period this decode covers
	NFQSO int // operator's dial frequency offset, Hz
	NFA   int // search band low edge, Hz
	NFB   int // search band high edge, Hz

	SyncStats bool // if true, emit SyncState events for every candidate

	Kin int // ring-buffer write cursor at dispatch time

	KposA, KszA int
	KposB, KszB int
	KposC, KszC int
	KposE, KszE int
	KposI, KszI int

	NSubmodesMask int // bitmask with bit int(m) set for each Submode m to decode
	NDepth        int // decode depth: 1 = one BP pass; 2 = three BP passes, no OSD; >= 3 = four passes with OSD fallback
	NApWid        int // a-priori frequency window half-width, Hz

	DateTime time.Time
	MyCall   string
}

// kposKsz returns the ring-buffer window configured for one submode.
func (j JobParams) kposKsz(m Submode) (kpos, ksz int) {
	switch m {
	case SubmodeNormal:
		return j.KposA, j.KszA
	case SubmodeFast:
		return j.KposB, j.KszB
	case SubmodeTurbo:
		return j.KposC, j.KszC
	case SubmodeSlow:
		return j.KposE, j.KszE
	case SubmodeUltra:
		return j.KposI, j.KszI
	default:
		return 0, 0
	}
}

// enabled reports whether m is set in the request's submode bitmask. Each
// submode occupies bit position int(m), independent of its protocol Tag
// value (which identifies the submode on the wire, not in this mask).
func (j JobParams) enabled(m Submode) bool {
	return j.NSubmodesMask&(1<<uint(m)) != 0
}
