package js8

import (
	"testing"
	"time"
)

func TestRingBufferKinInvariant(t *testing.T) {
	rb := NewRingBuffer(time.Second)
	if rb.Kin() != 0 {
		t.Fatalf("fresh RingBuffer Kin() = %d, want 0", rb.Kin())
	}

	rb.Write(make([]int16, 100))
	if rb.Kin() != 100 {
		t.Fatalf("Kin() = %d, want 100", rb.Kin())
	}
	rb.Write(make([]int16, 50))
	if rb.Kin() != 150 {
		t.Fatalf("Kin() = %d, want 150", rb.Kin())
	}

	if rb.Kin() < 0 || rb.Kin() > rb.Capacity() {
		t.Fatalf("Kin() = %d violates 0 <= kin <= capacity (%d)", rb.Kin(), rb.Capacity())
	}
}

func TestRingBufferDropsSamplesPastCapacity(t *testing.T) {
	rb := NewRingBuffer(time.Second)
	over := make([]int16, rb.Capacity()+10)
	for i := range over {
		over[i] = int16(i % 1000)
	}
	rb.Write(over)
	if rb.Kin() != rb.Capacity() {
		t.Fatalf("Kin() = %d after an over-capacity write, want exactly capacity %d", rb.Kin(), rb.Capacity())
	}

	// A buffer already at capacity must silently drop further writes rather
	// than panic or wrap the cursor.
	rb.Write(make([]int16, 5))
	if rb.Kin() != rb.Capacity() {
		t.Fatalf("Kin() = %d after writing to a full buffer, want unchanged capacity %d", rb.Kin(), rb.Capacity())
	}
}

func TestRingBufferSnapshotWraparound(t *testing.T) {
	rb := NewRingBuffer(time.Second)
	capacity := rb.Capacity()

	rb.Mu.Lock()
	for i := 0; i < capacity; i++ {
		rb.data[i] = int16(i % 7)
	}
	rb.Mu.Unlock()

	kpos := capacity - 5
	ksz := 10
	out := rb.Snapshot(kpos, ksz)
	if len(out) != ksz {
		t.Fatalf("Snapshot returned %d samples, want %d", len(out), ksz)
	}
	for i := 0; i < ksz; i++ {
		want := int16((kpos + i) % capacity % 7)
		if out[i] != want {
			t.Fatalf("Snapshot[%d] = %d, want %d (wraparound mismatch)", i, out[i], want)
		}
	}
}

func TestRingBufferSnapshotEmptyOnZeroSize(t *testing.T) {
	rb := NewRingBuffer(time.Second)
	out := rb.Snapshot(0, 0)
	if len(out) != 0 {
		t.Fatalf("Snapshot(0,0) returned %d samples, want 0", len(out))
	}
}

func TestRingBufferRolloverResetsKin(t *testing.T) {
	rb := NewRingBuffer(4 * time.Second)

	seconds := []int64{1, 3, 1} // third call simulates the period wrapping around
	call := 0
	rb.now = func() time.Time {
		s := seconds[call]
		if call < len(seconds)-1 {
			call++
		}
		return time.UnixMilli(s * 1000)
	}

	rb.Write(make([]int16, 10)) // ns=1
	rb.Write(make([]int16, 10)) // ns=3, still increasing
	if rb.Kin() != 20 {
		t.Fatalf("Kin() = %d before rollover, want 20", rb.Kin())
	}

	rb.Write(make([]int16, 5)) // ns=1 < previous ns=3: rollover
	if rb.Kin() != 5 {
		t.Fatalf("Kin() = %d after rollover, want 5 (buffer restarted from 0)", rb.Kin())
	}
}

func TestRotateInt16Identity(t *testing.T) {
	buf := []int16{1, 2, 3, 4, 5}
	rotateInt16(buf, 0)
	want := []int16{1, 2, 3, 4, 5}
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("rotateInt16(buf,0) changed the buffer: got %v, want %v", buf, want)
		}
	}
}

func TestRotateInt16Forward(t *testing.T) {
	buf := []int16{1, 2, 3, 4, 5}
	rotateInt16(buf, 2)
	want := []int16{4, 5, 1, 2, 3}
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("rotateInt16(buf,2) = %v, want %v", buf, want)
		}
	}
}
