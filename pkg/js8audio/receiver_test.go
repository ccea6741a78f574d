package js8audio

import "testing"

func TestPCM16FromBytesLittleEndian(t *testing.T) {
	// 0x0001 -> 1, 0xFFFF -> -1 (two's complement)
	b := []byte{0x01, 0x00, 0xFF, 0xFF}
	got := pcm16FromBytes(b)
	want := []int16{1, -1}
	if len(got) != len(want) {
		t.Fatalf("pcm16FromBytes returned %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pcm16FromBytes[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPCM16FromBytesEmpty(t *testing.T) {
	if got := pcm16FromBytes(nil); len(got) != 0 {
		t.Errorf("pcm16FromBytes(nil) returned %d samples, want 0", len(got))
	}
}
