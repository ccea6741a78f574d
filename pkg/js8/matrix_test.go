package js8

import "testing"

func TestHexRowBits(t *testing.T) {
	// "f0" = 1111 0000 -> bits[0:4] = 1, bits[4:8] = 0.
	bits := hexRowBits("f0", 8)
	want := []uint8{1, 1, 1, 1, 0, 0, 0, 0}
	for i, b := range bits {
		if b != want[i] {
			t.Fatalf("hexRowBits(\"f0\",8)[%d] = %d, want %d", i, b, want[i])
		}
	}
}

func TestHexRowBitsTruncatesToN(t *testing.T) {
	bits := hexRowBits("ff", 3)
	if len(bits) != 3 {
		t.Fatalf("hexRowBits returned %d bits, want 3", len(bits))
	}
	for i, b := range bits {
		if b != 1 {
			t.Fatalf("hexRowBits(\"ff\",3)[%d] = %d, want 1", i, b)
		}
	}
}

func TestParityMatrixDimensions(t *testing.T) {
	if len(parityMatrix) != ldpcM {
		t.Fatalf("parityMatrix has %d rows, want %d", len(parityMatrix), ldpcM)
	}
	for i, row := range parityMatrix {
		if len(row) != ldpcK {
			t.Fatalf("parityMatrix row %d has %d columns, want %d", i, len(row), ldpcK)
		}
	}
}

func TestGenMatrixDimensions(t *testing.T) {
	if len(genMatrix) != ldpcK {
		t.Fatalf("genMatrix has %d rows, want %d", len(genMatrix), ldpcK)
	}
	for i, row := range genMatrix {
		if len(row) != ldpcN {
			t.Fatalf("genMatrix row %d has %d columns, want %d", i, len(row), ldpcN)
		}
	}
}
