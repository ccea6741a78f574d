package js8log

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/cwsl/js8core/pkg/js8"
)

func TestJournalWritesDecodedEventsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.jsonl.zst")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	j.Emit(js8.DecodeEvent{Kind: js8.EventSyncStart}) // must be skipped

	decoded := js8.DecodeEvent{Kind: js8.EventDecoded}
	decoded.Decoded.UTC = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	decoded.Decoded.Submode = js8.SubmodeFast
	decoded.Decoded.Freq = 1500.5
	decoded.Decoded.Data = "CQCQDEK1ABC0"
	decoded.Decoded.Type = 1
	decoded.Decoded.Quality = 2
	j.Emit(decoded)

	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	records := readJournal(t, path)
	if len(records) != 1 {
		t.Fatalf("journal has %d records, want 1 (sync_start must not be persisted)", len(records))
	}
	rec := records[0]
	if rec.Submode != "B" {
		t.Errorf("record submode = %q, want %q", rec.Submode, "B")
	}
	if rec.Data != "CQCQDEK1ABC0" {
		t.Errorf("record data = %q, want %q", rec.Data, "CQCQDEK1ABC0")
	}
	if rec.UTC != "2026-01-02T03:04:05Z" {
		t.Errorf("record UTC = %q, want %q", rec.UTC, "2026-01-02T03:04:05Z")
	}
}

func readJournal(t *testing.T, path string) []journalRecord {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening journal for read: %v", err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer zr.Close()

	var records []journalRecord
	scanner := bufio.NewScanner(zr)
	for scanner.Scan() {
		var rec journalRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("unmarshalling journal line: %v", err)
		}
		records = append(records, rec)
	}
	return records
}
