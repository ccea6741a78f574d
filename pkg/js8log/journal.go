// Package js8log persists a zstd-compressed, newline-delimited JSON journal
// of decode events, grounded on the teacher's use of klauspost/compress/zstd
// for its own binary PCM stream compression.
package js8log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/cwsl/js8core/pkg/js8"
)

// journalRecord is the on-disk shape of one logged decode event. Only
// Decoded events are persisted; sync-search chatter is left to live
// streaming.
type journalRecord struct {
	UTC     string  `json:"utc"`
	Submode string  `json:"submode"`
	Freq    float64 `json:"freq"`
	XDT     float64 `json:"xdt"`
	SNR     float64 `json:"snr"`
	Data    string  `json:"data"`
	Type    int     `json:"type"`
	Quality float64 `json:"quality"`
}

// Journal appends decode events to a zstd-compressed file. It implements
// js8.EventSink.
type Journal struct {
	mu   sync.Mutex
	file *os.File
	w    *zstd.Encoder
	buf  *bufio.Writer
}

// Open creates or appends to the journal file at path.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("js8log: opening %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("js8log: zstd writer: %w", err)
	}
	return &Journal{file: f, w: enc, buf: bufio.NewWriter(enc)}, nil
}

// Emit implements js8.EventSink, appending Decoded events as one JSON
// object per line.
func (j *Journal) Emit(e js8.DecodeEvent) {
	if e.Kind != js8.EventDecoded {
		return
	}
	rec := journalRecord{
		UTC:     e.Decoded.UTC.UTC().Format("2006-01-02T15:04:05Z"),
		Submode: e.Decoded.Submode.String(),
		Freq:    e.Decoded.Freq,
		XDT:     e.Decoded.XDT,
		SNR:     e.Decoded.SNR,
		Data:    e.Decoded.Data,
		Type:    e.Decoded.Type,
		Quality: e.Decoded.Quality,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.buf.Write(data)
	j.buf.WriteByte('\n')
}

// Flush forces buffered records to the compressor and the compressor to disk.
func (j *Journal) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.buf.Flush(); err != nil {
		return err
	}
	return j.w.Flush()
}

// Close flushes and closes the journal file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.buf.Flush()
	j.w.Close()
	return j.file.Close()
}
