package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwsl/js8core/pkg/js8"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("default sample rate = %d, want 48000", cfg.Audio.SampleRate)
	}
	if cfg.Audio.ChannelMode() != js8.ChannelMono {
		t.Errorf("default channel mode = %v, want ChannelMono", cfg.Audio.ChannelMode())
	}
	if cfg.Search.Depth != 3 {
		t.Errorf("default search depth = %d, want 3", cfg.Search.Depth)
	}
}

func TestChannelModeResolution(t *testing.T) {
	tests := map[string]js8.ChannelMode{
		"":        js8.ChannelMono,
		"mono":    js8.ChannelMono,
		"left":    js8.ChannelLeft,
		"right":   js8.ChannelRight,
		"both":    js8.ChannelBoth,
		"bogus":   js8.ChannelMono,
	}
	for in, want := range tests {
		a := AudioConfig{Channel: in}
		if got := a.ChannelMode(); got != want {
			t.Errorf("AudioConfig{Channel:%q}.ChannelMode() = %v, want %v", in, got, want)
		}
	}
}

func TestSubmodesResolvedDefaults(t *testing.T) {
	s := SubmodesConfig{Enabled: map[string]bool{}}
	mask := s.Resolved()
	for _, p := range js8.Submodes {
		bit := mask&(1<<uint(p.Submode)) != 0
		if bit != p.Enabled {
			t.Errorf("submode %s resolved enabled=%v, want compiled-in default %v", p.Submode, bit, p.Enabled)
		}
	}
}

func TestSubmodesResolvedOverride(t *testing.T) {
	s := SubmodesConfig{Enabled: map[string]bool{"I": true, "A": false}}
	mask := s.Resolved()
	if mask&(1<<uint(js8.SubmodeUltra)) == 0 {
		t.Error("override did not enable SubmodeUltra")
	}
	if mask&(1<<uint(js8.SubmodeNormal)) != 0 {
		t.Error("override did not disable SubmodeNormal")
	}
}

func TestLoadOverridesDefaultsPartially(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("audio:\n  sample_rate: 44100\n  channel: left\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("loaded sample rate = %d, want 44100", cfg.Audio.SampleRate)
	}
	if cfg.Audio.ChannelMode() != js8.ChannelLeft {
		t.Errorf("loaded channel mode = %v, want ChannelLeft", cfg.Audio.ChannelMode())
	}
	// Fields absent from the YAML must keep Default()'s values.
	if cfg.Transport.Listen != ":8642" {
		t.Errorf("unset transport.listen = %q, want Default()'s :8642", cfg.Transport.Listen)
	}
	if cfg.Search.Depth != 3 {
		t.Errorf("unset search.depth = %d, want Default()'s 3", cfg.Search.Depth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Fatal("Load succeeded reading a nonexistent file")
	}
}
