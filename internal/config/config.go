// Package config loads the engine's YAML configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cwsl/js8core/pkg/js8"
)

// EngineConfig is the top-level YAML document read at startup.
type EngineConfig struct {
	Audio     AudioConfig     `yaml:"audio"`
	Submodes  SubmodesConfig  `yaml:"submodes"`
	Search    SearchConfig    `yaml:"search"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
}

// AudioConfig describes the capture-side sample source.
type AudioConfig struct {
	SampleRate int    `yaml:"sample_rate"`
	RTPListen  string `yaml:"rtp_listen"`
	OpusPT     int    `yaml:"opus_payload_type"`
	Channel    string `yaml:"channel"` // mono, left, right, both (§4.1)
}

// ChannelMode resolves the configured channel string to a js8.ChannelMode,
// defaulting to mono for an empty or unrecognised value.
func (a AudioConfig) ChannelMode() js8.ChannelMode {
	switch a.Channel {
	case "left":
		return js8.ChannelLeft
	case "right":
		return js8.ChannelRight
	case "both":
		return js8.ChannelBoth
	default:
		return js8.ChannelMono
	}
}

// SubmodesConfig carries per-submode enablement overrides, keyed by their
// one-letter tag (A, B, C, E, I). Unlisted submodes keep js8.Submodes'
// compiled-in default.
type SubmodesConfig struct {
	Enabled map[string]bool `yaml:"enabled"`
}

// Resolved returns the enablement bitmask (bit int(Submode)) after applying
// any overrides in Enabled on top of the compiled-in defaults.
func (s SubmodesConfig) Resolved() int {
	mask := 0
	for _, p := range js8.Submodes {
		enabled := p.Enabled
		if override, ok := s.Enabled[p.Submode.String()]; ok {
			enabled = override
		}
		if enabled {
			mask |= 1 << uint(p.Submode)
		}
	}
	return mask
}

// SearchConfig sets the default frequency-search band and decode depth.
type SearchConfig struct {
	FreqLowHz  int           `yaml:"freq_low_hz"`
	FreqHighHz int           `yaml:"freq_high_hz"`
	Depth      int           `yaml:"depth"`
	APWidthHz  int           `yaml:"ap_width_hz"`
	Period     time.Duration `yaml:"period"`
}

// TransportConfig configures the websocket event fanout server.
type TransportConfig struct {
	Listen string `yaml:"listen"`
}

// LogConfig configures the compressed decode-event journal.
type LogConfig struct {
	JournalPath string `yaml:"journal_path"`
}

// Default returns an EngineConfig matching js8.Submodes' compiled-in
// defaults and a conservative search band.
func Default() EngineConfig {
	return EngineConfig{
		Audio: AudioConfig{SampleRate: 48000, RTPListen: ":5004", OpusPT: 111, Channel: "mono"},
		Submodes: SubmodesConfig{
			Enabled: map[string]bool{},
		},
		Search: SearchConfig{
			FreqLowHz: 200, FreqHighHz: 3000, Depth: 3, APWidthHz: 20,
			Period: 15 * time.Second,
		},
		Transport: TransportConfig{Listen: ":8642"},
		Log:       LogConfig{JournalPath: "decodes.jsonl.gz"},
	}
}

// Load reads and parses an EngineConfig from path, starting from Default()
// so a partial file only overrides the fields it sets.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
