// Package metrics exposes decode-engine counters and health snapshots.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode holds the Prometheus collectors for one Engine's decode activity.
type Decode struct {
	candidatesTotal  *prometheus.CounterVec // by submode
	decodesTotal     *prometheus.CounterVec // by submode
	crcRejectsTotal  *prometheus.CounterVec // by submode
	bpIterations     *prometheus.HistogramVec
	osdInvocations   *prometheus.CounterVec // by submode
	passLatency      *prometheus.HistogramVec // by submode
	lastPassDuration *prometheus.GaugeVec     // by submode
}

// NewDecode registers a Decode metric set against reg.
func NewDecode(reg prometheus.Registerer) *Decode {
	factory := promauto.With(reg)
	return &Decode{
		candidatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "js8core", Name: "sync_candidates_total",
			Help: "Sync candidates produced by the Costas search, by submode.",
		}, []string{"submode"}),
		decodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "js8core", Name: "decodes_total",
			Help: "Accepted decodes, by submode.",
		}, []string{"submode"}),
		crcRejectsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "js8core", Name: "crc_rejects_total",
			Help: "Candidates that reached a BP/OSD codeword but failed CRC, by submode.",
		}, []string{"submode"}),
		bpIterations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "js8core", Name: "bp_iterations",
			Help:    "Belief-propagation iterations consumed per decode attempt.",
			Buckets: prometheus.LinearBuckets(0, 2, 16),
		}, []string{"submode"}),
		osdInvocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "js8core", Name: "osd_invocations_total",
			Help: "OSD fallback invocations, by submode.",
		}, []string{"submode"}),
		passLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "js8core", Name: "decode_pass_seconds",
			Help:    "Wall-clock time of one decode pass, by submode.",
			Buckets: prometheus.DefBuckets,
		}, []string{"submode"}),
		lastPassDuration: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "js8core", Name: "decode_pass_last_seconds",
			Help: "Duration of the most recent decode pass, by submode.",
		}, []string{"submode"}),
	}
}

func (d *Decode) ObserveCandidates(submode string, n int) {
	d.candidatesTotal.WithLabelValues(submode).Add(float64(n))
}

func (d *Decode) ObserveDecode(submode string) {
	d.decodesTotal.WithLabelValues(submode).Inc()
}

func (d *Decode) ObserveCRCReject(submode string) {
	d.crcRejectsTotal.WithLabelValues(submode).Inc()
}

func (d *Decode) ObserveBPIterations(submode string, n int) {
	d.bpIterations.WithLabelValues(submode).Observe(float64(n))
}

func (d *Decode) ObserveOSD(submode string) {
	d.osdInvocations.WithLabelValues(submode).Inc()
}

func (d *Decode) ObservePassLatency(submode string, dur time.Duration) {
	seconds := dur.Seconds()
	d.passLatency.WithLabelValues(submode).Observe(seconds)
	d.lastPassDuration.WithLabelValues(submode).Set(seconds)
}
