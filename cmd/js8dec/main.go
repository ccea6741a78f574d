// Command js8dec runs the JS8 decode engine: it ingests RTP/Opus audio,
// decimates and buffers it, runs the submode decode passes (I, E, C, B, A) on
// a timer, and fans decode events out over websockets while journaling them
// to a compressed log.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"

	"github.com/cwsl/js8core/internal/config"
	"github.com/cwsl/js8core/internal/metrics"
	"github.com/cwsl/js8core/pkg/js8"
	"github.com/cwsl/js8core/pkg/js8audio"
	"github.com/cwsl/js8core/pkg/js8log"
	"github.com/cwsl/js8core/pkg/js8stream"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to engine config YAML (optional)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		log.Printf("js8dec %s", version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[js8dec] %v", err)
		}
		cfg = loaded
	}

	journal, err := js8log.Open(cfg.Log.JournalPath)
	if err != nil {
		log.Fatalf("[js8dec] opening journal: %v", err)
	}
	defer journal.Close()

	streamServer := js8stream.NewServer()
	sink := js8.EventSinkFunc(func(e js8.DecodeEvent) {
		streamServer.Emit(e)
		journal.Emit(e)
	})

	ring := js8.NewRingBuffer(cfg.Search.Period)
	ring.ResetPosition()

	engine, err := js8.NewEngine(ring, sink, cfg.Submodes.Resolved())
	if err != nil {
		log.Fatalf("[js8dec] constructing engine: %v", err)
	}
	registry := prometheus.NewRegistry()
	engine.Metrics = metrics.NewDecode(registry)
	engine.Start()
	defer engine.Stop()

	receiver, err := js8audio.NewReceiverChannel(cfg.Audio.RTPListen, cfg.Audio.SampleRate, uint8(cfg.Audio.OpusPT), cfg.Audio.ChannelMode(), ring)
	if err != nil {
		log.Fatalf("[js8dec] constructing audio receiver: %v", err)
	}
	go func() {
		if err := receiver.Run(); err != nil {
			log.Printf("[js8dec] audio receiver stopped: %v", err)
		}
	}()
	defer receiver.Stop()

	mux := http.NewServeMux()
	mux.Handle("/", streamServer)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	httpServer := &http.Server{Addr: cfg.Transport.Listen, Handler: mux}
	if err := http2.ConfigureServer(httpServer, &http2.Server{}); err != nil {
		log.Printf("[js8dec] warning: HTTP/2 not configured: %v", err)
	}
	go func() {
		ln, err := net.Listen("tcp", httpServer.Addr)
		if err != nil {
			log.Fatalf("[js8dec] listening on %s: %v", httpServer.Addr, err)
		}
		if err := httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("[js8dec] http server stopped: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Search.Period)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			log.Printf("[js8dec] shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			httpServer.Shutdown(shutdownCtx)
			cancel()
			return
		case <-ticker.C:
			engine.Submit(nextJob(cfg, ring))
		}
	}
}

// nextJob builds one dispatch request covering every enabled submode's
// most recent decode window.
func nextJob(cfg config.EngineConfig, ring *js8.RingBuffer) js8.JobParams {
	kin := ring.Kin()
	job := js8.JobParams{
		NFA:           cfg.Search.FreqLowHz,
		NFB:           cfg.Search.FreqHighHz,
		Kin:           kin,
		NSubmodesMask: cfg.Submodes.Resolved(),
		NDepth:        cfg.Search.Depth,
		NApWid:        cfg.Search.APWidthHz,
		DateTime:      time.Now().UTC(),
	}
	for _, p := range js8.Submodes {
		derived := p.Derive()
		kpos := kin - derived.NMax
		if kpos < 0 {
			kpos = 0
		}
		switch p.Submode {
		case js8.SubmodeNormal:
			job.KposA, job.KszA = kpos, derived.NMax
		case js8.SubmodeFast:
			job.KposB, job.KszB = kpos, derived.NMax
		case js8.SubmodeTurbo:
			job.KposC, job.KszC = kpos, derived.NMax
		case js8.SubmodeSlow:
			job.KposE, job.KszE = kpos, derived.NMax
		case js8.SubmodeUltra:
			job.KposI, job.KszI = kpos, derived.NMax
		}
	}
	return job
}
