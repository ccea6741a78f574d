// Package js8audio ingests RTP audio, decompressing Opus payloads where
// present, and feeds the resulting PCM into a decimator/ring buffer pair.
package js8audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"net"
	"syscall"

	"github.com/pion/rtp"
	"golang.org/x/sys/unix"
	opus "gopkg.in/hraban/opus.v2"

	"github.com/cwsl/js8core/pkg/js8"
)

// Sink receives batches of decimated 12kHz samples ready for RingBuffer.Write.
type Sink interface {
	Write(samples []int16)
}

// decimatorGroupSize is the decimator's input group size (4 samples in, 1
// out); a batch not a multiple of it is trimmed rather than torn mid-group.
const decimatorGroupSize = 4

// Receiver listens for RTP packets carrying 48kHz audio (PCM16 or Opus, by
// payload type), selects the configured channel, and pushes decimated
// samples into Sink (§4.1).
type Receiver struct {
	conn        *net.UDPConn
	sink        Sink
	decimator   *js8.Decimator
	opusPT      uint8
	decoder     *opus.Decoder
	channelMode js8.ChannelMode
	running     bool
}

// NewReceiver binds a UDP socket at listenAddr and constructs an Opus
// decoder for the given payload type (0 disables Opus handling). Incoming
// audio is treated as mono; use NewReceiverChannel for stereo captures.
func NewReceiver(listenAddr string, sampleRate int, opusPT uint8, sink Sink) (*Receiver, error) {
	return NewReceiverChannel(listenAddr, sampleRate, opusPT, js8.ChannelMono, sink)
}

// NewReceiverChannel is NewReceiver with an explicit channel-selection mode
// for stereo captures (§4.1: mono/left/right/both, "both" uses left).
func NewReceiverChannel(listenAddr string, sampleRate int, opusPT uint8, mode js8.ChannelMode, sink Sink) (*Receiver, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
					sockErr = fmt.Errorf("SO_REUSEPORT: %w", err)
				}
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}
	packetConn, err := lc.ListenPacket(context.Background(), "udp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("js8audio: listening on %s: %w", listenAddr, err)
	}
	conn := packetConn.(*net.UDPConn)
	if err := conn.SetReadBuffer(1024 * 1024); err != nil {
		log.Printf("[js8audio] warning: failed to set read buffer: %v", err)
	}

	var dec *opus.Decoder
	if opusPT != 0 {
		dec, err = opus.NewDecoder(sampleRate, 1)
		if err != nil {
			return nil, fmt.Errorf("js8audio: opus decoder init: %w", err)
		}
	}

	return &Receiver{
		conn:        conn,
		sink:        sink,
		decimator:   js8.NewDecimator(),
		opusPT:      opusPT,
		decoder:     dec,
		channelMode: mode,
	}, nil
}

// Run reads packets until the socket is closed, decoding and decimating
// each into the configured Sink. It is meant to run in its own goroutine.
func (r *Receiver) Run() error {
	r.running = true
	buf := make([]byte, 4096)
	for r.running {
		n, err := r.conn.Read(buf)
		if err != nil {
			if !r.running {
				return nil
			}
			return fmt.Errorf("js8audio: read: %w", err)
		}
		if n < 12 {
			continue
		}
		packet := &rtp.Packet{}
		if err := packet.Unmarshal(buf[:n]); err != nil {
			log.Printf("[js8audio] dropping malformed RTP packet: %v", err)
			continue
		}

		pcm, err := r.decodePayload(packet)
		if err != nil {
			log.Printf("[js8audio] dropping packet: %v", err)
			continue
		}
		selected := js8.SelectChannel(pcm, r.channelMode)
		if len(selected)%decimatorGroupSize != 0 {
			selected = selected[:len(selected)-len(selected)%decimatorGroupSize]
		}
		if len(selected) == 0 {
			continue
		}
		r.sink.Write(r.decimator.DownSampleBatch(selected))
	}
	return nil
}

// Stop closes the receive socket, unblocking Run.
func (r *Receiver) Stop() {
	r.running = false
	r.conn.Close()
}

// decodePayload converts one RTP payload into int16 PCM, running it through
// Opus when the packet's payload type matches the configured Opus type.
func (r *Receiver) decodePayload(packet *rtp.Packet) ([]int16, error) {
	if r.decoder != nil && packet.PayloadType == r.opusPT {
		pcm := make([]int16, 5760) // max Opus frame, 120ms @ 48kHz
		n, err := r.decoder.Decode(packet.Payload, pcm)
		if err != nil {
			return nil, fmt.Errorf("opus decode: %w", err)
		}
		return pcm[:n], nil
	}
	usable, ok := js8.ValidateFrameBytes(packet.Payload, r.channelMode)
	if !ok {
		log.Printf("[js8audio] torn RTP payload from seq %d", packet.SequenceNumber)
	}
	return pcm16FromBytes(usable), nil
}

func pcm16FromBytes(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return out
}
