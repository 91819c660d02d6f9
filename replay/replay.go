package replay

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/go-theft-auto/window"
)

// Recorder is an event source that passes through the events of another
// source and writes each one to w.
type Recorder struct {
	src   window.EventSource
	enc   *msgpack.Encoder
	now   func() time.Time
	start time.Time
	count int
	err   error
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock replaces time.Now for record offsets.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// NewRecorder records the events polled from src.
func NewRecorder(src window.EventSource, w io.Writer, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		src: src,
		enc: msgpack.NewEncoder(w),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.start = r.now()
	return r
}

// PollEvent returns the next event of the wrapped source. A write failure
// stops recording but not the events: see Err.
func (r *Recorder) PollEvent() (window.Event, bool) {
	ev, ok := r.src.PollEvent()
	if !ok || r.err != nil {
		return ev, ok
	}

	rec, err := NewRecord(ev)
	if err != nil {
		logger.Warn("event not recorded", "error", err)
		return ev, ok
	}
	rec.Offset = r.now().Sub(r.start).Microseconds()
	if err := r.enc.Encode(&rec); err != nil {
		r.err = fmt.Errorf("write record %d: %w", r.count, err)
		logger.Error("recording stopped", "error", r.err)
		return ev, ok
	}
	r.count++
	return ev, ok
}

// Count returns how many events were written.
func (r *Recorder) Count() int { return r.count }

// Err returns the write error that stopped recording, if any.
func (r *Recorder) Err() error { return r.err }

// Player is an event source reading a recording.
type Player struct {
	dec  *msgpack.Decoder
	last time.Duration
	err  error
	done bool
}

// NewPlayer plays the recording in rd.
func NewPlayer(rd io.Reader) *Player {
	return &Player{dec: msgpack.NewDecoder(rd)}
}

// Next returns the next event and its offset from the start of the
// recording. It returns false at the end of the recording or on a decoding
// error, reported by Err.
func (p *Player) Next() (window.Event, time.Duration, bool) {
	if p.done {
		return nil, p.last, false
	}
	for {
		var rec Record
		if err := p.dec.Decode(&rec); err != nil {
			p.done = true
			if !errors.Is(err, io.EOF) {
				p.err = fmt.Errorf("read record: %w", err)
				logger.Error("replay stopped", "error", p.err)
			}
			return nil, p.last, false
		}
		ev, err := rec.Event()
		if err != nil {
			logger.Warn("record skipped", "error", err)
			continue
		}
		p.last = time.Duration(rec.Offset) * time.Microsecond
		return ev, p.last, true
	}
}

// PollEvent returns the next recorded event, ignoring timing.
func (p *Player) PollEvent() (window.Event, bool) {
	ev, _, ok := p.Next()
	return ev, ok
}

// Err returns the error that ended playback early, if any.
func (p *Player) Err() error { return p.err }

// ReadAll decodes a whole recording.
func ReadAll(rd io.Reader) ([]window.Event, error) {
	p := NewPlayer(rd)
	var evs []window.Event
	for {
		ev, ok := p.PollEvent()
		if !ok {
			return evs, p.Err()
		}
		evs = append(evs, ev)
	}
}

var (
	_ window.EventSource = (*Recorder)(nil)
	_ window.EventSource = (*Player)(nil)
)
