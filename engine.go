// SPDX-License-Identifier: EPL-2.0

package ucra

/*
#cgo LDFLAGS: -lm

#include <stdlib.h>
#include "ucra.h"
*/
import "C"

import (
	"bytes"
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// Engine owns one UCRA engine handle.
//
// All methods serialize on an internal mutex, since the ABI does not
// guarantee thread-safe handles. The handle is destroyed exactly once by
// Close; after that every method returns ErrClosed.
type Engine struct {
	mu     sync.Mutex
	handle C.UCRA_Handle
}

// New creates an engine with no options.
func New() (*Engine, error) {
	return NewWithOptions(nil)
}

// NewWithOptions creates an engine, passing the given key/value options to
// the creation entry point.
func NewWithOptions(options map[string]string) (*Engine, error) {
	var arena cArena
	defer arena.free()

	opts, optCount := arena.keyValues(options)

	var handle C.UCRA_Handle
	code := C.ucra_engine_create(&handle, opts, optCount)
	if err := errFromCode(int32(code)); err != nil {
		return nil, err
	}
	return &Engine{handle: handle}, nil
}

const infoBufferSize = 256

// Info returns the engine's implementation info string (name/version).
// The returned text is truncated at the first NUL byte; invalid UTF-8 is
// replaced, never fatal.
func (e *Engine) Info() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handle == nil {
		return "", ErrClosed
	}

	buf := make([]byte, infoBufferSize)
	code := C.ucra_engine_getinfo(e.handle, (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	if err := errFromCode(int32(code)); err != nil {
		return "", err
	}

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.ToValidUTF8(string(buf), "�"), nil
}

// Render synthesizes audio for the given configuration.
//
// The notes, curves, lyrics, and options in cfg are converted into C memory
// that stays alive until the foreign call returns. On success the returned
// result views the engine-owned sample buffer, valid until the next Render
// on this Engine or until Close. On failure the output slot is discarded
// unread.
func (e *Engine) Render(cfg *RenderConfig) (*RenderResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handle == nil {
		return nil, ErrClosed
	}
	if cfg == nil {
		return nil, ErrInvalidArgument
	}

	var arena cArena
	defer arena.free()

	var ccfg C.UCRA_RenderConfig
	ccfg.sample_rate = C.uint32_t(cfg.SampleRate)
	ccfg.channels = C.uint32_t(cfg.Channels)
	ccfg.block_size = C.uint32_t(cfg.BlockSize)
	ccfg.flags = C.uint32_t(cfg.Flags)
	ccfg.notes, ccfg.note_count = arena.notes(cfg.Notes)
	ccfg.options, ccfg.option_count = arena.keyValues(cfg.Options)

	var out C.UCRA_RenderResult // zero-initialized output slot
	code := C.ucra_render(e.handle, &ccfg, &out)
	if err := errFromCode(int32(code)); err != nil {
		return nil, err
	}

	res := &RenderResult{
		frames:     uint64(out.frames),
		channels:   uint32(out.channels),
		sampleRate: uint32(out.sample_rate),
		metadata:   copyMetadata(out.metadata, uint32(out.metadata_count)),
	}
	if out.pcm != nil && out.frames > 0 {
		n := int(out.frames) * int(out.channels)
		res.pcm = unsafe.Slice((*float32)(unsafe.Pointer(out.pcm)), n)
	}
	return res, nil
}

// Close destroys the engine handle. It is safe to call more than once; only
// the first call releases the handle. Sample views from earlier Render calls
// must not be read after Close.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handle == nil {
		return nil
	}
	C.ucra_engine_destroy(e.handle)
	e.handle = nil
	return nil
}

// copyMetadata copies an engine-owned key/value array into a Go map before
// the borrow expires.
func copyMetadata(kvs *C.UCRA_KeyValue, count uint32) map[string]string {
	if kvs == nil || count == 0 {
		return nil
	}
	out := make(map[string]string, count)
	for _, kv := range unsafe.Slice(kvs, count) {
		out[C.GoString(kv.key)] = C.GoString(kv.value)
	}
	return out
}

// cArena tracks C allocations made while marshalling one call's arguments,
// so every pointer handed to the engine stays alive until the call returns.
// free releases everything at once.
type cArena struct {
	ptrs []unsafe.Pointer
}

func (a *cArena) free() {
	for _, p := range a.ptrs {
		C.free(p)
	}
	a.ptrs = nil
}

func (a *cArena) alloc(size int) unsafe.Pointer {
	p := C.calloc(1, C.size_t(size))
	a.ptrs = append(a.ptrs, p)
	return p
}

func (a *cArena) cstring(s string) *C.char {
	p := C.CString(s)
	a.ptrs = append(a.ptrs, unsafe.Pointer(p))
	return p
}

func (a *cArena) floats(src []float32) *C.float {
	if len(src) == 0 {
		return nil
	}
	p := a.alloc(len(src) * 4)
	copy(unsafe.Slice((*float32)(p), len(src)), src)
	return (*C.float)(p)
}

func (a *cArena) keyValues(m map[string]string) (*C.UCRA_KeyValue, C.uint32_t) {
	if len(m) == 0 {
		return nil, 0
	}
	p := a.alloc(len(m) * int(C.sizeof_UCRA_KeyValue))
	kvs := unsafe.Slice((*C.UCRA_KeyValue)(p), len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for i, k := range keys {
		kvs[i].key = a.cstring(k)
		kvs[i].value = a.cstring(m[k])
	}
	return (*C.UCRA_KeyValue)(p), C.uint32_t(len(m))
}

func (a *cArena) f0Curve(c *Curve) *C.UCRA_F0Curve {
	if c == nil || c.Len() == 0 {
		return nil
	}
	p := (*C.UCRA_F0Curve)(a.alloc(int(C.sizeof_UCRA_F0Curve)))
	p.time_sec = a.floats(c.times)
	p.f0_hz = a.floats(c.values)
	p.length = C.uint32_t(c.Len())
	return p
}

func (a *cArena) envCurve(c *Curve) *C.UCRA_EnvCurve {
	if c == nil || c.Len() == 0 {
		return nil
	}
	p := (*C.UCRA_EnvCurve)(a.alloc(int(C.sizeof_UCRA_EnvCurve)))
	p.time_sec = a.floats(c.times)
	p.value = a.floats(c.values)
	p.length = C.uint32_t(c.Len())
	return p
}

func (a *cArena) notes(notes []NoteSegment) (*C.UCRA_NoteSegment, C.uint32_t) {
	if len(notes) == 0 {
		return nil, 0
	}
	p := a.alloc(len(notes) * int(C.sizeof_UCRA_NoteSegment))
	cn := unsafe.Slice((*C.UCRA_NoteSegment)(p), len(notes))
	for i := range notes {
		n := &notes[i]
		cn[i].start_sec = C.double(n.StartSec)
		cn[i].duration_sec = C.double(n.DurationSec)
		cn[i].midi_note = C.int16_t(n.MIDINote)
		cn[i].velocity = C.uint8_t(n.Velocity)
		if n.Lyric != "" {
			cn[i].lyric = a.cstring(n.Lyric)
		}
		cn[i].f0_override = a.f0Curve(n.F0)
		cn[i].env_override = a.envCurve(n.Env)
	}
	return (*C.UCRA_NoteSegment)(p), C.uint32_t(len(notes))
}
