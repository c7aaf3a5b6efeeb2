// Package scheduler is the host side of the repaint contract: a host owns a
// Hub, publishes frames and resizes into it, and subscribers are called until
// they cancel.
package scheduler

import (
	"sync"
)

// FrameFunc is called once per display refresh with a timestamp in milliseconds
type FrameFunc func(timestampMs float64)

// ResizeFunc is called when the drawable surface changes size
type ResizeFunc func(width, height int)

// FrameSource delivers repaint callbacks
type FrameSource interface {
	SubscribeFrames(fn FrameFunc) (cancel func())
}

// ResizeSource delivers resize notifications
type ResizeSource interface {
	SubscribeResize(fn ResizeFunc) (cancel func())
}

// Hub fans frames and resizes out to subscribers in subscription order.
// Publishing and cancelling are safe from different goroutines; once a cancel
// func returns, that subscriber is never called again by a later publish.
type Hub struct {
	mu       sync.Mutex
	nextID   uint64
	frames   []frameEntry
	resizes  []resizeEntry
	width    int
	height   int
	sizeSeen bool
}

type frameEntry struct {
	id uint64
	fn FrameFunc
}

type resizeEntry struct {
	id uint64
	fn ResizeFunc
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// SubscribeFrames implements FrameSource
func (h *Hub) SubscribeFrames(fn FrameFunc) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.frames = append(h.frames, frameEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for i, e := range h.frames {
				if e.id == id {
					h.frames = append(h.frames[:i:i], h.frames[i+1:]...)
					break
				}
			}
		})
	}
}

// SubscribeResize implements ResizeSource
func (h *Hub) SubscribeResize(fn ResizeFunc) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.resizes = append(h.resizes, resizeEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for i, e := range h.resizes {
				if e.id == id {
					h.resizes = append(h.resizes[:i:i], h.resizes[i+1:]...)
					break
				}
			}
		})
	}
}

// Frame calls every frame subscriber with the timestamp
func (h *Hub) Frame(timestampMs float64) {
	h.mu.Lock()
	subscribers := h.frames
	h.mu.Unlock()

	for _, e := range subscribers {
		if h.frameLive(e.id) {
			e.fn(timestampMs)
		}
	}
}

// Resize records the size and notifies resize subscribers when it changed
func (h *Hub) Resize(width, height int) {
	h.mu.Lock()
	if h.sizeSeen && width == h.width && height == h.height {
		h.mu.Unlock()
		return
	}
	h.width, h.height, h.sizeSeen = width, height, true
	subscribers := h.resizes
	h.mu.Unlock()

	for _, e := range subscribers {
		if h.resizeLive(e.id) {
			e.fn(width, height)
		}
	}
}

// Size returns the last published size
func (h *Hub) Size() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

// FrameSubscribers returns the number of live frame subscribers
func (h *Hub) FrameSubscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.frames)
}

// ResizeSubscribers returns the number of live resize subscribers
func (h *Hub) ResizeSubscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.resizes)
}

// frameLive reports whether a frame subscriber was not cancelled by an earlier callback
func (h *Hub) frameLive(id uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.frames {
		if e.id == id {
			return true
		}
	}
	return false
}

func (h *Hub) resizeLive(id uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.resizes {
		if e.id == id {
			return true
		}
	}
	return false
}
