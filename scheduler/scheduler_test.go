package scheduler

import (
	"sync"
	"testing"
)

func TestFrameFanOutAndCancel(t *testing.T) {
	hub := NewHub()
	var a, b []float64

	cancelA := hub.SubscribeFrames(func(ts float64) { a = append(a, ts) })
	hub.SubscribeFrames(func(ts float64) { b = append(b, ts) })

	hub.Frame(16)
	cancelA()
	cancelA() // idempotent
	hub.Frame(32)

	if len(a) != 1 || a[0] != 16 {
		t.Errorf("Expected first subscriber to see [16], got %v", a)
	}
	if len(b) != 2 {
		t.Errorf("Expected second subscriber to see 2 frames, got %v", b)
	}
	if hub.FrameSubscribers() != 1 {
		t.Errorf("Expected 1 frame subscriber, got %d", hub.FrameSubscribers())
	}
}

func TestCancelDuringFrameSkipsLaterSubscriber(t *testing.T) {
	hub := NewHub()
	var cancelSecond func()
	calls := 0

	hub.SubscribeFrames(func(float64) { cancelSecond() })
	cancelSecond = hub.SubscribeFrames(func(float64) { calls++ })

	hub.Frame(1)
	if calls != 0 {
		t.Errorf("Expected cancelled subscriber not to run, ran %d times", calls)
	}
}

func TestResizeOnlyOnChange(t *testing.T) {
	hub := NewHub()
	var sizes [][2]int
	hub.SubscribeResize(func(w, h int) { sizes = append(sizes, [2]int{w, h}) })

	hub.Resize(800, 300)
	hub.Resize(800, 300)
	hub.Resize(640, 300)

	if len(sizes) != 2 {
		t.Fatalf("Expected 2 resize notifications, got %v", sizes)
	}
	if w, h := hub.Size(); w != 640 || h != 300 {
		t.Errorf("Expected size 640x300, got %dx%d", w, h)
	}
}

func TestConcurrentPublishAndCancel(t *testing.T) {
	hub := NewHub()
	cancel := hub.SubscribeResize(func(int, int) {})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.Resize(i, i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.Frame(float64(i))
		}
		cancel()
	}()
	wg.Wait()

	if hub.ResizeSubscribers() != 0 {
		t.Errorf("Expected no resize subscribers, got %d", hub.ResizeSubscribers())
	}
}
