package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"ebiten-reel/config"
)

func TestMessageLogKeepsNewestFirst(t *testing.T) {
	ml := NewMessageLog(3)
	for _, m := range []string{"a", "b", "c", "d"} {
		ml.Add(m)
	}

	if ml.Len() != 3 {
		t.Fatalf("Expected 3 messages, got %d", ml.Len())
	}
	recent := ml.RecentMessages(10)
	if strings.Join(recent, ",") != "d,c,b" {
		t.Errorf("Expected d,c,b, got %v", recent)
	}

	ml.Clear()
	if ml.Len() != 0 {
		t.Errorf("Expected empty log after Clear, got %d", ml.Len())
	}
}

func TestMessageLogWriteSplitsLines(t *testing.T) {
	ml := NewMessageLog(10)
	n, err := ml.Write([]byte("first\r\n\nsecond\n"))
	if err != nil || n != len("first\r\n\nsecond\n") {
		t.Fatalf("Expected full write, got %d, %v", n, err)
	}
	if got := ml.RecentMessages(2); got[0] != "second" || got[1] != "first" {
		t.Errorf("Expected [second first], got %v", got)
	}
}

func TestNewTeesIntoMessageLog(t *testing.T) {
	var console bytes.Buffer
	ml := NewMessageLog(10)
	log := New(config.LoggingConfig{Level: "info", Format: "json"}, &console, ml)

	log.Debug("hidden")
	log.Info("burst", zap.Int("hits", 3))

	if ml.Len() != 1 {
		t.Fatalf("Expected 1 overlay line, got %d", ml.Len())
	}
	line := ml.RecentMessages(1)[0]
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "burst") {
		t.Errorf("Expected overlay line with level and message, got %q", line)
	}

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(console.Bytes()), &record); err != nil {
		t.Fatalf("Expected one JSON record on console, got %q: %v", console.String(), err)
	}
	if record["msg"] != "burst" || record["hits"] != float64(3) {
		t.Errorf("Expected burst record with hits=3, got %v", record)
	}
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	ml := NewMessageLog(10)
	log := New(config.LoggingConfig{Level: "loud"}, nil, ml)

	log.Debug("hidden")
	log.Info("shown")
	if ml.Len() != 1 {
		t.Errorf("Expected only the info line, got %d", ml.Len())
	}
}

func TestNewWithoutSinksIsNop(t *testing.T) {
	log := New(config.LoggingConfig{Level: "debug"}, nil, nil)
	log.Info("nowhere")
	if log.Core().Enabled(zap.ErrorLevel) {
		t.Error("Expected a no-op logger")
	}
}
