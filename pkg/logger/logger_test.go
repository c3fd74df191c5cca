package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestInit_JSONWithService(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Service: "ticketflow", Output: &buf})
	log.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "ticketflow" || entry["message"] != "hello" {
		t.Fatalf("unexpected entry: %v", entry)
	}

	// Second Init is a no-op.
	var other bytes.Buffer
	Init(Options{Output: &other})
	again := Get()
	again.Info().Msg("again")
	if other.Len() != 0 {
		t.Fatalf("second Init must not replace the logger")
	}
	if !strings.Contains(buf.String(), `"message":"again"`) {
		t.Fatalf("expected the first logger to keep writing, got %q", buf.String())
	}
}

func TestGet_BeforeInit(t *testing.T) {
	Reset()
	log := Get()
	log.Info().Msg("dropped")
}
