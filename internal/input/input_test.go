package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func newTestStream() *Stream {
	return &Stream{ch: make(chan byte, 16)}
}

func TestReadKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  Input
	}{
		{"Letters left", "a", Input{Left: true}},
		{"Vim left", "J", Input{Left: true}},
		{"Letters right", "d", Input{Right: true}},
		{"Vim right", "l", Input{Right: true}},
		{"Arrow right", "\x1b[C", Input{Right: true}},
		{"Arrow left", "\x1b[D", Input{Left: true}},
		{"Arrow up ignored", "\x1b[A", Input{}},
		{"Fire", " ", Input{Space: true}},
		{"Enter", "\r", Input{Enter: true}},
		{"Quit", "Q", Input{Quit: true}},
		{"Combination", "a d", Input{Left: true, Right: true, Space: true}},
		{"Unknown", "x", Input{}},
	}

	now := time.Unix(1000, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			got := s.read([]byte(tt.bytes), now)
			if got.Left != tt.want.Left || got.Right != tt.want.Right ||
				got.Space != tt.want.Space || got.Enter != tt.want.Enter || got.Quit != tt.want.Quit {
				t.Fatalf("read(%q) = %+v, want %+v", tt.bytes, got, tt.want)
			}
			if string(got.Pressed) != tt.bytes {
				t.Fatalf("Pressed = %q, want %q", got.Pressed, tt.bytes)
			}
		})
	}
}

func TestKeyHoldExpires(t *testing.T) {
	s := newTestStream()
	now := time.Unix(1000, 0)

	s.read([]byte("a"), now)
	if !s.read(nil, now.Add(keyHoldDuration/2)).Left {
		t.Fatal("key released before hold duration")
	}
	if s.read(nil, now.Add(keyHoldDuration)).Left {
		t.Fatal("key still held after hold duration")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newTestStream()
	s.read([]byte(" "), time.Now())
	s.ch <- 'a'

	ResetKeyInput(s)

	got := ReadInput(s)
	if got.Space || got.Left || len(got.Pressed) != 0 {
		t.Fatalf("state survived reset: %+v", got)
	}
}

func TestStartStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	// The reader goroutine closes the channel at EOF.
	var got []byte
	for b := range s.ch {
		got = append(got, b)
	}
	if string(got) != "d" {
		t.Fatalf("streamed %q, want %q", got, "d")
	}
	if s.Closed() {
		t.Fatal("Closed before the end was drained")
	}
	if in := ReadInput(s); len(in.Pressed) != 0 {
		t.Fatalf("closed stream returned %q", in.Pressed)
	}
	if !s.Closed() {
		t.Fatal("stream not reported closed after EOF")
	}
}
