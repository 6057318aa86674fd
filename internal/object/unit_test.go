package object

import (
	"errors"
	"testing"

	"github.com/dshills/textobj/internal/engine/buffer"
)

func TestWordForward(t *testing.T) {
	buf := buffer.New("foo bar baz")

	tests := []struct {
		name    string
		pos     buffer.ByteOffset
		count   int
		want    buffer.ByteOffset
		wantErr bool
	}{
		{"first word end", 0, 1, 3, false},
		{"mid word", 1, 1, 3, false},
		{"from boundary", 3, 1, 7, false},
		{"count 3", 0, 3, 11, false},
		{"inside last word", 9, 1, 11, false},
		{"at buffer end", 11, 1, 11, true},
		{"count exceeds words", 0, 4, 0, true},
	}

	u := WordUnit{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := u.Forward(buf, tt.pos, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Forward(%d, %d) error = %v, wantErr %v", tt.pos, tt.count, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMotionExhausted) {
				t.Errorf("error = %v, want ErrMotionExhausted", err)
			}
			if got != tt.want {
				t.Errorf("Forward(%d, %d) = %d, want %d", tt.pos, tt.count, got, tt.want)
			}
		})
	}
}

func TestWordBackward(t *testing.T) {
	buf := buffer.New("foo bar baz")

	tests := []struct {
		name    string
		pos     buffer.ByteOffset
		count   int
		want    buffer.ByteOffset
		wantErr bool
	}{
		{"from end", 11, 1, 8, false},
		{"from boundary", 8, 1, 4, false},
		{"mid word", 5, 1, 4, false},
		{"count 2", 11, 2, 4, false},
		{"at start", 0, 1, 0, true},
		{"count exceeds words", 5, 3, 5, true},
	}

	u := WordUnit{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := u.Backward(buf, tt.pos, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Backward(%d, %d) error = %v, wantErr %v", tt.pos, tt.count, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Backward(%d, %d) = %d, want %d", tt.pos, tt.count, got, tt.want)
			}
		})
	}
}

func TestWordPunctuation(t *testing.T) {
	// Punctuation runs are their own small words but part of a WORD.
	buf := buffer.New("foo.bar")

	small := WordUnit{}
	if got, err := small.Forward(buf, 0, 1); err != nil || got != 3 {
		t.Errorf("small Forward(0, 1) = (%d, %v), want (3, nil)", got, err)
	}
	if got, err := small.Forward(buf, 3, 1); err != nil || got != 4 {
		t.Errorf("small Forward(3, 1) = (%d, %v), want (4, nil)", got, err)
	}
	if got, err := small.Backward(buf, 5, 1); err != nil || got != 4 {
		t.Errorf("small Backward(5, 1) = (%d, %v), want (4, nil)", got, err)
	}

	big := WordUnit{Big: true}
	if got, err := big.Forward(buf, 0, 1); err != nil || got != 7 {
		t.Errorf("big Forward(0, 1) = (%d, %v), want (7, nil)", got, err)
	}
	if got, err := big.Backward(buf, 7, 1); err != nil || got != 0 {
		t.Errorf("big Backward(7, 1) = (%d, %v), want (0, nil)", got, err)
	}
}

func TestSentenceBoundaries(t *testing.T) {
	buf := buffer.New("Hi there. Go now! Ok")
	u := SentenceUnit{}

	if got, err := u.Forward(buf, 0, 1); err != nil || got != 9 {
		t.Errorf("Forward(0, 1) = (%d, %v), want (9, nil)", got, err)
	}
	if got, err := u.Forward(buf, 9, 1); err != nil || got != 17 {
		t.Errorf("Forward(9, 1) = (%d, %v), want (17, nil)", got, err)
	}
	// The trailing "Ok" has no terminator.
	if _, err := u.Forward(buf, 17, 1); !errors.Is(err, ErrMotionExhausted) {
		t.Errorf("Forward(17, 1) error = %v, want ErrMotionExhausted", err)
	}

	if got, err := u.Backward(buf, 19, 1); err != nil || got != 18 {
		t.Errorf("Backward(19, 1) = (%d, %v), want (18, nil)", got, err)
	}
	if got, err := u.Backward(buf, 18, 1); err != nil || got != 10 {
		t.Errorf("Backward(18, 1) = (%d, %v), want (10, nil)", got, err)
	}
	if got, err := u.Backward(buf, 5, 1); err != nil || got != 0 {
		t.Errorf("Backward(5, 1) = (%d, %v), want (0, nil)", got, err)
	}
}

func TestSentenceParagraphBreak(t *testing.T) {
	// A blank line starts a sentence even without punctuation.
	buf := buffer.New("one two\n\nthree")
	u := SentenceUnit{}

	if got, err := u.Backward(buf, 12, 1); err != nil || got != 9 {
		t.Errorf("Backward(12, 1) = (%d, %v), want (9, nil)", got, err)
	}
}

func TestParagraphBoundaries(t *testing.T) {
	buf := buffer.New("aaa\nbbb\n\nccc\n\n\nddd")
	u := ParagraphUnit{}

	forward := []struct {
		pos     buffer.ByteOffset
		count   int
		want    buffer.ByteOffset
		wantErr bool
	}{
		{0, 1, 8, false},
		{8, 1, 13, false},
		{0, 3, 18, false},
		{16, 1, 18, false},
		{18, 1, 18, true},
	}
	for _, tt := range forward {
		got, err := u.Forward(buf, tt.pos, tt.count)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Forward(%d, %d) = (%d, %v), want (%d, wantErr %v)",
				tt.pos, tt.count, got, err, tt.want, tt.wantErr)
		}
	}

	backward := []struct {
		pos     buffer.ByteOffset
		count   int
		want    buffer.ByteOffset
		wantErr bool
	}{
		{18, 1, 15, false},
		{15, 1, 9, false},
		{10, 1, 9, false},
		{9, 1, 0, false},
		{9, 2, 9, true},
	}
	for _, tt := range backward {
		got, err := u.Backward(buf, tt.pos, tt.count)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Backward(%d, %d) = (%d, %v), want (%d, wantErr %v)",
				tt.pos, tt.count, got, err, tt.want, tt.wantErr)
		}
	}
}
