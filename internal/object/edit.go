package object

import (
	"github.com/dshills/textobj/internal/engine/buffer"
)

// DeleteObject computes the object range at pos and removes it from
// the buffer. It returns the new cursor position and the removed
// text. Range computation errors are propagated and the buffer is
// left untouched.
func DeleteObject(buf *buffer.Buffer, pos buffer.ByteOffset, count int, fn RangeFunc) (buffer.ByteOffset, string, error) {
	r, err := fn(buf, pos, count)
	if err != nil {
		return pos, "", err
	}
	r = r.Normalize()
	removed, err := buf.Delete(r.Start, r.End)
	if err != nil {
		return pos, "", err
	}
	return buf.ClampToRune(r.Start), removed, nil
}

// ChangeObject removes the object range at pos and returns the
// insertion point where replacement text should be typed, along with
// the removed text.
func ChangeObject(buf *buffer.Buffer, pos buffer.ByteOffset, count int, fn RangeFunc) (buffer.ByteOffset, string, error) {
	r, err := fn(buf, pos, count)
	if err != nil {
		return pos, "", err
	}
	r = r.Normalize()
	removed, err := buf.Delete(r.Start, r.End)
	if err != nil {
		return pos, "", err
	}
	return r.Start, removed, nil
}

// ReplaceObject replaces the object range at pos with text and
// returns the end of the replacement.
func ReplaceObject(buf *buffer.Buffer, pos buffer.ByteOffset, count int, fn RangeFunc, text string) (buffer.ByteOffset, error) {
	r, err := fn(buf, pos, count)
	if err != nil {
		return pos, err
	}
	r = r.Normalize()
	return buf.Replace(r.Start, r.End, text)
}
