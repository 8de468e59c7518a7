package concat

import (
	"bytes"
	"errors"
	"fmt"
)

// A NUL-terminated buffer is a byte string whose end is marked by a 0x00
// sentinel rather than a stored length.
// See https://en.wikipedia.org/wiki/Null-terminated_string

var (
	// ErrInvalidInput is returned when a nil buffer is passed where a
	// NUL-terminated buffer is required.
	ErrInvalidInput = errors.New("nil buffer")

	// ErrUnterminated is returned when a buffer has no NUL sentinel.
	ErrUnterminated = errors.New("buffer is not NUL-terminated")
)

// Terminate returns a new NUL-terminated copy of s.
func Terminate(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf
}

// Scan returns the characters of buf up to (not including) the first NUL.
// Unlike C's strlen, the scan is bounded by len(buf): a buffer with no
// sentinel is rejected with ErrUnterminated instead of reading past the end.
func Scan(buf []byte) (string, error) {
	if buf == nil {
		return "", ErrInvalidInput
	}
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return "", fmt.Errorf("scan %d bytes: %w", len(buf), ErrUnterminated)
	}
	return string(buf[:i]), nil
}

// JoinTerminated concatenates two NUL-terminated buffers into a freshly
// allocated NUL-terminated buffer: the characters of a, then the characters
// of b, then the sentinel. The result is exactly len1+len2+1 bytes, owns its
// storage, and shares nothing with the inputs.
func JoinTerminated(a, b []byte) ([]byte, error) {
	s1, err := Scan(a)
	if err != nil {
		return nil, fmt.Errorf("first input: %w", err)
	}
	s2, err := Scan(b)
	if err != nil {
		return nil, fmt.Errorf("second input: %w", err)
	}

	buf := make([]byte, len(s1)+len(s2)+1)
	copy(buf, s1)
	copy(buf[len(s1):], s2)
	// make zero-fills, so buf[len(s1)+len(s2)] is already the sentinel.
	return buf, nil
}
