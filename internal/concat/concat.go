// Package concat joins character sequences into freshly allocated buffers.
//
// Go strings carry their length, so the usual C preconditions (non-null,
// properly terminated inputs) are unrepresentable here. Callers that hold
// raw NUL-terminated buffers go through the explicit representation in
// cstring.go instead.
package concat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBufferLimit is returned when the joined result would exceed the
// caller-supplied buffer limit.
var ErrBufferLimit = errors.New("joined result exceeds buffer limit")

// Join returns a new string holding a followed by b.
// The result buffer is sized to exactly len(a)+len(b); inputs are never
// mutated and the result shares no storage with them.
func Join(a, b string) string {
	var sb strings.Builder
	sb.Grow(len(a) + len(b))
	sb.WriteString(a)
	sb.WriteString(b)
	return sb.String()
}

// JoinBounded is Join with a cap on the result size. A limit of zero or
// less means unbounded. Exceeding the limit reports ErrBufferLimit before
// any allocation happens.
func JoinBounded(limit int, a, b string) (string, error) {
	if limit > 0 && len(a)+len(b) > limit {
		return "", fmt.Errorf("join %d+%d bytes: %w (limit %d)", len(a), len(b), ErrBufferLimit, limit)
	}
	return Join(a, b), nil
}
