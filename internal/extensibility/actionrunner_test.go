package extensibility

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggingHandlerCallsInnerAndReturnsItsResult(t *testing.T) {
	calls := 0
	inner := HandlerFunc(func(hsm any, event any) any {
		calls++
		return "directive"
	})

	h := NewLoggingHandler(zerolog.Nop(), "s1", inner)
	result := h.Call("hsm", "event")

	require.Equal(t, 1, calls)
	require.Equal(t, "directive", result)
}
