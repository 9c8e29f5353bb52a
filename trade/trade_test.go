package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Long, ParseDirection("long"))
	assert.Equal(t, Long, ParseDirection(" LONG "))
	assert.Equal(t, Short, ParseDirection("short"))
	assert.Equal(t, Short, ParseDirection("Short"))

	// Legacy rows predate the direction column.
	assert.Equal(t, Unknown, ParseDirection(""))
	assert.Equal(t, Unknown, ParseDirection("sideways"))
}

func TestDirectionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "long", Long.String())
	assert.Equal(t, "short", Short.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestRealizedPnLLong(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 100.0, RealizedPnL(Long, 100, 110, 10), 1e-9)
	assert.InDelta(t, -50.0, RealizedPnL(Long, 50, 40, 5), 1e-9)
}

func TestRealizedPnLShort(t *testing.T) {
	t.Parallel()

	// Short profits when price falls.
	assert.InDelta(t, 100.0, RealizedPnL(Short, 110, 100, 10), 1e-9)
	assert.InDelta(t, -50.0, RealizedPnL(Short, 40, 50, 5), 1e-9)
}

func TestRealizedPnLBreakeven(t *testing.T) {
	t.Parallel()

	assert.Zero(t, RealizedPnL(Long, 100, 100, 10))
	assert.Zero(t, RealizedPnL(Short, 100, 100, 10))
}
