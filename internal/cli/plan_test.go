package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/pie"
)

func TestFormatLeader(t *testing.T) {
	assert.Equal(t, "-", formatLeader(nil))
	l := &pie.Leader{Start: pie.Point{X: 0.5, Y: 0.866}, End: pie.Point{X: 0.65, Y: 1.2}}
	assert.Equal(t, "(0.500, 0.866) → (0.650, 1.200)", formatLeader(l))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 chart", plural(1, "chart"))
	assert.Equal(t, "0 labels", plural(0, "label"))
	assert.Equal(t, "11 charts", plural(11, "chart"))
}

func TestChartRow(t *testing.T) {
	spec, err := chart.Builtin().Get("energy")
	assert.NoError(t, err)

	row := chartRow(spec)
	assert.Equal(t, "energy", row[0])
	assert.Equal(t, "pie", row[1])
	assert.Equal(t, "3", row[2])
}

func TestDescribeCache(t *testing.T) {
	isolate(t)
	c := newTestCLI(t)
	assert.Equal(t, "No cache", describeCache(mustCache(t, c)))

	c.noCache = false
	dir, err := cacheDir()
	assert.NoError(t, err)
	assert.Equal(t, "Directory: "+dir, describeCache(mustCache(t, c)))
}
