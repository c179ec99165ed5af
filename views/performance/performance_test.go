package performance

import (
	"math/rand"
	"strings"
	"testing"

	"quantumguard-tui/guardian"

	"github.com/stretchr/testify/require"
)

func TestChart(t *testing.T) {
	require.Equal(t, "no data", Chart(nil, 30, 5, "x"))

	out := Chart([]guardian.Point{
		{Label: "a", Value: 1},
		{Label: "b", Value: 5},
		{Label: "c", Value: 3},
	}, 30, 5, "latency")
	require.Contains(t, out, "latency")
	require.GreaterOrEqual(t, strings.Count(out, "\n"), 5)
}

func TestBenchmarks(t *testing.T) {
	out := Benchmarks([]guardian.Benchmark{{Algo: "Kyber", Sign: 2, Verify: 1}}, 8)
	require.Contains(t, out, "Kyber")
	require.Contains(t, out, "████░░░░ 2.00ms")
	require.Contains(t, out, "██░░░░░░ 1.00ms")
}

func TestEngines(t *testing.T) {
	out := Engines([]guardian.Usage{{Name: "Threat Classifier", Percent: 50}}, 10)
	require.Contains(t, out, "█████░░░░░  50%")
}

func TestRender(t *testing.T) {
	out := Render(160, guardian.PerformanceSeries(rand.New(rand.NewSource(3))))
	require.Contains(t, out, "PQC Benchmarks")
	require.Contains(t, out, "Dilithium")
}
