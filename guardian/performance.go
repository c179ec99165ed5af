package guardian

import (
	"fmt"
	"math"
	"math/rand"
)

// Point is one labelled sample of a series
type Point struct {
	Label string
	Value float64
}

// Benchmark is the sign/verify time of a PQC scheme in milliseconds
type Benchmark struct {
	Algo   string
	Sign   float64
	Verify float64
}

// Usage is the CPU share of a guardian engine in percent
type Usage struct {
	Name    string
	Percent int
}

// Stat is a headline number on a dashboard
type Stat struct {
	Label string
	Value string
}

// Performance is everything the performance dashboard draws
type Performance struct {
	Cards   []Stat
	Latency []Point
	TPS     []Point
	PQC     []Benchmark
	Engines []Usage
}

var pqcAlgos = []string{"Dilithium", "Kyber", "SPHINCS+", "Falcon"}

// PerformanceSeries generates a fresh set of demo metrics from rng
func PerformanceSeries(rng *rand.Rand) Performance {
	p := Performance{
		Cards: []Stat{
			{"Avg Latency", "~58 ms"},
			{"Peak TPS", "~640"},
			{"CPU", "42%"},
			{"Memory", "3.1 GB"},
		},
		Engines: []Usage{
			{"Behavioral Engine", 62},
			{"Threat Classifier", 48},
			{"Signature Verifier", 35},
		},
	}

	for i := 0; i < 12; i++ {
		v := 45 + math.Round(math.Sin(float64(i))*10+rng.Float64()*8)
		p.Latency = append(p.Latency, Point{Label: fmt.Sprintf("%dm", i+1), Value: v})
	}
	for i := 0; i < 10; i++ {
		v := 520 + math.Round(math.Cos(float64(i))*60+rng.Float64()*50)
		p.TPS = append(p.TPS, Point{Label: fmt.Sprintf("T%d", i), Value: v})
	}
	for i := 0; i < 8; i++ {
		p.PQC = append(p.PQC, Benchmark{
			Algo:   pqcAlgos[i%len(pqcAlgos)],
			Sign:   2.5 + rng.Float64()*1.5,
			Verify: 1.4 + rng.Float64()*1.2,
		})
	}
	return p
}

// Values extracts the numbers of a series
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Value
	}
	return out
}
