package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"time"

	algocomplex "github.com/cwbudde/algo-complex"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// blockSize is the number of operand pairs each timed step walks through, so
// per-call overhead stays far below the loop body.
const blockSize = 256

// solvesPerStep is the batch size for the polynomial solvers, which are two
// orders of magnitude slower than the arithmetic operators.
const solvesPerStep = 32

var allOps = []string{
	"add", "mul", "div", "abs",
	"sqrt", "cbrt", "exp", "log",
	"sin", "cos", "tan",
	"quad", "cubic",
}

type benchResult struct {
	op        string
	precision string
	nsPerOp   float64
	minNs     float64
	maxNs     float64
}

// sink keeps accumulated results observable so the timed loops cannot be
// optimized away.
var sink any

func main() {
	var (
		opsList = flag.String("ops", "all", "comma-separated operations, or all")
		iters   = flag.Int("iters", 200, "timed repetitions per operation")
		warmup  = flag.Int("warmup", 10, "warmup repetitions")
		seed    = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	ops := resolveOps(*opsList)
	if len(ops) == 0 {
		fmt.Println("no operations specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("iters=%d warmup=%d seed=%d\n", *iters, *warmup, *seed)
	fmt.Printf("cpu features: %s\n", cpuFeatures())

	var results []benchResult

	results = append(results, benchmarkPrecision[float32](rnd, "float32", ops, *iters, *warmup)...)
	results = append(results, benchmarkPrecision[float64](rnd, "float64", ops, *iters, *warmup)...)

	sort.Slice(results, func(i, j int) bool {
		if results[i].op != results[j].op {
			return results[i].op < results[j].op
		}

		return results[i].precision < results[j].precision
	})

	fmt.Printf("%8s  %9s  %10s  %10s  %10s\n", "op", "precision", "ns/op", "min", "max")

	for _, res := range results {
		fmt.Printf("%8s  %9s  %10.1f  %10.1f  %10.1f\n",
			res.op, res.precision, res.nsPerOp, res.minNs, res.maxNs)
	}
}

func benchmarkPrecision[T algocomplex.Float](rnd *rand.Rand, precision string, ops []string, iters, warmup int) []benchResult {
	xs := randomBlock[T](rnd)
	ys := randomBlock[T](rnd)

	quadCoeffs := make([][3]T, solvesPerStep)
	for i := range quadCoeffs {
		quadCoeffs[i] = [3]T{
			T(1 + rnd.Float64()),
			T(rnd.Float64()*6 - 3),
			T(rnd.Float64()*6 - 3),
		}
	}

	cubicCoeffs := make([][4]T, solvesPerStep)
	for i := range cubicCoeffs {
		cubicCoeffs[i] = [4]T{
			T(1 + rnd.Float64()),
			T(rnd.Float64()*6 - 3),
			T(rnd.Float64()*6 - 3),
			T(rnd.Float64()*6 - 3),
		}
	}

	var acc algocomplex.Complex[T]

	var accAbs T

	unary := func(fn func(algocomplex.Complex[T]) algocomplex.Complex[T]) func() {
		return func() {
			for _, x := range xs {
				acc = acc.Add(fn(x))
			}
		}
	}

	steps := map[string]func(){
		"add": func() {
			for i, x := range xs {
				acc = acc.Add(x.Add(ys[i]))
			}
		},
		"mul": func() {
			for i, x := range xs {
				acc = acc.Add(x.Mul(ys[i]))
			}
		},
		"div": func() {
			for i, x := range xs {
				acc = acc.Add(x.Div(ys[i]))
			}
		},
		"abs": func() {
			for _, x := range xs {
				accAbs += algocomplex.Abs(x)
			}
		},
		"sqrt": unary(algocomplex.Sqrt[T]),
		"cbrt": unary(algocomplex.Cbrt[T]),
		"exp":  unary(algocomplex.Exp[T]),
		"log":  unary(algocomplex.Log[T]),
		"sin":  unary(algocomplex.Sin[T]),
		"cos":  unary(algocomplex.Cos[T]),
		"tan":  unary(algocomplex.Tan[T]),
		"quad": func() {
			for _, c := range quadCoeffs {
				roots, err := algocomplex.Quad(c[0], c[1], c[2])
				if err != nil {
					continue
				}

				acc = acc.Add(roots[0])
			}
		},
		"cubic": func() {
			for _, c := range cubicCoeffs {
				roots, err := algocomplex.Cubic(c[0], c[1], c[2], c[3])
				if err != nil {
					continue
				}

				acc = acc.Add(roots[0])
			}
		},
	}

	results := make([]benchResult, 0, len(ops))

	for _, op := range ops {
		step, ok := steps[op]
		if !ok {
			continue
		}

		perStep := blockSize
		if op == "quad" || op == "cubic" {
			perStep = solvesPerStep
		}

		nsPerOp, minNs, maxNs := timeStep(step, iters, warmup, perStep)

		results = append(results, benchResult{
			op:        op,
			precision: precision,
			nsPerOp:   nsPerOp,
			minNs:     minNs,
			maxNs:     maxNs,
		})
	}

	sink = []any{acc, accAbs}

	return results
}

// timeStep runs warmup rounds, forces a collection, then times iters rounds
// and reduces the per-round samples to mean, min, and max ns per operation.
func timeStep(step func(), iters, warmup, perStep int) (nsPerOp, minNs, maxNs float64) {
	for range warmup {
		step()
	}

	runtime.GC()

	samples := make([]float64, iters)

	for i := range samples {
		start := time.Now()
		step()
		samples[i] = float64(time.Since(start).Nanoseconds())
	}

	scale := float64(perStep)

	return stat.Mean(samples, nil) / scale,
		floats.Min(samples) / scale,
		floats.Max(samples) / scale
}

func randomBlock[T algocomplex.Float](rnd *rand.Rand) []algocomplex.Complex[T] {
	out := make([]algocomplex.Complex[T], blockSize)
	for i := range out {
		out[i] = algocomplex.New(T(rnd.Float64()*6-3), T(rnd.Float64()*6-3))
	}

	return out
}

func resolveOps(list string) []string {
	if list == "all" {
		return allOps
	}

	parts := strings.Split(list, ",")

	out := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		for _, known := range allOps {
			if part == known {
				out = append(out, part)
				break
			}
		}
	}

	return out
}

// cpuFeatures reports the SIMD capabilities of the host, which decide how the
// compiler vectorizes the componentwise loops.
func cpuFeatures() string {
	var have []string

	if cpu.X86.HasSSE2 {
		have = append(have, "sse2")
	}

	if cpu.X86.HasAVX2 {
		have = append(have, "avx2")
	}

	if cpu.X86.HasAVX512F {
		have = append(have, "avx512f")
	}

	if cpu.X86.HasFMA {
		have = append(have, "fma")
	}

	if cpu.ARM64.HasASIMD {
		have = append(have, "asimd")
	}

	if len(have) == 0 {
		return "generic"
	}

	return strings.Join(have, " ")
}
