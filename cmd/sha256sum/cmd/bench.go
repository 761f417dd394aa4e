package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tunaminer/sha256x"
)

type benchResult struct {
	unroll sha256x.Unroll
	bytes  int64
	dur    time.Duration
}

func (r benchResult) mbps() float64 {
	if r.dur <= 0 {
		return 0
	}
	return float64(r.bytes) / r.dur.Seconds() / 1e6
}

func newBenchCmd(log *logrus.Logger) *cobra.Command {
	var size, iterations int

	bench := &cobra.Command{
		Use:   "bench",
		Short: "Measure throughput of every compression variant.",
		Long: "Hashes a buffer repeatedly with each unroll factor and prints MB/s,\n" +
			"so the fastest factor for this machine can be passed to --unroll.\n",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 || iterations <= 0 {
				return fmt.Errorf("size and iterations must be positive")
			}

			out := cmd.OutOrStdout()
			for _, r := range runBench(size, iterations) {
				log.WithFields(logrus.Fields{
					"unroll":   r.unroll,
					"duration": r.dur,
				}).Debug("bench finished")
				fmt.Fprintf(out, "%-4s %10.2f MB/s\n", r.unroll, r.mbps())
			}
			fmt.Fprintf(out, "default: %s\n", sha256x.DefaultUnroll())
			return nil
		},
	}

	bench.Flags().IntVarP(&size, "size", "s", 64*1024, "bytes hashed per iteration")
	bench.Flags().IntVarP(&iterations, "iterations", "n", 256, "iterations per variant")
	return bench
}

func runBench(size, iterations int) []benchResult {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(i)
	}

	var results []benchResult
	for _, u := range sha256x.Unrolls() {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			_, _ = sha256x.SumUnrolled(u, buf)
		}
		results = append(results, benchResult{
			unroll: u,
			bytes:  int64(size) * int64(iterations),
			dur:    time.Since(start),
		})
	}
	return results
}
