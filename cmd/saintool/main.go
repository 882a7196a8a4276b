// Command saintool exercises the sain library: sort prints the suffix
// array of a file or literal argument, bench reproduces the teacher's
// random word-generation timing harness against synthetic sequences.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gtsain/sain"
)

func main() {
	if err := newRootCommandeer().cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootCommandeer struct {
	cmd     *cobra.Command
	verbose bool
}

func newRootCommandeer() *rootCommandeer {
	rc := &rootCommandeer{}
	rc.cmd = &cobra.Command{
		Use:           "saintool",
		Short:         "SA-IS suffix array construction tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rc.cmd.PersistentFlags().BoolVarP(&rc.verbose, "verbose", "v", false, "log per-level statistics")
	rc.cmd.AddCommand(newSortCommandeer(rc).cmd, newBenchCommandeer(rc).cmd)
	return rc
}

type sortCommandeer struct {
	cmd               *cobra.Command
	root              *rootCommandeer
	file              string
	intermediateCheck bool
	finalCheck        bool
}

func newSortCommandeer(root *rootCommandeer) *sortCommandeer {
	sc := &sortCommandeer{root: root}
	sc.cmd = &cobra.Command{
		Use:   "sort [text]",
		Short: "sort the suffixes of a literal string or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sc.run,
	}
	sc.cmd.Flags().StringVarP(&sc.file, "file", "f", "", "read the sequence from a file instead of the argument")
	sc.cmd.Flags().BoolVar(&sc.intermediateCheck, "intermediate-check", false, "verify ordering after every recursion level")
	sc.cmd.Flags().BoolVar(&sc.finalCheck, "final-check", false, "final-check option; the plain byte sort this command runs ignores it")
	return sc
}

func (sc *sortCommandeer) run(cmd *cobra.Command, args []string) error {
	var data []byte
	switch {
	case sc.file != "":
		b, err := os.ReadFile(sc.file)
		if err != nil {
			return fmt.Errorf("saintool: reading %s: %w", sc.file, err)
		}
		data = b
	case len(args) == 1:
		data = []byte(args[0])
	default:
		return fmt.Errorf("saintool: sort requires a literal argument or --file")
	}

	opts := sc.options()
	suf := sain.SortSuffixesPlain(data, opts...)
	fmt.Println(suf)
	return nil
}

func (sc *sortCommandeer) options() []sain.Option {
	var opts []sain.Option
	if sc.root.verbose {
		opts = append(opts, sain.WithVerbose())
	}
	if sc.intermediateCheck {
		opts = append(opts, sain.WithIntermediateCheck())
	}
	if sc.finalCheck {
		opts = append(opts, sain.WithFinalCheck())
	}
	return opts
}

// benchCommandeer reproduces the teacher's cmd/bench word-generation and
// peak-allocation sampling harness (memMonitor), against SortSuffixesPlain
// instead of SuffixSet.Build.
type benchCommandeer struct {
	cmd        *cobra.Command
	root       *rootCommandeer
	m, w       int
	runs       int
	csv        bool
	cpuprofile string
}

func newBenchCommandeer(root *rootCommandeer) *benchCommandeer {
	bc := &benchCommandeer{root: root}
	bc.cmd = &cobra.Command{
		Use:   "bench",
		Short: "benchmark suffix array construction over synthetic random text",
		RunE:  bc.run,
	}
	bc.cmd.Flags().IntVarP(&bc.m, "words", "m", 1000, "number of words to concatenate")
	bc.cmd.Flags().IntVarP(&bc.w, "wordlen", "w", 16, "length of each word")
	bc.cmd.Flags().IntVar(&bc.runs, "runs", 3, "number of runs to average")
	bc.cmd.Flags().BoolVar(&bc.csv, "csv", false, "emit comma-separated rows instead of a table")
	bc.cmd.Flags().StringVar(&bc.cpuprofile, "cpuprofile", "", "write a CPU profile to this file")
	return bc
}

// memMonitor polls runtime.MemStats on a fixed interval to sample peak
// allocation across a measured section, adapted from the teacher's
// cmd/bench harness.
type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

type benchRow struct {
	run     int
	nanos   int64
	peakRSS uint64
}

func (bc *benchCommandeer) run(cmd *cobra.Command, args []string) error {
	if bc.cpuprofile != "" {
		f, err := os.Create(bc.cpuprofile)
		if err != nil {
			return fmt.Errorf("saintool: creating cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("saintool: starting cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	rows := make([]benchRow, 0, bc.runs)
	for run := 0; run < bc.runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := make([]byte, bc.m*bc.w)
		for i := range text {
			text[i] = byte(r.Intn(26) + 'a')
		}

		runtime.GC()
		mm := newMemMonitor()
		start := time.Now()
		_ = sain.SortSuffixesPlain(text)
		dur := time.Since(start)
		peak := mm.Stop()

		rows = append(rows, benchRow{run: run, nanos: dur.Nanoseconds(), peakRSS: peak})
	}

	if bc.csv {
		for _, row := range rows {
			fmt.Printf("%d,%d,%d,%d\n", row.run, bc.m*bc.w, row.nanos, row.peakRSS)
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"run", "length", "duration", "peak alloc"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.run, bc.m * bc.w, time.Duration(row.nanos), fmt.Sprintf("%d B", row.peakRSS)})
	}
	t.Render()
	return nil
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
