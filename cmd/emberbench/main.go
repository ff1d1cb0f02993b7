package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/emberdb/ember/internal/bench"
	"github.com/emberdb/ember/internal/log"
	"github.com/emberdb/ember/internal/version"
)

type config struct {
	Rows    int  `arg:"--rows,env:EMBER_BENCH_ROWS" help:"Number of rows to insert and scan" default:"10000"`
	Verbose bool `arg:"--verbose,env:EMBER_VERBOSE" help:"Write structured logs to stderr" default:"false"`
}

func (config) Version() string {
	return fmt.Sprintf("%s\n", version.BenchVersion())
}

func main() {
	cfg := config{}
	arg.MustParse(&cfg)

	logWriter := io.Writer(io.Discard)
	if cfg.Verbose {
		logWriter = os.Stderr
	}

	err := bench.Run(context.Background(), bench.Config{
		Logger: log.NewLogger(logWriter),
		Rows:   cfg.Rows,
	})
	if err != nil {
		stdlog.Fatal(err)
	}
}
