// Package shell wires the interactive ember shell together.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberdb/ember"
	"github.com/emberdb/ember/internal/log"
	"github.com/emberdb/ember/internal/shell/config"
	"github.com/emberdb/ember/internal/shell/repl"
	"github.com/emberdb/ember/internal/version"
)

// Run runs the ember shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logWriter := io.Writer(io.Discard)
	if conf.Verbose {
		logWriter = os.Stderr
	}
	logger := log.NewLogger(logWriter)

	conn, code := openConn(conf, logger)
	if code != ember.Ok {
		return fmt.Errorf("failed to open database: %s", code)
	}
	defer conn.Close()

	fmt.Println(version.ShellVersion())
	if conf.Ephemeral {
		fmt.Println("Using an ephemeral database, all data is discarded on exit")
	}

	rp := repl.NewRepl(ctx, stop, conn)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}

func openConn(conf config.Config, logger log.Logger) (*ember.Conn, ember.Code) {
	if conf.Ephemeral {
		return ember.OpenEphemeral(ember.WithLogger(logger))
	}
	return ember.Open(conf.DatabasePath, ember.WithLogger(logger))
}
