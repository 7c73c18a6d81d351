package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"dirdiff/internal/differ"
	"dirdiff/internal/log"
	"dirdiff/internal/model"
	"dirdiff/internal/report"
	"dirdiff/internal/settings"
	"dirdiff/pkg/helpers/run"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// set with -ldflags "-X main.version=..."
var version = "v0.1"

const description = "Find difference of two directories recursively based on file size and modification time."

func main() {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(runCLI(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr, isTerminal))
}

//runCLI returns the exit code: 0 if both passes completed (whatever was found), 1 otherwise.
func runCLI(name string, args []string, stdout, stderr io.Writer, stdoutIsTerminal bool) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run.WithError(func() error {
		rootCmd := newRootCmd(name, stdout, stderr, stdoutIsTerminal)
		rootCmd.SetArgs(args)
		return rootCmd.ExecuteContext(ctx)
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, settings.ErrUsage):
		printUsage(stderr, name)
	default:
		fmt.Fprintln(stderr, err)
	}
	return 1
}

func newRootCmd(name string, stdout, stderr io.Writer, stdoutIsTerminal bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name + " [flags] <dir1> <dir2>",
		Short:         description,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	stg := settings.Bind(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := stg.Complete(args); err != nil {
			return err
		}
		return compareDirs(cmd.Context(), stg, report.NewWriter(stdout, stg.Colored(stdoutIsTerminal)))
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func compareDirs(ctx context.Context, stg *settings.Settings, w *report.Writer) error {
	logger, err := log.New(stg.LogLevel, stg.LogFile)
	if err != nil {
		return fmt.Errorf("cannot create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	runID := uuid.NewString()
	logger.Info("comparison started", log.String("run", runID),
		log.String("dirA", stg.CanonA), log.String("dirB", stg.CanonB))
	start := time.Now()

	if err := differ.New(logger, w).Run(ctx, stg.DirA, stg.DirB); err != nil {
		logger.Debug("comparison failed", log.String("run", runID), log.Cause(err))
		return err
	}

	logger.Info("comparison finished", log.String("run", runID),
		log.Int("differs", w.Count(model.Differs)), log.Int("missing", w.Count(model.Missing)),
		log.Duration("took", time.Since(start)))
	return nil
}

func printUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "\n%s %s\n", name, version)
	fmt.Fprintf(w, "\nUsage:\n\t%s <dir1> <dir2>\n", name)
	fmt.Fprintf(w, "\n%s\n\n", description)
}
