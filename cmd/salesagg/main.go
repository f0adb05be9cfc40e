// Command salesagg aggregates sale record files into revenue per category.
//
//	salesagg [-policy reject|skip] [-format json|yaml] [file.json ...]
//
// With no files, or with "-", records are read from standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"sales-analytics/internal/ingest"
	"sales-analytics/internal/services"
)

const (
	ExitSuccess           = 0
	ExitInvalidInput      = 1
	ExitInvalidInvocation = 2
)

type invocation struct {
	policy services.InvalidRecordPolicy
	format string
	paths  []string
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	inv, err := parseInvocation(args)
	if err != nil {
		fmt.Fprintf(stderr, "salesagg: %v\n", err)
		return ExitInvalidInvocation
	}

	batch, err := ingest.NewLoader(stdin).Load(ctx, inv.paths)
	if err != nil {
		fmt.Fprintf(stderr, "salesagg: %v\n", err)
		return ExitInvalidInput
	}

	result, err := services.AggregateByCategory(batch.Records, inv.policy)
	if err != nil {
		var recordErr *services.InvalidRecordError
		if errors.As(err, &recordErr) {
			if path, local, ok := batch.Locate(recordErr.Index); ok {
				fmt.Fprintf(stderr, "salesagg: %s: record %d: %s: %v\n", path, local, recordErr.Field, recordErr.Err)
				return ExitInvalidInput
			}
		}
		fmt.Fprintf(stderr, "salesagg: %v\n", err)
		return ExitInvalidInput
	}

	for _, issue := range result.Skipped {
		path, local, _ := batch.Locate(issue.Index)
		logger.Warn("sale record skipped", "file", path, "index", local, "field", issue.Field, "reason", issue.Reason)
	}

	if err := ingest.Render(stdout, result.Totals, inv.format); err != nil {
		fmt.Fprintf(stderr, "salesagg: failed to write output: %v\n", err)
		return ExitInvalidInput
	}

	return ExitSuccess
}

func parseInvocation(args []string) (invocation, error) {
	fs := flag.NewFlagSet("salesagg", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var policy, format string
	fs.StringVar(&policy, "policy", os.Getenv("AGGREGATION_INVALID_RECORD_POLICY"), "Invalid record policy: reject|skip")
	fs.StringVar(&format, "format", ingest.FormatJSON, "Output format: json|yaml")

	if err := fs.Parse(args); err != nil {
		return invocation{}, err
	}

	parsedPolicy, err := services.ParseInvalidRecordPolicy(policy)
	if err != nil {
		return invocation{}, err
	}

	parsedFormat, err := ingest.ParseFormat(format)
	if err != nil {
		return invocation{}, err
	}

	stdinArgs := 0
	for _, path := range fs.Args() {
		if path == ingest.StdinName {
			stdinArgs++
		}
	}
	if stdinArgs > 1 {
		return invocation{}, fmt.Errorf("%q given %d times: %w", ingest.StdinName, stdinArgs, ingest.ErrStdinRepeated)
	}

	return invocation{policy: parsedPolicy, format: parsedFormat, paths: fs.Args()}, nil
}
