// Command txproc reads a delimited transaction file and prints the final
// per-account balance report on stdout.
//
// Usage:
//
//	txproc <input-file>
//
// Diagnostics go to stderr so the report stays pipeable. Set TXPROC_LOG to
// debug to see dropped records; set GOMAXPROCS=1 to multiplex all account
// workers on a single OS thread (results are identical either way).
package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iulianbarbu/transaction-processor/internal/engine"
	"github.com/iulianbarbu/transaction-processor/internal/input"
	"github.com/iulianbarbu/transaction-processor/internal/report"
)

// exampleInput is echoed with usage errors so a bad invocation shows what a
// well-formed file looks like.
const exampleInput = `type,client,tx,amount
deposit,1,1,1.0
withdrawal,1,2,0.5
deposit,2,3,1.0
dispute,2,3
resolve,2,3
dispute,2,3
chargeback,2,3`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	if len(args) != 1 {
		logger.Error("invalid arguments: expected exactly one input file path",
			zap.String("example_input", exampleInput))
		return 1
	}

	src, err := input.Open(args[0])
	if err != nil {
		logger.Error("could not open input",
			zap.String("path", args[0]),
			zap.Error(err),
			zap.String("example_input", exampleInput))

		return 1
	}
	defer func() { _ = src.Close() }()

	results := engine.NewRouter(engine.Config{Logger: logger}).Process(src)

	if err := report.Write(stdout, results); err != nil {
		logger.Error("could not write report", zap.Error(err))
		return 1
	}

	return 0
}

// newLogger builds a console logger on stderr, tagged with a per-run id so
// interleaved invocations can be told apart. TXPROC_LOG overrides the info
// default level.
func newLogger() *zap.Logger {
	level := zapcore.InfoLevel
	if raw := os.Getenv("TXPROC_LOG"); raw != "" {
		if parsed, err := zapcore.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core).With(zap.String("run_id", uuid.NewString()))
}
