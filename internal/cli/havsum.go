package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/artemijrodionov/haversine/internal/answers"
	"github.com/artemijrodionov/haversine/internal/buildinfo"
	"github.com/artemijrodionov/haversine/internal/config"
	"github.com/artemijrodionov/haversine/internal/haversine"
	"github.com/artemijrodionov/haversine/internal/logging"
	"github.com/artemijrodionov/haversine/internal/pairs"
	"github.com/artemijrodionov/haversine/internal/profile"
)

func ExecuteSum(args []string) int {
	cmd := NewSumCmd()
	cmd.SetArgs(args[1:])
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func NewSumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "havsum <haversine_input.json> [answers.f64]",
		Short:        "Average the reference haversine over a generated pairs document",
		Version:      buildinfo.String(),
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), "")
			if err != nil {
				return err
			}
			log := logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

			answersPath := ""
			if len(args) > 1 {
				answersPath = args[1]
			}
			return Sum(cmd.OutOrStdout(), args[0], answersPath, log)
		},
	}

	cmd.Flags().String("log-level", "warn", "log level: debug|info|warn|error")
	cmd.Flags().String("log-format", "text", "log format: text|json")
	return cmd
}

// Sum reads the document at inputPath, prints its average haversine and,
// when answersPath is set, how far it is from the reference answers.
func Sum(w io.Writer, inputPath, answersPath string, log *slog.Logger) error {
	prof := profile.New(log)

	stop := prof.Time("Read")
	data, err := os.ReadFile(inputPath)
	stop()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	stop = prof.Time("Parse")
	var ps []pairs.Pair
	_, err = pairs.Read(bytes.NewReader(data), func(p pairs.Pair) error {
		ps = append(ps, p)
		return nil
	})
	stop()
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}

	stop = prof.Time("Sum")
	var avg haversine.Average
	for _, p := range ps {
		avg.Add(haversine.Reference(p.X0, p.Y0, p.X1, p.Y1))
	}
	stop()

	rw := &reportWriter{w: w}
	rw.printf("Input size: %d\n", len(data))
	rw.printf("Pair count: %d\n", avg.Count())
	rw.printf("Haversine sum: %v\n", avg.Value())

	if answersPath != "" {
		ref, err := readAnswers(answersPath)
		if err != nil {
			return err
		}
		if len(ref.Values) != avg.Count() {
			log.Warn("havsum.answer_count_mismatch", "answers", len(ref.Values), "pairs", avg.Count())
		}
		rw.printf("\nValidation:\n")
		rw.printf("Reference sum: %v\n", ref.Average)
		rw.printf("Difference: %v\n", avg.Value()-ref.Average)
	}
	if rw.err != nil {
		return fmt.Errorf("write report: %w", rw.err)
	}

	return prof.Report(w)
}

// reportWriter keeps the first write error and skips later writes.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func readAnswers(path string) (answers.Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return answers.Answers{}, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()

	ref, err := answers.Read(f)
	if err != nil {
		return answers.Answers{}, fmt.Errorf("%s: %w", path, err)
	}
	return ref, nil
}
