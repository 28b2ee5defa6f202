package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/artemijrodionov/haversine/internal/answers"
	"github.com/artemijrodionov/haversine/internal/buildinfo"
	"github.com/artemijrodionov/haversine/internal/config"
	"github.com/artemijrodionov/haversine/internal/haversine"
	"github.com/artemijrodionov/haversine/internal/logging"
	"github.com/artemijrodionov/haversine/internal/pairs"
)

// ExecuteGenerate runs gogen with os.Args-style args and returns the exit code.
func ExecuteGenerate(args []string) int {
	cmd := NewGenerateCmd(args[0])
	cmd.SetArgs(positionalNegatives(cmd.Flags(), args[1:]))
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// NewGenerateCmd builds the gogen command. prog is echoed in the usage line.
func NewGenerateCmd(prog string) *cobra.Command {
	var configPath string
	method := pairs.Uniform

	cmd := &cobra.Command{
		Use:          "gogen [data set size]",
		Short:        "Generate random coordinate pairs for the haversine benchmark",
		Version:      buildinfo.String(),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// only the first argument is the size; the rest are ignored
			if len(args) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "usage: %s [data set size]\n", prog)
				return err
			}

			count, err := pairs.ParseSize(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			log := logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			log.Debug("gogen.config", "config", cfg.String())

			gen, err := NewGenerator(cfg, log)
			if err != nil {
				return err
			}
			return gen.Run(count, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.Uint64("seed", 0, "random seed (random when omitted)")
	flags.Var(&method, "method", "how to sample coordinates: "+pairs.AllMethods().String())
	flags.Int("clusters", pairs.DefaultClusters, "number of clusters for the cluster method")
	flags.String("out", "-", "document destination, - for stdout")
	flags.String("answers", "", "write reference haversine answers to this file")
	flags.String("log-level", "warn", "log level: debug|info|warn|error")
	flags.String("log-format", "text", "log format: text|json")
	flags.StringVar(&configPath, "config", "", "config file (default ./haversine.yaml when present)")

	return cmd
}

// positionalNegatives moves negative integer arguments behind a "--" so the
// flag parser reads "gogen -5" as a size rather than a shorthand flag.
// Values of flags that take one (--seed -5) are left in place.
func positionalNegatives(flags *pflag.FlagSet, args []string) []string {
	var rest, negatives, tail []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			tail = args[i+1:]
			break
		}
		if isNegativeInt(a) {
			negatives = append(negatives, a)
			continue
		}
		rest = append(rest, a)
		if name, ok := strings.CutPrefix(a, "--"); ok && !strings.Contains(name, "=") {
			if f := flags.Lookup(name); f != nil && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				rest = append(rest, args[i])
			}
		}
	}
	if len(negatives) == 0 && tail == nil {
		return args
	}
	out := append(rest, "--")
	out = append(out, negatives...)
	return append(out, tail...)
}

func isNegativeInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n < 0
}

type Generator struct {
	cfg     *config.Config
	seed    uint64
	sampler pairs.Sampler
	log     *slog.Logger
}

func NewGenerator(cfg *config.Config, log *slog.Logger) (*Generator, error) {
	seed := cfg.Seed
	if !cfg.Seeded {
		seed = pairs.RandomSeed()
	}
	sampler, err := pairs.NewSampler(cfg.SamplingMethod(), pairs.NewRand(seed), cfg.Clusters)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, seed: seed, sampler: sampler, log: log}, nil
}

// Run writes count pairs to the configured destination, stdout when it is "-".
// A summary goes to stderr only when the document or answers go to files.
func (g *Generator) Run(count int, stdout, stderr io.Writer) (err error) {
	out := stdout
	if g.cfg.Out != "-" {
		f, cerr := os.Create(g.cfg.Out)
		if cerr != nil {
			return fmt.Errorf("create document: %w", cerr)
		}
		defer closeFile(f, &err)
		out = f
	}

	var aw *answers.Writer
	if g.cfg.Answers != "" {
		f, cerr := os.Create(g.cfg.Answers)
		if cerr != nil {
			return fmt.Errorf("create answers: %w", cerr)
		}
		defer closeFile(f, &err)
		aw = answers.NewWriter(f)
	}

	var avg haversine.Average
	visit := func(p pairs.Pair) error {
		d := haversine.Reference(p.X0, p.Y0, p.X1, p.Y1)
		avg.Add(d)
		if aw != nil {
			return aw.Add(d)
		}
		return nil
	}

	if err := pairs.Generate(out, count, g.sampler, visit); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if aw != nil {
		if err := aw.Finish(); err != nil {
			return fmt.Errorf("write answers: %w", err)
		}
	}

	g.log.Info("gogen.done", "method", g.cfg.Method, "seed", g.seed, "pairs", avg.Count(), "out", g.cfg.Out)

	if g.cfg.Out != "-" || g.cfg.Answers != "" {
		return g.summary(stderr, avg)
	}
	return nil
}

func (g *Generator) summary(w io.Writer, avg haversine.Average) error {
	_, err := fmt.Fprintf(w, "Method: %s\nRandom seed: %d\nPair count: %d\nExpected sum: %v\n",
		g.cfg.Method, g.seed, avg.Count(), avg.Value())
	return err
}

func closeFile(f *os.File, errp *error) {
	if cerr := f.Close(); cerr != nil && *errp == nil {
		*errp = cerr
	}
}
