package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/davidvella/priq/internal/bench"
	"github.com/davidvella/priq/internal/logging"
)

const (
	WorkloadFlag    = "workload"
	SizeFlag        = "size"
	IterationsFlag  = "iterations"
	ConcurrencyFlag = "concurrency"
	SampleFlag      = "sample"
	NaNRatioFlag    = "nan-ratio"
	SeedFlag        = "seed"
	ProgressFlag    = "progress"
	LogLevelFlag    = "log-level"
	LogFormatFlag   = "log-format"
	LogOutputFlag   = "log-output"
)

// flagKeys maps each run flag to the config key it overrides.
var flagKeys = map[string]string{
	WorkloadFlag:    ConfigWorkload,
	SizeFlag:        ConfigSize,
	IterationsFlag:  ConfigIterations,
	ConcurrencyFlag: ConfigConcurrency,
	SampleFlag:      ConfigSample,
	NaNRatioFlag:    ConfigNaNRatio,
	SeedFlag:        ConfigSeed,
	ProgressFlag:    ConfigProgress,
	LogLevelFlag:    ConfigLogLevel,
	LogFormatFlag:   ConfigLogFormat,
	LogOutputFlag:   ConfigLogOutput,
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a workload against the priority queue",
	Long: `Run a workload against the priority queue. Every worker builds and drains its own queues,
times the queue operations and verifies the order of what comes out.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := setupLogging(viper.GetViper()); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if viper.GetBool(ConfigProgress) {
			cfg.Progress = os.Stderr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		res, err := bench.Run(ctx, cfg)
		if err != nil {
			fmt.Println(errors.Wrap(err, "run failed"))
			os.Exit(1)
		}
		fmt.Println()
		if err := res.Render(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if res.Failed > 0 {
			fmt.Printf("%d iterations failed verification!\n", res.Failed)
			os.Exit(1)
		}
	},
}

// workloadsCmd lists the available workloads
var workloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "List available workloads",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, w := range bench.Workloads {
			fmt.Println(w)
		}
	},
}

func addRunFlags(fs *pflag.FlagSet) {
	def := bench.DefaultConfig()
	names := make([]string, len(bench.Workloads))
	for i, w := range bench.Workloads {
		names[i] = string(w)
	}
	fs.StringP(WorkloadFlag, "w", string(def.Workload), "Workload to run ("+strings.Join(names, ", ")+")")
	fs.IntP(SizeFlag, "n", def.Size, "Number of entries per queue")
	fs.IntP(IterationsFlag, "i", def.Iterations, "Iterations per worker")
	fs.IntP(ConcurrencyFlag, "p", def.Concurrency, "Number of concurrent workers")
	fs.Float64(SampleFlag, def.SampleRatio, "Fraction of iterations kept for latency percentiles")
	fs.Float64(NaNRatioFlag, def.NaNRatio, "Fraction of generated scores that are NaN")
	fs.Uint64(SeedFlag, 0, "Random seed (0 picks one from the clock)")
	fs.Bool(ProgressFlag, true, "Show a progress bar")
	fs.String(LogLevelFlag, DefaultLogLevel, "Log level (trace, debug, info, warn, error, none)")
	fs.String(LogFormatFlag, DefaultLogFormat, "Log format (text, json)")
	fs.StringSlice(LogOutputFlag, []string{"="}, `Log outputs: "-" for stdout, "=" for stderr or a file name`)
}

func bindRunFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "bind flag %s", flag)
		}
	}
	return nil
}

// loadConfig builds the run configuration from v and reports every invalid
// setting at once.
func loadConfig(v *viper.Viper) (bench.Config, error) {
	cfg := bench.Config{
		Workload:    bench.Workload(strings.ToLower(v.GetString(ConfigWorkload))),
		Size:        v.GetInt(ConfigSize),
		Iterations:  v.GetInt(ConfigIterations),
		Concurrency: v.GetInt(ConfigConcurrency),
		SampleRatio: v.GetFloat64(ConfigSample),
		NaNRatio:    v.GetFloat64(ConfigNaNRatio),
		Seed:        v.GetUint64(ConfigSeed),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func setupLogging(v *viper.Viper) error {
	var errs *multierror.Error
	if err := logging.SetOutputFormat(v.GetString(ConfigLogFormat)); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := logging.SetOutputs(v.GetStringSlice(ConfigLogOutput), 100, 3); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := logging.SetLevel(v.GetString(ConfigLogLevel)); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errors.Wrap(errs.ErrorOrNil(), "logging setup")
}

//nolint:gochecknoinits
func init() {
	addRunFlags(runCmd.Flags())
	if err := bindRunFlags(viper.GetViper(), runCmd.Flags()); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(workloadsCmd)
}
