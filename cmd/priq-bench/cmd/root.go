package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigWorkload    = "workload"
	ConfigSize        = "size"
	ConfigIterations  = "iterations"
	ConfigConcurrency = "concurrency"
	ConfigSample      = "sample"
	ConfigNaNRatio    = "nan_ratio"
	ConfigSeed        = "seed"
	ConfigProgress    = "progress"
	ConfigLogLevel    = "log.level"
	ConfigLogFormat   = "log.format"
	ConfigLogOutput   = "log.output"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	envPrefix      = "PRIQ_BENCH"
	configFileName = ".priq-bench"
)

// Version is set at build time.
var Version = "dev"

var cfgFile string

// rootCmd represents the base command when called without any sub-commands
var rootCmd = &cobra.Command{
	Use:     "priq-bench",
	Short:   "Load test the priq priority queue.",
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits
func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is $HOME/.priq-bench.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigLogLevel, DefaultLogLevel)
	v.SetDefault(ConfigLogFormat, DefaultLogFormat)
	v.SetDefault(ConfigLogOutput, []string{"="})
}

// readConfig loads file and environment settings into v. A missing default
// config file is not an error.
func readConfig(v *viper.Viper, file string) error {
	setDefaults(v)

	if file != "" {
		// Use config file from the flag.
		v.SetConfigFile(file)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(configFileName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // support nested config
	v.AutomaticEnv()                                   // read in environment variables that match

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	case errors.As(err, &notFound) && file == "":
	default:
		return fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}
