package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	log "github.com/harlequix/hamenc/log"
	"github.com/harlequix/hamenc/version"
)

var (
	configFile string
	profileDir string
	profiler   interface{ Stop() }
)

var logger = log.NewLogger("cli")

// rootCmd encodes; subcommands hang off it.
var rootCmd = &cobra.Command{
	Use:   "hamenc",
	Short: "Encode binary input using Hamming(31,26)",
	Long: `hamenc splits a string of binary digits into 26-bit blocks, zero-padding
the last one, and encodes every block into a 31-bit Hamming codeword with
even parity bits at positions 1, 2, 4, 8 and 16.

Examples:
  hamenc --bits 101
  hamenc --file message.txt --out codewords.txt`,
	Version:           version.Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              encode,
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	err := rootCmd.Execute()
	stopProfile()
	if err != nil {
		logger.WithError(err).Debug("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("Version: %s\nGit Commit: %s\nBuild Date: %s\nGo Version: %s\nOS / Arch: %s\n",
		version.Version, version.GitCommit, version.BuildDate, version.GoVersion, version.OsArch))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	flags.String("trace-log", "", "also write JSON logs to <path>.trace and <path>.warn")
	flags.StringVar(&profileDir, "profile", "", "write a CPU profile into this directory")

	viper.BindPFlag("log-level", flags.Lookup("log-level"))
	viper.BindPFlag("trace-log", flags.Lookup("trace-log"))
	viper.SetEnvPrefix("HAMENC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setup(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", configFile)
		}
	}
	if err := log.SetLevel(viper.GetString("log-level")); err != nil {
		return errors.Wrap(err, "setting log level")
	}
	if path := viper.GetString("trace-log"); path != "" {
		log.AddTracer(path)
	}
	if profileDir != "" {
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet, profile.NoShutdownHook)
	}
	logger.WithField("settings", viper.AllSettings()).Debug("configured")
	return nil
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
