package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calclabs/tnspack/internal/config"
	"github.com/calclabs/tnspack/internal/converter"
	"github.com/calclabs/tnspack/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tnspack <input> <output.tns>",
	Short: "Convert Lua/Python scripts and text notes to TI-Nspire .tns documents",
	Long: `tnspack packages a script into a .tns document loadable on TI-Nspire
calculators. The input kind is selected by extension:

  .lua  - Lua script
  .py   - Python script
  other - plain text note with LaTeX-style math notation`,
	Args: cobra.ExactArgs(2),
	RunE: convert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	// document settings
	rootCmd.Flags().String("doc-version", "0500", "document version tag (0500, or 0700 for bitmap-capable documents)")
	rootCmd.Flags().String("doc-name", "", "document name embedded in the wrapper (empty for default)")

	// other opts
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("log-output-dir", "", "directory to write log files (if set, logs are written to both stdout and file)")
	rootCmd.Flags().Bool("dry-run", false, "run the conversion without writing the output file")

	viper.BindPFlag("doc_version", rootCmd.Flags().Lookup("doc-version"))
	viper.BindPFlag("doc_name", rootCmd.Flags().Lookup("doc-name"))
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log_output_dir", rootCmd.Flags().Lookup("log-output-dir"))
	viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tnspack"))
		}
		viper.AddConfigPath("/etc/tnspack")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("TNSPACK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// convert runs the main tnspack command in order to package
// the specified script into a .tns document
func convert(cmd *cobra.Command, args []string) error {
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg.InputFile = args[0]
	cfg.OutputFile = args[1]

	if err := logging.Setup(cfg.LogLevel, cfg.LogOutputDir); err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}

	slog.Info("converting file", "input", cfg.InputFile, "output", cfg.OutputFile)

	conv, err := converter.New(cfg)
	if err != nil {
		return err
	}

	if err := conv.Convert(); err != nil {
		return err
	}

	if !cfg.DryRun {
		fmt.Printf("Created %s\n", cfg.OutputFile)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
