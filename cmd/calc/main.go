// Command calc evaluates arithmetic expressions.
//
// Expressions given as arguments are evaluated in order. With no arguments,
// calc reads one expression per line from standard input and prints each
// result or error.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arithgo/calc"
	"github.com/arithgo/calc/conf"
)

const (
	configFileEnvVariableName = "CALC_CONFIG_FILE"
	defaultConfigFileName     = "config"
)

var (
	// Version is set at build time.
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var (
	verbose bool
	format  string
)

var rootCmd = &cobra.Command{
	Use:   "calc [expression ...]",
	Short: "Evaluate arithmetic expressions",
	Long: `calc evaluates arithmetic expressions built from the operators
+ - * /, decimal numbers, and parentheses, with the usual precedence rules.

Expressions given as arguments are evaluated in order; with no arguments,
calc reads one expression per line from standard input.`,
	SilenceUsage: true,
	RunE:         run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("calc v%s\n", Version)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
		fmt.Printf("  Build Date: %s\n", BuildDate)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := conf.LoadConfiguration(configFileEnvVariableName, defaultConfigFileName)
		if err != nil {
			return err
		}
		return toml.NewEncoder(os.Stdout).Encode(config)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVar(&format, "fmt", "", "result formatting verb (overrides configuration)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func run(cmd *cobra.Command, args []string) error {
	config, err := conf.LoadConfiguration(configFileEnvVariableName, defaultConfigFileName)
	if err != nil {
		return err
	}
	setupLogging(conf.GetLoggingConfiguration(config))

	output := conf.GetOutputConfiguration(config)
	if cmd.Flags().Changed("fmt") {
		output.Format = format
	}
	verb := output.Format + "\n"

	if len(args) == 0 {
		return interact(os.Stdin, output.Prompt, verb)
	}
	for _, expr := range args {
		log.Debug().Str("expression", expr).Msg("evaluating")
		r, err := calc.Calculate(expr)
		if err != nil {
			return fmt.Errorf("%s: %w", expr, err)
		}
		fmt.Printf(verb, r)
	}
	return nil
}

// interact evaluates expressions line by line, reporting errors without
// stopping.
func interact(in io.Reader, prompt, verb string) error {
	scan := bufio.NewScanner(in)
	for {
		fmt.Print(prompt)
		if !scan.Scan() {
			fmt.Println()
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		r, err := calc.Calculate(line)
		if err != nil {
			log.Error().Err(err).Str("expression", line).Msg("evaluation failed")
			continue
		}
		fmt.Printf(verb, r)
	}
}

func setupLogging(config conf.LoggingConfiguration) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(config.LogLevel); err == nil && config.LogLevel != "" {
		level = parsed
	}
	if config.Debug || verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
