package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/config"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "imtgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:           "imtgo",
	Short:         "Portuguese property transfer tax calculator",
	Long:          "Calculates IMT and stamp duty on Portuguese property purchases, with district lookups and listing helpers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newCalculator builds a calculator from the --rules file, or the built-in
// tables when none is given
func newCalculator(cmd *cobra.Command) (*calculation.Calculator, error) {
	rulesFile, _ := cmd.Flags().GetString("rules")
	debugMode, _ := cmd.Flags().GetBool("debug")

	calc := calculation.NewCalculator()
	if rulesFile != "" {
		rules, err := config.NewRulesParser().LoadFromFile(rulesFile)
		if err != nil {
			return nil, err
		}
		calc = calculation.NewCalculatorWithRules(*rules)
	}
	if debugMode {
		calc.SetLogger(simpleCLILogger{})
	}
	return calc, nil
}

// parseAmount parses a monetary command-line argument
func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: must be a number", name, s)
	}
	if err := domain.CheckAmount(d); err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of calculations")
	rootCmd.PersistentFlags().String("rules", "", "Fiscal rules YAML file (defaults to the built-in 2024 tables)")

	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
