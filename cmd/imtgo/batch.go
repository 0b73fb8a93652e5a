package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/config"
	"github.com/rgehrsitz/imtgo/internal/output"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [input-file]",
	Short: "Calculate purchase taxes for every property in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := config.NewBatchParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		outFile, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")

		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unsupported format %q (available: %s; aliases: %s)", format,
				strings.Join(output.AvailableFormatterNames(), ", "),
				strings.Join(output.AvailableFormatAliases(), ", "))
		}

		report := calc.RunBatch(input)
		report.Assumptions = output.DescribeRules(calc.Rules)

		if save {
			filename, err := output.WriteFormatted(formatter, report, output.FileExtension(formatter))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			return nil
		}

		data, err := formatter.Format(report)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
		if outFile == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(outFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outFile)
		return nil
	},
}

var validateRulesCmd = &cobra.Command{
	Use:   "validate-rules [rules-file]",
	Short: "Validate a fiscal rules YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := config.NewRulesParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid (data year %d, %d schedules)\n", args[0], rules.Metadata.DataYear, len(rules.Schedules))
		for _, a := range output.DescribeRules(*rules) {
			fmt.Fprintf(cmd.OutOrStdout(), "• %s\n", a)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringP("format", "f", "console", "Output format: console, csv, json, html, summary")
	batchCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	batchCmd.Flags().Bool("save", false, "Write the report to a timestamped file in the working directory")

	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(validateRulesCmd)
}
