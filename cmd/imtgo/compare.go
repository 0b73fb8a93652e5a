package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/compare"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [property-value]",
	Short: "Compare purchase taxes across property types, locations and financing",
	Long: `Compare the taxes on a purchase with alternative versions of it.

By default every built-in variant that changes the purchase is compared.
Use --variants to pick specific ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseAmount("property value", args[0])
		if err != nil {
			return err
		}
		loanText, _ := cmd.Flags().GetString("loan")
		loan, err := parseAmount("loan amount", loanText)
		if err != nil {
			return err
		}
		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}

		propertyType, _ := cmd.Flags().GetString("type")
		location, _ := cmd.Flags().GetString("location")
		variants, _ := cmd.Flags().GetStringSlice("variants")
		format, _ := cmd.Flags().GetString("format")

		engine := compare.NewCompareEngine(calc)
		set, err := engine.Compare(cmd.Context(), compare.Purchase{
			Value:    value,
			Loan:     loan,
			Type:     domain.PropertyType(propertyType),
			Location: domain.Location(location),
		}, compare.CompareOptions{Variants: variants})
		if err != nil {
			return fmt.Errorf("comparison failed: %w (available: %s)", err, strings.Join(engine.Variants.SortedNames(), ", "))
		}

		var out string
		switch format {
		case "table", "console":
			out = (&compare.TableFormatter{}).Format(set)
		case "compact":
			out = (&compare.TableFormatter{}).FormatCompact(set) + "\n"
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(set)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(set)
			out += "\n"
		default:
			return fmt.Errorf("unsupported format %q (use table, compact, csv or json)", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	compareCmd.Flags().StringP("type", "t", string(domain.PropertyResidential), "Property type of the base purchase")
	compareCmd.Flags().StringP("location", "l", string(domain.LocationMainland), "Location of the base purchase")
	compareCmd.Flags().String("loan", "0", "Mortgage loan amount")
	compareCmd.Flags().StringSlice("variants", nil, "Variants to compare (default: all that change the purchase)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format: table, compact, csv, json")

	rootCmd.AddCommand(compareCmd)
}
