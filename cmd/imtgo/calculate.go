package main

import (
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/imtgo/internal/breakeven"
	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/rgehrsitz/imtgo/internal/output"
	"github.com/spf13/cobra"
)

var imtCmd = &cobra.Command{
	Use:   "imt [property-value]",
	Short: "Calculate IMT for a property value",
	Long: `Calculate the municipal property transfer tax (IMT) for a purchase.

Property types: residential, secondary-home, commercial, land.
Locations: mainland, madeira, azores. The island reduction applies outside the mainland.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseAmount("property value", args[0])
		if err != nil {
			return err
		}
		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}

		propertyType, _ := cmd.Flags().GetString("type")
		location, _ := cmd.Flags().GetString("location")
		showBreakdown, _ := cmd.Flags().GetBool("breakdown")
		format, _ := cmd.Flags().GetString("format")

		result := calc.CalculateIMT(value, domain.PropertyType(propertyType), domain.Location(location))
		if format == "json" {
			return writeJSON(cmd, result)
		}

		var parts []domain.BracketContribution
		if showBreakdown {
			parts = calc.Breakdown(value, domain.PropertyType(propertyType))
		}
		output.WriteIMTResult(cmd.OutOrStdout(), result, parts)
		return nil
	},
}

var stampDutyCmd = &cobra.Command{
	Use:   "stamp-duty [loan-amount]",
	Short: "Calculate stamp duty on a mortgage loan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loan, err := parseAmount("loan amount", args[0])
		if err != nil {
			return err
		}
		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stamp duty on %s loan: %s\n",
			output.FormatCurrency(loan), output.FormatCurrency(calc.CalculateStampDuty(loan)))
		return nil
	},
}

var costsCmd = &cobra.Command{
	Use:   "costs [property-value]",
	Short: "Summarise IMT and stamp duty for a purchase",
	Args:  cobra.ExactArgs(1),
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
		format, _ := cmd.Flags().GetString("format")

		costs := calc.CalculatePurchaseCosts(value, loan, domain.PropertyType(propertyType), domain.Location(location))
		if format == "json" {
			return writeJSON(cmd, costs)
		}
		output.WritePurchaseCosts(cmd.OutOrStdout(), costs)
		return nil
	},
}

var affordCmd = &cobra.Command{
	Use:   "afford [budget]",
	Short: "Find the most expensive property a cash budget can buy",
	Long: `Find the highest purchase price whose total cost fits the budget.

The budget covers the price, IMT and stamp duty on the deed and on the loan.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		budget, err := parseAmount("budget", args[0])
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
		format, _ := cmd.Flags().GetString("format")

		result, err := breakeven.NewDefaultSolver(calc).MaxPropertyValue(cmd.Context(), breakeven.AffordabilityRequest{
			Budget:       budget,
			LoanAmount:   loan,
			PropertyType: domain.PropertyType(propertyType),
			Location:     domain.Location(location),
		})
		if err != nil {
			return err
		}
		if format == "json" {
			return writeJSON(cmd, result)
		}
		breakeven.WriteResult(cmd.OutOrStdout(), result)
		return nil
	},
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	for _, c := range []*cobra.Command{imtCmd, costsCmd, affordCmd} {
		c.Flags().StringP("type", "t", string(domain.PropertyResidential), "Property type: residential, secondary-home, commercial, land")
		c.Flags().StringP("location", "l", string(domain.LocationMainland), "Location: mainland, madeira, azores")
		c.Flags().StringP("format", "f", "console", "Output format: console or json")
	}
	imtCmd.Flags().BoolP("breakdown", "b", false, "Show the tax contributed by each bracket")
	costsCmd.Flags().String("loan", "0", "Mortgage loan amount")
	affordCmd.Flags().String("loan", "0", "Mortgage loan amount")

	rootCmd.AddCommand(imtCmd)
	rootCmd.AddCommand(stampDutyCmd)
	rootCmd.AddCommand(costsCmd)
	rootCmd.AddCommand(affordCmd)
}
