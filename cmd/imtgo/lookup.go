package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/imtgo/internal/district"
	"github.com/rgehrsitz/imtgo/pkg/ptutil"
	"github.com/spf13/cobra"
)

var districtsCmd = &cobra.Command{
	Use:   "districts",
	Short: "List Portuguese districts and autonomous regions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, _ := cmd.Flags().GetBool("detail")
		out := cmd.OutOrStdout()
		if !detail {
			for _, name := range district.GetAllDistricts() {
				fmt.Fprintln(out, name)
			}
			return nil
		}
		fmt.Fprintf(out, "%-18s %-5s %-10s %s\n", "District", "Code", "Region", "Cities")
		fmt.Fprintln(out, strings.Repeat("-", 70))
		for _, d := range district.All() {
			fmt.Fprintf(out, "%-18s %-5s %-10s %s\n", d.Name, d.Code, d.Region, strings.Join(d.Cities, ", "))
		}
		return nil
	},
}

var citiesCmd = &cobra.Command{
	Use:   "cities [district]",
	Short: "List the main cities of a district",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := district.GetDistrictInfo(args[0]); !ok {
			return fmt.Errorf("unknown district %q (see 'imtgo districts')", args[0])
		}
		for _, city := range district.GetCitiesByDistrict(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), city)
		}
		return nil
	},
}

var zipCmd = &cobra.Command{
	Use:   "zip [postal-code]",
	Short: "Check a Portuguese postal code (DDDD-DDD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ptutil.ValidatePortugueseZipCode(args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
			return nil
		}
		return fmt.Errorf("%s: invalid postal code, expected DDDD-DDD", args[0])
	},
}

var areaCmd = &cobra.Command{
	Use:   "area [value]",
	Short: "Convert an area between square metres and square feet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseAmount("area", args[0])
		if err != nil {
			return err
		}
		from, _ := cmd.Flags().GetString("from")
		switch from {
		case "m2":
			fmt.Fprintf(cmd.OutOrStdout(), "%s m² = %s ft²\n", value, ptutil.SquareMetersToFeet(value).StringFixed(2))
		case "ft2":
			fmt.Fprintf(cmd.OutOrStdout(), "%s ft² = %s m²\n", value, ptutil.SquareFeetToMeters(value).StringFixed(2))
		default:
			return fmt.Errorf("unknown unit %q: use m2 or ft2", from)
		}
		return nil
	},
}

var priceCmd = &cobra.Command{
	Use:   "price [amount]",
	Short: "Format an amount as a Portuguese price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount("amount", args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ptutil.FormatPortuguesePrice(amount))
		return nil
	},
}

func init() {
	districtsCmd.Flags().BoolP("detail", "d", false, "Show codes, regions and cities")
	areaCmd.Flags().String("from", "m2", "Unit of the given value: m2 or ft2")

	rootCmd.AddCommand(districtsCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(zipCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(priceCmd)
}
