package main

import (
	"encoding/json"
	"fmt"

	"github.com/ladle-app/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [line...]",
	Short: "Parse ingredient lines into quantity, unit and name",
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(args)
		if err != nil {
			return err
		}

		if parseJSON {
			parsed := make([]interface{}, 0, len(lines))
			for _, line := range lines {
				parsed = append(parsed, usecase.ParseIngredientLine(line))
			}
			b, err := json.MarshalIndent(parsed, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		for _, line := range lines {
			p := usecase.ParseIngredientLine(line)
			quantity := "-"
			if p.Quantity != nil {
				quantity = usecase.FormatQuantity(*p.Quantity)
			}
			fmt.Printf("%-8s %-8s %-30s %s\n", quantity, p.Unit, p.Name, p.Category)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output parsed ingredients as JSON")
	rootCmd.AddCommand(parseCmd)
}
