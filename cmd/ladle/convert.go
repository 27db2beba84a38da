package main

import (
	"fmt"

	"github.com/ladle-app/backend/internal/domain"
	"github.com/ladle-app/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var convertTarget string

var convertCmd = &cobra.Command{
	Use:   "convert [line...]",
	Short: "Convert ingredient lines between volume and weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := domain.System(convertTarget)
		if target != domain.SystemWeight && target != domain.SystemVolume {
			return fmt.Errorf("target must be weight or volume, got %q", convertTarget)
		}

		lines, err := readLines(args)
		if err != nil {
			return err
		}

		for _, line := range lines {
			parsed := usecase.ParseIngredientLine(line)
			converted := usecase.ConvertIngredient(parsed, target)
			if converted == nil {
				fmt.Printf("%s  (not convertible)\n", line)
				continue
			}
			fmt.Printf("%s %s\n", converted.Display, parsed.Name)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertTarget, "target", "t", "", "Target system: weight or volume")
	rootCmd.AddCommand(convertCmd)
}
