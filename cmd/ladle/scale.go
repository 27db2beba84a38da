package main

import (
	"fmt"

	"github.com/ladle-app/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	scaleMultiplier float64
	scaleUnitMode   string
)

var scaleCmd = &cobra.Command{
	Use:   "scale [line...]",
	Short: "Scale ingredient lines by a multiplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scaleMultiplier <= 0 {
			return fmt.Errorf("multiplier must be positive, got %g", scaleMultiplier)
		}
		switch scaleUnitMode {
		case usecase.UnitModeOriginal, usecase.UnitModeWeight, usecase.UnitModeVolume:
		default:
			return fmt.Errorf("unit mode must be original, weight or volume, got %q", scaleUnitMode)
		}

		lines, err := readLines(args)
		if err != nil {
			return err
		}

		for _, scaled := range usecase.ScaleAllIngredients(lines, scaleMultiplier, scaleUnitMode) {
			fmt.Println(scaled)
		}
		return nil
	},
}

func init() {
	scaleCmd.Flags().Float64VarP(&scaleMultiplier, "multiplier", "m", 1, "Scaling multiplier (e.g. 2 to double)")
	scaleCmd.Flags().StringVarP(&scaleUnitMode, "unit", "u", usecase.UnitModeOriginal, "Unit mode: original, weight or volume")
	rootCmd.AddCommand(scaleCmd)
}
