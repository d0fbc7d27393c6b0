package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"bmicalc/internal/bmi"
	"bmicalc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	calcFeet   string
	calcInches string
	calcWeight string
	calcStrict bool
	calcJSON   bool
)

// calcCmd computes BMI once, without the form
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute BMI once from flags",
	Long: `Computes BMI from the given height and weight and prints the value
and category. Validation problems are reported as errors.`,
	Example: `  bmicalc calc --feet 5 --inches 7 --weight 70
  bmicalc calc --feet 6 --inches 0 --weight 50 --json`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	initLogging(cfg, path)
	defer logging.CloseAll()

	engine := bmi.Engine{StrictNumbers: cfg.Engine.StrictNumbers}
	if cmd.Flags().Changed("strict") {
		engine.StrictNumbers = calcStrict
	}

	res, err := engine.Compute(calcFeet, calcInches, calcWeight)
	if err != nil {
		var verr *bmi.ValidationError
		if errors.As(err, &verr) {
			logger.Info("Calculation refused", zap.Stringer("kind", verr.Kind))
			logging.CLI("calc refused: kind=%s", verr.Kind)
		}
		return err
	}
	logging.CLI("calc: bmi=%s category=%s strict=%v", res.BMI, res.Category, engine.StrictNumbers)
	logger.Debug("Calculated",
		zap.String("bmi", res.BMI),
		zap.String("category", string(res.Category)),
		zap.Bool("strict", engine.StrictNumbers),
	)

	out := cmd.OutOrStdout()
	if calcJSON {
		return json.NewEncoder(out).Encode(res)
	}
	_, err = fmt.Fprintf(out, "BMI: %s (%s)\n", res.BMI, res.Category)
	return err
}
