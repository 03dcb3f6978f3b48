package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/ecofootprint/internal/config"
	"github.com/rshade/ecofootprint/internal/footprint"
	"github.com/rshade/ecofootprint/internal/tui"
)

// calculateOptions holds the flags shared by the root and calculate commands.
type calculateOptions struct {
	carKm          float64
	busKm          float64
	electricityKwh float64
	diet           int
	output         string
	equivalents    bool
	useTUI         bool
}

// NewCalculateCmd creates the calculate command.
func NewCalculateCmd() *cobra.Command {
	var opts calculateOptions

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate your annual carbon footprint",
		Long: `Estimates yearly kg CO2e for transport, home energy, and diet, prints the
breakdown and total, and names the largest category with a reduction tip.

Values not given as flags are asked for interactively. Invalid answers are
rejected and asked again.`,
		Example: `  # Prompt for everything
  ecofootprint calculate

  # Fully non-interactive
  ecofootprint calculate --car-km 100 --bus-km 50 --electricity-kwh 200 --diet 1

  # Only ask for the diet
  ecofootprint calculate --car-km 0 --bus-km 0 --electricity-kwh 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, &opts)
		},
	}

	addCalculateFlags(cmd, &opts)
	return cmd
}

// addCalculateFlags registers the calculation flags on cmd.
func addCalculateFlags(cmd *cobra.Command, opts *calculateOptions) {
	cmd.Flags().Float64Var(&opts.carKm, "car-km", 0, "car distance per year in km")
	cmd.Flags().Float64Var(&opts.busKm, "bus-km", 0, "bus/train distance per year in km")
	cmd.Flags().Float64Var(&opts.electricityKwh, "electricity-kwh", 0, "electricity use per year in kWh")
	cmd.Flags().IntVar(&opts.diet, "diet", 0, "diet: 1=meat-heavy, 2=average, 3=vegetarian, 4=vegan")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: text or json (default from config)")
	cmd.Flags().BoolVar(&opts.equivalents, "equivalents", false, "also restate the total as km driven and trees grown")
	cmd.Flags().BoolVar(&opts.useTUI, "tui", false, "collect inputs with a full-screen form (terminals only)")
}

// presetFromFlags turns explicitly set flags into a Preset, validating each value.
func presetFromFlags(cmd *cobra.Command, opts *calculateOptions) (Preset, error) {
	var preset Preset

	quantities := []struct {
		flag  string
		value float64
		dst   **float64
	}{
		{"car-km", opts.carKm, &preset.CarKm},
		{"bus-km", opts.busKm, &preset.BusKm},
		{"electricity-kwh", opts.electricityKwh, &preset.ElectricityKwh},
	}
	for _, q := range quantities {
		if !cmd.Flags().Changed(q.flag) {
			continue
		}
		if err := footprint.ValidateQuantity(q.value); err != nil {
			return Preset{}, fmt.Errorf("invalid --%s %v: %w", q.flag, q.value, err)
		}
		v := q.value
		*q.dst = &v
	}

	if cmd.Flags().Changed("diet") {
		d := footprint.DietChoice(opts.diet)
		if !d.Valid() {
			return Preset{}, fmt.Errorf("invalid --diet %d: %w", opts.diet, footprint.ErrDietOutOfRange)
		}
		preset.Diet = &d
	}

	return preset, nil
}

// runCalculate collects inputs, computes the breakdown and recommendation,
// and renders the report.
func runCalculate(cmd *cobra.Command, opts *calculateOptions) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	format := cfg.Output.Format
	if opts.output != "" {
		format = opts.output
	}
	if format != config.FormatText && format != config.FormatJSON {
		return fmt.Errorf("invalid --output %q: must be %q or %q", format, config.FormatText, config.FormatJSON)
	}
	showEquivalents := cfg.Output.Equivalents || opts.equivalents

	preset, err := presetFromFlags(cmd, opts)
	if err != nil {
		return err
	}

	// Prompts must not end up inside a JSON document on stdout.
	var promptOut io.Writer = cmd.OutOrStdout()
	if format == config.FormatJSON {
		promptOut = cmd.ErrOrStderr()
	}

	var inputs footprint.Inputs
	switch {
	case preset.Complete():
		inputs = preset.Inputs()
	case opts.useTUI && preset.Empty() && tui.IsTTY():
		logger.Debug().Ctx(ctx).Msg("collecting inputs with wizard")
		inputs, err = tui.RunWizard(ctx, cmd.InOrStdin(), promptOut)
		if err != nil {
			return err
		}
	default:
		if opts.useTUI {
			logger.Debug().Ctx(ctx).Msg("wizard unavailable, falling back to line prompts")
		}
		inputs, err = NewPrompter(cmd.InOrStdin(), promptOut).Collect(ctx, preset)
		if err != nil {
			return fmt.Errorf("collecting inputs: %w", err)
		}
	}

	calc := footprint.NewCalculator(footprint.DefaultFactors())
	breakdown := calc.Compute(inputs)
	rec := footprint.Suggest(breakdown)

	logger.Info().Ctx(ctx).
		Float64("transport_kg", breakdown.Transport).
		Float64("home_energy_kg", breakdown.HomeEnergy).
		Float64("diet_kg", breakdown.Diet).
		Float64("total_kg", breakdown.Total()).
		Str("top_category", rec.Category.String()).
		Msg("footprint computed")

	report := tui.Report{
		Inputs:         inputs,
		Breakdown:      breakdown,
		Recommendation: rec,
	}
	if showEquivalents {
		eq := footprint.Equivalents(breakdown.Total(), calc.Factors())
		report.Equivalents = &eq
	}

	return RenderReport(cmd.OutOrStdout(), report, RenderOptions{
		Format: format,
		Color:  cfg.Output.Color,
	})
}
