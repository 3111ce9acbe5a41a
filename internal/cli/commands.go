package cli

import (
	"fmt"

	"github.com/alexshd/extrucal"
	"github.com/alexshd/extrucal/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) screwCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screw",
		Short: "Drag-flow throughput of an extruder screw [kg/hr]",
		Args:  cobra.NoArgs,
		RunE:  a.runFlags(config.KindScrew, config.OutputValue),
	}
	floatFlags(cmd.PersistentFlags(), screwFlags)
	cmd.PersistentFlags().Int("n-flight", 1, "number of flights (1 or 2)")
	floatFlags(cmd.Flags(), map[string]string{
		"depth": "metering channel depth [mm]",
		"rpm":   "screw speed",
	})

	for _, output := range []string{config.OutputTable, config.OutputChart} {
		sub := &cobra.Command{
			Use:   output,
			Short: fmt.Sprintf("Throughput %s over channel depth and screw speed", output),
			Args:  cobra.NoArgs,
			RunE:  a.runFlags(config.KindScrew, output),
		}
		floatFlags(sub.Flags(), throughputSweepFlags)
		cmd.AddCommand(sub)
	}
	return cmd
}

func (a *app) productCommands() []*cobra.Command {
	var cmds []*cobra.Command
	for _, kind := range extrucal.ProductKinds() {
		cmds = append(cmds, a.productCommand(kind))
	}
	return cmds
}

func (a *app) productCommand(kind extrucal.ProductKind) *cobra.Command {
	k := string(kind)
	cmd := &cobra.Command{
		Use:   k,
		Short: fmt.Sprintf("Throughput a %s line consumes [kg/hr]", k),
		Args:  cobra.NoArgs,
		RunE:  a.runFlags(k, config.OutputValue),
	}
	pf := cmd.PersistentFlags()
	floatFlags(pf, productFlags[kind])
	pf.Float64("s-density", 0, "solid density [kg/m³]")
	if kind == extrucal.KindRod {
		pf.Int("no-holes", 1, "number of die holes")
	}
	cmd.Flags().Float64("l-speed", 0, "line speed [m/min]")

	for _, output := range []string{config.OutputTable, config.OutputChart} {
		sub := &cobra.Command{
			Use:   output,
			Short: fmt.Sprintf("Required screw speed %s over line speed and extruder size", output),
			Args:  cobra.NoArgs,
			RunE:  a.runFlags(k, output),
		}
		floatFlags(sub.Flags(), rpmSweepFlags)
		floatFlags(sub.Flags(), map[string]string{
			"min-l-speed":   "lowest line speed [m/min] (default: 1)",
			"max-l-speed":   "highest line speed [m/min] (default: 10)",
			"delta-l-speed": "line speed step [m/min] (default: 1)",
		})
		cmd.AddCommand(sub)
	}

	rec := &cobra.Command{
		Use:   config.OutputRecommend,
		Short: "Smallest extruder that runs the line inside the operating window",
		Args:  cobra.NoArgs,
		RunE:  a.runFlags(k, config.OutputRecommend),
	}
	floatFlags(rec.Flags(), rpmSweepFlags)
	rec.Flags().Float64("l-speed", 0, "line speed [m/min]")
	rec.Flags().Float64("min-rpm", 10, "lowest acceptable screw speed")
	rec.Flags().Float64("max-rpm", 100, "highest acceptable screw speed")
	cmd.AddCommand(rec)

	return cmd
}

func (a *app) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a calculation described in a YAML scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.Load(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("scenario loaded", "path", args[0], "kind", sc.Kind, "output", sc.Output)
			return a.execute(cmd.Context(), sc)
		},
	}
}

// runFlags turns the command line into a scenario and executes it.
func (a *app) runFlags(kind, output string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		params, err := paramsFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		sc := config.Scenario{Kind: kind, Output: output, Params: params}
		if output == config.OutputRecommend {
			minRPM, _ := cmd.Flags().GetFloat64("min-rpm")
			maxRPM, _ := cmd.Flags().GetFloat64("max-rpm")
			sc.Window = &config.Window{MinRPM: minRPM, MaxRPM: maxRPM}
		}
		if err := sc.Validate(); err != nil {
			return err
		}
		return a.execute(cmd.Context(), sc)
	}
}
