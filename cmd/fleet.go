package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleetdecolombia/FleetMantenimiento/app"
	"github.com/fleetdecolombia/FleetMantenimiento/config"
)

var summaryDays int

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List seeded vehicles",
	RunE:  runFleetLs,
}

var fleetSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print fleet cost and availability aggregates",
	RunE:  runFleetSummary,
}

func init() {
	fleetSummaryCmd.Flags().IntVar(&summaryDays, "days", 0, "availability window in days (default: configured window)")
	fleetCmd.AddCommand(fleetLsCmd)
	fleetCmd.AddCommand(fleetSummaryCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetLs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	for _, v := range svc.Store.Vehicles() {
		status := "active"
		if !v.IsActive {
			status = "inactive"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s %s\t%s\n", v.ID, v.Name, v.Make, v.Model, status)
	}
	return nil
}

func runFleetSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	days := summaryDays
	if days <= 0 {
		days = cfg.Fleet.OEEWindowDays
	}
	sum := svc.Store.Summary(days)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "active vehicles:    %d\n", sum.ActiveVehicles)
	fmt.Fprintf(out, "open orders:        %d\n", sum.OpenOrders)
	fmt.Fprintf(out, "total cost:         %.2f\n", sum.TotalCost)
	fmt.Fprintf(out, "mean availability:  %.2f%% (%dd window)\n", sum.MeanAvailability, days)
	for _, v := range sum.Vehicles {
		fmt.Fprintf(out, "  %s\t%.2f%%\n", v.VehicleID, v.Availability)
	}
	return nil
}
