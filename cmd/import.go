package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetdecolombia/FleetMantenimiento/app"
	"github.com/fleetdecolombia/FleetMantenimiento/config"
	"github.com/fleetdecolombia/FleetMantenimiento/core/importer"
	"github.com/fleetdecolombia/FleetMantenimiento/infra/logger"
)

var importCmd = &cobra.Command{
	Use:   "import [vehicles|logs|routines] <file>",
	Short: "Bulk import CSV data and report accepted record counts",
	Args:  cobra.ExactArgs(2),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	imp := importer.New(logger.New("importer"))
	var accepted int
	switch kind {
	case "vehicles":
		accepted = len(svc.Store.BulkAddVehicles(imp.ParseVehicles(string(data))))
	case "logs":
		accepted = len(svc.Store.BulkAddLogs(imp.ParseLogs(string(data))))
	case "routines":
		accepted = len(svc.Store.BulkAddRoutines(imp.ParseRoutines(string(data))))
	default:
		return fmt.Errorf("unknown import kind %q (want vehicles, logs or routines)", kind)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d %s from %s\n", accepted, kind, path)
	return nil
}
