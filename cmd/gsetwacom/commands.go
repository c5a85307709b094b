package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gsetwacom/gsetwacom/internal/discovery"
	"github.com/gsetwacom/gsetwacom/internal/monitor"
	"github.com/gsetwacom/gsetwacom/internal/ui"
)

// monitorsFile switches the monitor source from the live display service to
// a static YAML file. Shared by list-monitors and tablet map-to-monitor.
var monitorsFile string

func init() {
	rootCmd.AddCommand(listTabletsCmd)
	rootCmd.AddCommand(listStyliCmd)
	rootCmd.AddCommand(listMonitorsCmd)

	listMonitorsCmd.Flags().StringVar(&monitorsFile, "monitors-file", "", "read monitors from a YAML file instead of the display service")
}

var listTabletsCmd = &cobra.Command{
	Use:   "list-tablets",
	Short: "List tablet devices found on this system",
	Long: `List all potential tablet devices found on this system.

This uses the udev database; a device listed here may not be available in
the compositor and/or currently have configuration set.`,
	Args: cobra.NoArgs,
	RunE: runListTablets,
}

func runListTablets(cmd *cobra.Command, args []string) error {
	tablets, err := discovery.NewEnumerator(log).Tablets()
	if err != nil {
		return err
	}

	if len(tablets) == 0 {
		fmt.Println("No devices found")
		return nil
	}

	ui.Headerf("devices:")
	for _, tablet := range tablets {
		fmt.Printf("- name: %q\n", tablet.Name)
		fmt.Printf("  usbid: %q\n", tablet.USBID())
	}
	return nil
}

var listStyliCmd = &cobra.Command{
	Use:   "list-styli",
	Short: "List styli previously seen on this system",
	Long: `List the styli previously seen on this system.

Only styli with unique serial numbers are listed. This uses the
gnome-control-center cache file; a stylus may not appear until it has been
brought into proximity above the control center.`,
	Args: cobra.NoArgs,
	RunE: runListStyli,
}

func runListStyli(cmd *cobra.Command, args []string) error {
	path, err := discovery.StylusCacheFile()
	if err != nil {
		return err
	}
	serials, err := discovery.Styli(path)
	if err != nil {
		return err
	}

	if len(serials) == 0 {
		fmt.Println("No styli found")
		return nil
	}

	ui.Headerf("styli:")
	for _, serial := range serials {
		fmt.Printf(" - serial number: %s\n", serial)
	}
	return nil
}

var listMonitorsCmd = &cobra.Command{
	Use:   "list-monitors",
	Short: "List monitors in the current display configuration",
	Long: `List the monitors the display configuration currently knows about.

Each entry shows the attributes accepted by 'tablet map-to-monitor'.`,
	Args: cobra.NoArgs,
	RunE: runListMonitors,
}

func runListMonitors(cmd *cobra.Command, args []string) error {
	monitors, err := monitorSource().Monitors(cmd.Context())
	if err != nil {
		return err
	}

	if len(monitors) == 0 {
		fmt.Println("No monitors found")
		return nil
	}

	ui.Headerf("monitors:")
	for _, m := range monitors {
		fmt.Printf("- connector: %s\n", m.Connector)
		fmt.Printf("  vendor: %s\n", m.Vendor)
		fmt.Printf("  product: %s\n", m.Product)
		fmt.Printf("  serial: %s\n", m.Serial)
	}
	return nil
}

func monitorSource() monitor.Source {
	if monitorsFile != "" {
		return monitor.FileSource{Path: monitorsFile}
	}
	return monitor.NewDisplayConfig(log)
}
