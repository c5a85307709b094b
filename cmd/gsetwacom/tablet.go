package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
	"github.com/gsetwacom/gsetwacom/internal/monitor"
	"github.com/gsetwacom/gsetwacom/internal/settings"
	"github.com/gsetwacom/gsetwacom/internal/ui"
)

// Pad control flags
var (
	ringNumber     int
	ringDirection  string
	stripNumber    int
	stripDirection string
	padMode        int
)

// Monitor query flags
var (
	monitorVendor    string
	monitorProduct   string
	monitorSerial    string
	monitorConnector string
)

var tabletCmd = &cobra.Command{
	Use:   "tablet",
	Short: "Show or change configuration for a tablet device",
	Long: `Show or change configuration for a tablet device.

Every subcommand takes the tablet's DEVICE identifier first: a
vendor/product ID tuple in the form 1234:abcd (see 'list-tablets').`,
}

func init() {
	rootCmd.AddCommand(tabletCmd)

	tabletCmd.AddCommand(tabletShowCmd)
	tabletCmd.AddCommand(setLeftHandedCmd)
	tabletCmd.AddCommand(setKeepAspectCmd)
	tabletCmd.AddCommand(setAbsoluteCmd)
	tabletCmd.AddCommand(setAreaCmd)
	tabletCmd.AddCommand(mapToMonitorCmd)
	tabletCmd.AddCommand(setRingActionCmd)
	tabletCmd.AddCommand(setStripActionCmd)
	tabletCmd.AddCommand(setButtonActionCmd)

	mapToMonitorCmd.Flags().StringVar(&monitorVendor, "vendor", "", "monitor vendor")
	mapToMonitorCmd.Flags().StringVar(&monitorProduct, "product", "", "monitor product")
	mapToMonitorCmd.Flags().StringVar(&monitorSerial, "serial", "", "monitor serial")
	mapToMonitorCmd.Flags().StringVar(&monitorConnector, "connector", "", "monitor connector")
	mapToMonitorCmd.Flags().StringVar(&monitorsFile, "monitors-file", "", "read monitors from a YAML file instead of the display service")

	setRingActionCmd.Flags().IntVar(&ringNumber, "ring", 1, "the ring number to change")
	setRingActionCmd.Flags().IntVar(&padMode, "mode", 0, "the zero-indexed mode")
	setRingActionCmd.Flags().StringVar(&ringDirection, "direction", "cw", "the ring movement direction (cw, ccw)")

	setStripActionCmd.Flags().IntVar(&stripNumber, "strip", 1, "the strip number to change")
	setStripActionCmd.Flags().IntVar(&padMode, "mode", 0, "the zero-indexed mode")
	setStripActionCmd.Flags().StringVar(&stripDirection, "direction", "up", "the strip movement direction (up, down)")
}

// tabletPath resolves the DEVICE argument to the tablet's settings location.
func tabletPath(device string) (settings.ConfigPath, error) {
	vid, pid, err := settings.ParseDeviceID(device)
	if err != nil {
		return settings.ConfigPath{}, err
	}
	return settings.TabletPath(vid, pid), nil
}

func bindTablet(ctx context.Context, device string) (*settings.Settings, error) {
	cp, err := tabletPath(device)
	if err != nil {
		return nil, err
	}
	return settings.Bind(ctx, cfgStore, cp, log)
}

var tabletShowCmd = &cobra.Command{
	Use:   "show <device>",
	Short: "Show the current configuration of the given tablet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bindTablet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return showSettings(cmd.Context(), s, []string{
			"area", "keep-aspect", "left-handed", "mapping", "output",
		})
	},
}

// showSettings prints the keys present in the bound schema. The output
// monitor tuple is decoded into its named fields.
func showSettings(ctx context.Context, s *settings.Settings, keys []string) error {
	ui.Headerf("settings:")
	for _, key := range keys {
		if !s.HasKey(key) {
			continue
		}
		value, err := s.Get(ctx, key)
		if err != nil {
			return err
		}
		if key == "output" {
			if fields, err := gvariant.ParseStringArray(value); err == nil && len(fields) == 4 {
				ui.Entryf(2, key, "")
				ui.Entryf(4, "vendor", fields[0])
				ui.Entryf(4, "product", fields[1])
				ui.Entryf(4, "serial", fields[2])
				ui.Entryf(4, "connector", fields[3])
				continue
			}
		}
		ui.Entryf(2, key, value)
	}
	return nil
}

var setLeftHandedCmd = &cobra.Command{
	Use:   "set-left-handed <device> <true|false>",
	Short: "Change the left-handed configuration of this device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		leftHanded, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid left-handed value (use true/false): %w", err)
		}
		s, err := bindTablet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return s.SetBoolean(cmd.Context(), "left-handed", leftHanded)
	},
}

var setKeepAspectCmd = &cobra.Command{
	Use:   "set-keep-aspect <device> <true|false>",
	Short: "Change the keep-aspect configuration of this device",
	Long: `Change the keep-aspect configuration of this device.

A device with keep-aspect enabled will reduce its available area to match
the aspect ratio of the monitor it is mapped to.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keepAspect, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid keep-aspect value (use true/false): %w", err)
		}
		s, err := bindTablet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return s.SetBoolean(cmd.Context(), "keep-aspect", keepAspect)
	},
}

var setAbsoluteCmd = &cobra.Command{
	Use:   "set-absolute <device> <true|false>",
	Short: "Change between absolute and relative mapping for this device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		absolute, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid absolute value (use true/false): %w", err)
		}
		s, err := bindTablet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return s.SetEnum(cmd.Context(), "mapping", settings.TabletMapping(absolute))
	},
}

var setAreaCmd = &cobra.Command{
	Use:   "set-area <device> <x1> <y1> <x2> <y2>",
	Short: "Change the area the tablet is mapped to",
	Long:  `Change the area the tablet is mapped to. All input parameters are percentages.`,
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		area := make(gvariant.DoubleArray, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return fmt.Errorf("invalid area value %q: %w", args[i+1], err)
			}
			area[i] = v
		}
		s, err := bindTablet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return s.SetValue(cmd.Context(), "area", area)
	},
}

var mapToMonitorCmd = &cobra.Command{
	Use:   "map-to-monitor <device>",
	Short: "Map the tablet to a given monitor",
	Long: `Map the tablet to a given monitor.

The monitor may be specified with one or more of --vendor, --product,
--serial or --connector; the first monitor in display-configuration order
matching all given attributes wins. See 'list-monitors' for the values in
the current configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := monitor.Query{
			Connector: monitorConnector,
			Vendor:    monitorVendor,
			Product:   monitorProduct,
			Serial:    monitorSerial,
		}
		if query.Empty() {
			return monitor.ErrAmbiguousQuery
		}

		// Resolve the device before the display round-trip so identifier
		// errors surface without touching the session services.
		cp, err := tabletPath(args[0])
		if err != nil {
			return err
		}

		monitors, err := monitorSource().Monitors(cmd.Context())
		if err != nil {
			return err
		}
		for _, m := range monitors {
			log.Info("monitor",
				zap.String("connector", m.Connector),
				zap.String("vendor", m.Vendor),
				zap.String("product", m.Product),
				zap.String("serial", m.Serial),
			)
		}

		matched, err := monitor.Match(query, monitors)
		if err != nil {
			return err
		}

		s, err := settings.Bind(cmd.Context(), cfgStore, cp, log)
		if err != nil {
			return err
		}
		return s.SetValue(cmd.Context(), "output", matched.SettingsValue())
	},
}

var setRingActionCmd = &cobra.Command{
	Use:   "set-ring-action <device> <action> [keybinding]",
	Short: "Change the action a tablet ring is mapped to",
	Long: `Change the action the tablet ring is mapped to for a movement direction
and in a given mode.

ACTION is one of none, help, switch-monitor or keybinding; the keybinding
argument is required for (and only valid with) the keybinding action.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		binding, err := settings.PadAction(args[1], optionalArg(args, 2))
		if err != nil {
			return err
		}
		cp, err := tabletPath(args[0])
		if err != nil {
			return err
		}
		ring, err := settings.RingPath(cp, ringNumber, padMode, settings.Direction(ringDirection))
		if err != nil {
			return err
		}
		return writeAction(cmd.Context(), ring, binding)
	},
}

var setStripActionCmd = &cobra.Command{
	Use:   "set-strip-action <device> <action> [keybinding]",
	Short: "Change the action a tablet strip is mapped to",
	Long: `Change the action the tablet strip is mapped to for a movement direction
and in a given mode.

ACTION is one of none, help, switch-monitor or keybinding; the keybinding
argument is required for (and only valid with) the keybinding action.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		binding, err := settings.PadAction(args[1], optionalArg(args, 2))
		if err != nil {
			return err
		}
		cp, err := tabletPath(args[0])
		if err != nil {
			return err
		}
		strip, err := settings.StripPath(cp, stripNumber, padMode, settings.Direction(stripDirection))
		if err != nil {
			return err
		}
		return writeAction(cmd.Context(), strip, binding)
	},
}

var setButtonActionCmd = &cobra.Command{
	Use:   "set-button-action <device> <button> <action> [keybinding]",
	Short: "Change the action a tablet pad button is mapped to",
	Long: `Change the action the tablet pad button is mapped to.

BUTTON is a letter A-Z. ACTION is one of none, help, switch-monitor or
keybinding; the keybinding argument is required for (and only valid with)
the keybinding action.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		binding, err := settings.PadAction(args[2], optionalArg(args, 3))
		if err != nil {
			return err
		}
		cp, err := tabletPath(args[0])
		if err != nil {
			return err
		}
		button, err := settings.ButtonPath(cp, args[1])
		if err != nil {
			return err
		}
		return writeAction(cmd.Context(), button, binding)
	},
}

// writeAction binds the pad control path and writes the action assignment.
// The keybinding is written before the action enum so the compositor never
// observes a keybinding action without its binding.
func writeAction(ctx context.Context, cp settings.ConfigPath, binding settings.ActionBinding) error {
	s, err := settings.Bind(ctx, cfgStore, cp, log)
	if err != nil {
		return err
	}
	if binding.Keybinding != "" {
		if err := s.SetString(ctx, "keybinding", binding.Keybinding); err != nil {
			return err
		}
	}
	return s.SetEnum(ctx, "action", binding.Action)
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
