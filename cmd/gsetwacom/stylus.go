package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
	"github.com/gsetwacom/gsetwacom/internal/settings"
)

var eraser bool

var stylusCmd = &cobra.Command{
	Use:   "stylus",
	Short: "Show or change configuration for a stylus tool",
	Long: `Show or change configuration for a stylus tool.

Every subcommand takes the STYLUS identifier first: a hexadecimal tool
serial (see 'list-styli') or, for tools that do not support unique tool
serials, the vendor/product ID tuple of the tablet in the form 1234:abcd.`,
}

func init() {
	rootCmd.AddCommand(stylusCmd)

	stylusCmd.AddCommand(stylusShowCmd)
	stylusCmd.AddCommand(setPressureCurveCmd)
	stylusCmd.AddCommand(setPressureRangeCmd)
	stylusCmd.AddCommand(setStylusButtonActionCmd)

	setPressureCurveCmd.Flags().BoolVar(&eraser, "eraser", false, "change the eraser pressure curve")
	setPressureRangeCmd.Flags().BoolVar(&eraser, "eraser", false, "change the eraser pressure range")
}

func bindStylus(ctx context.Context, stylus string) (*settings.Settings, error) {
	cp, err := settings.ParseStylusID(stylus)
	if err != nil {
		return nil, err
	}
	return settings.Bind(ctx, cfgStore, cp, log)
}

var stylusShowCmd = &cobra.Command{
	Use:   "show <stylus>",
	Short: "Show the current configuration of the given stylus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bindStylus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return showSettings(cmd.Context(), s, []string{
			"pressure-curve",
			"eraser-pressure-curve",
			"pressure-range",
			"eraser-pressure-range",
			"button-action",
			"secondary-button-action",
			"tertiary-button-action",
			"button-keybinding",
			"secondary-button-keybinding",
			"tertiary-button-keybinding",
		})
	},
}

var setPressureCurveCmd = &cobra.Command{
	Use:   "set-pressure-curve <stylus> <x1> <y1> <x2> <y2>",
	Short: "Change the pressure curve of this stylus or eraser",
	Long: `Change the pressure configuration of this stylus or eraser.

The given arguments must be in the range [0, 100] and describe the two
points BC of a bezier curve ABCD where A = (0, 0) and D = (100, 100).`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		curve, err := int32Args(args[1:])
		if err != nil {
			return err
		}
		s, err := bindStylus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		key := "pressure-curve"
		if eraser {
			key = "eraser-pressure-curve"
		}
		return s.SetValue(cmd.Context(), key, curve)
	},
}

var setPressureRangeCmd = &cobra.Command{
	Use:   "set-pressure-range <stylus> <minimum> <maximum>",
	Short: "Change the pressure range of this stylus or eraser",
	Long: `Change the pressure range of this stylus or eraser.

The given arguments must be in the range [0, 100].`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := int32Args(args[1:])
		if err != nil {
			return err
		}
		s, err := bindStylus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		key := "pressure-range"
		if eraser {
			key = "eraser-pressure-range"
		}
		return s.SetValue(cmd.Context(), key, rng)
	},
}

var setStylusButtonActionCmd = &cobra.Command{
	Use:   "set-button-action <stylus> <button> <action> [keybinding]",
	Short: "Change a button action of this stylus",
	Long: `Change the button action of this stylus or eraser.

BUTTON is one of primary, secondary or tertiary. ACTION is one of left,
middle, right, back or forward; on schemas that support it, switch-monitor
and keybinding are also valid, and the keybinding argument is required for
(and only valid with) the keybinding action.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := stylusButtonPrefix(args[1])
		if err != nil {
			return err
		}
		s, err := bindStylus(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// The newer stylus schema revision carries keybinding keys along
		// with its extended action table; their presence selects the table.
		extended := s.HasKey(prefix + "-keybinding")
		binding, err := settings.StylusAction(args[2], optionalArg(args, 3), extended)
		if err != nil {
			return err
		}

		if binding.Keybinding != "" {
			if err := s.SetString(cmd.Context(), prefix+"-keybinding", binding.Keybinding); err != nil {
				return err
			}
		}
		return s.SetEnum(cmd.Context(), prefix+"-action", binding.Action)
	},
}

func stylusButtonPrefix(button string) (string, error) {
	switch button {
	case "primary":
		return "button", nil
	case "secondary":
		return "secondary-button", nil
	case "tertiary":
		return "tertiary-button", nil
	default:
		return "", fmt.Errorf("%w: stylus button must be primary, secondary or tertiary, got %q",
			settings.ErrInvalidArguments, button)
	}
}

func int32Args(args []string) (gvariant.Int32Array, error) {
	values := make(gvariant.Int32Array, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q: %w", arg, err)
		}
		values[i] = int32(v)
	}
	return values, nil
}
