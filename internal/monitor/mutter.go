package monitor

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	displayConfigName = "org.gnome.Mutter.DisplayConfig"
	displayConfigPath = "/org/gnome/Mutter/DisplayConfig"
	getCurrentState   = displayConfigName + ".GetCurrentState"
)

// DisplayConfig sources monitors from the compositor's DisplayConfig service
// on the session bus. Monitors returns one blocking round-trip; there is no
// retry and no timeout beyond the bus's own.
type DisplayConfig struct {
	log *zap.Logger
}

// NewDisplayConfig returns a Source backed by the session display service.
func NewDisplayConfig(log *zap.Logger) *DisplayConfig {
	return &DisplayConfig{log: log}
}

// Monitors implements Source. The order of the returned specs is the order
// reported by the display service.
func (d *DisplayConfig) Monitors(ctx context.Context) ([]Spec, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(displayConfigName, dbus.ObjectPath(displayConfigPath))
	call := obj.CallWithContext(ctx, getCurrentState, 0)
	if call.Err != nil {
		return nil, fmt.Errorf("GetCurrentState failed: %w", call.Err)
	}

	// Reply layout: (serial, monitors, logical_monitors, properties).
	// Each monitor starts with its (connector, vendor, product, serial) id
	// tuple; the mode and property data after it is not needed here.
	if len(call.Body) < 2 {
		return nil, fmt.Errorf("GetCurrentState returned %d values, want at least 2", len(call.Body))
	}
	raw, err := monitorRecords(call.Body[1])
	if err != nil {
		return nil, err
	}

	specs := make([]Spec, 0, len(raw))
	for _, m := range raw {
		spec, err := monitorSpec(m)
		if err != nil {
			return nil, err
		}
		d.log.Debug("monitor reported by display service",
			zap.String("connector", spec.Connector),
			zap.String("vendor", spec.Vendor),
			zap.String("product", spec.Product),
			zap.String("serial", spec.Serial),
		)
		specs = append(specs, spec)
	}
	return specs, nil
}

func monitorRecords(body interface{}) ([][]interface{}, error) {
	switch v := body.(type) {
	case [][]interface{}:
		return v, nil
	case []interface{}:
		records := make([][]interface{}, 0, len(v))
		for _, m := range v {
			record, ok := m.([]interface{})
			if !ok {
				return nil, fmt.Errorf("unexpected monitor record type %T", m)
			}
			records = append(records, record)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("unexpected monitor list type %T", body)
	}
}

func monitorSpec(m []interface{}) (Spec, error) {
	if len(m) == 0 {
		return Spec{}, fmt.Errorf("empty monitor record")
	}
	id, ok := m[0].([]interface{})
	if !ok || len(id) < 4 {
		return Spec{}, fmt.Errorf("unexpected monitor id record %T", m[0])
	}
	fields := make([]string, 4)
	for i := 0; i < 4; i++ {
		s, ok := id[i].(string)
		if !ok {
			return Spec{}, fmt.Errorf("monitor id field %d is %T, want string", i, id[i])
		}
		fields[i] = s
	}
	return Spec{
		Connector: fields[0],
		Vendor:    fields[1],
		Product:   fields[2],
		Serial:    fields[3],
	}, nil
}
