package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Device is an input device as reported by the udev database. A device
// listed here may not currently be available in the compositor or have any
// configuration set.
type Device struct {
	// Name is the kernel device name, e.g. "Wacom Intuos Pro M Pen".
	Name string

	// VendorID and ProductID are the USB IDs.
	VendorID  uint16
	ProductID uint16

	// Classification bits from the udev input properties.
	Tablet   bool
	Pad      bool
	Touchpad bool
}

// USBID returns the display form of the USB ID, e.g. "056A:0357".
func (d *Device) USBID() string {
	return fmt.Sprintf("%04X:%04X", d.VendorID, d.ProductID)
}

// Enumerator reads input devices from sysfs and the udev property database.
// The roots are configurable so tests can point it at a fixture tree.
type Enumerator struct {
	// SysfsRoot is the input class directory, /sys/class/input by default.
	SysfsRoot string

	// UdevData is the udev database directory, /run/udev/data by default.
	UdevData string

	log *zap.Logger
}

// NewEnumerator returns an Enumerator over the running system.
func NewEnumerator(log *zap.Logger) *Enumerator {
	return &Enumerator{
		SysfsRoot: "/sys/class/input",
		UdevData:  "/run/udev/data",
		log:       log,
	}
}

// Devices returns every event input device with a udev database record.
// Devices whose record cannot be read are skipped.
func (e *Enumerator) Devices() ([]Device, error) {
	entries, err := os.ReadDir(e.SysfsRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate input devices: %w", err)
	}

	var devices []Device
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "event") {
			continue
		}
		dev, err := e.readDevice(entry.Name())
		if err != nil {
			e.log.Debug("skipping input device",
				zap.String("device", entry.Name()),
				zap.Error(err),
			)
			continue
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// Tablets filters Devices down to tablets proper: tablet devices that are
// neither the pad sub-device nor a touchpad.
func (e *Enumerator) Tablets() ([]Device, error) {
	devices, err := e.Devices()
	if err != nil {
		return nil, err
	}
	var tablets []Device
	for _, d := range devices {
		if d.Tablet && !d.Pad && !d.Touchpad {
			tablets = append(tablets, d)
		}
	}
	return tablets, nil
}

func (e *Enumerator) readDevice(event string) (Device, error) {
	props, err := e.udevProperties(event)
	if err != nil {
		return Device{}, err
	}

	dev := Device{
		Tablet:   props["ID_INPUT_TABLET"] == "1",
		Pad:      props["ID_INPUT_TABLET_PAD"] == "1",
		Touchpad: props["ID_INPUT_TOUCHPAD"] == "1",
	}
	// Missing IDs parse as zero, matching devices without USB identity.
	dev.VendorID = parseHexID(props["ID_VENDOR_ID"])
	dev.ProductID = parseHexID(props["ID_MODEL_ID"])

	// The human-readable name lives on the parent input device in sysfs;
	// fall back to the NAME property of the udev record.
	name, err := os.ReadFile(filepath.Join(e.SysfsRoot, event, "device", "name"))
	if err == nil {
		dev.Name = strings.TrimSpace(string(name))
	} else {
		dev.Name = strings.Trim(props["NAME"], `"`)
	}
	return dev, nil
}

// udevProperties parses the "E:" key-value lines of the udev database record
// for an event device. Event devices are character devices with major 13;
// the record lives at <UdevData>/c13:<minor>.
func (e *Enumerator) udevProperties(event string) (map[string]string, error) {
	devNode, err := os.ReadFile(filepath.Join(e.SysfsRoot, event, "dev"))
	if err != nil {
		return nil, fmt.Errorf("no device number: %w", err)
	}
	record := filepath.Join(e.UdevData, "c"+strings.TrimSpace(string(devNode)))

	data, err := os.ReadFile(record)
	if err != nil {
		return nil, fmt.Errorf("no udev record: %w", err)
	}

	props := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "E:") {
			continue
		}
		key, value, ok := strings.Cut(line[2:], "=")
		if !ok {
			continue
		}
		props[key] = value
	}
	return props, nil
}

func parseHexID(s string) uint16 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
