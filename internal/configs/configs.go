// Package configs holds the host identifiers discovered by the configure
// step: GRUB menu entry names for each operating system, and the device id
// and DisplaySwitch argument for each display.
package configs

import (
	"log/slog"
	"path/filepath"

	"my-reboot/internal/kvstorage"
	"my-reboot/internal/kvstorage/properties"
	"my-reboot/internal/options"
)

// Filename is the properties file holding the configs, inside the state
// directory.
const Filename = "my-reboot-configs.properties"

// Mapping attributes.
const (
	GrubEntryAttribute        = "grubEntry"
	DeviceIDAttribute         = "deviceId"
	DisplaySwitchArgAttribute = "displaySwitchArg"
)

// Configs binds the three mappings to one shared store.
type Configs struct {
	store            kvstorage.Store
	grubEntry        Mapping[options.OperatingSystem]
	deviceID         Mapping[options.Display]
	displaySwitchArg Mapping[options.Display]
}

// New returns Configs backed by store.
func New(store kvstorage.Store) *Configs {
	return &Configs{
		store: store,
		// Grub entries are read from grub.cfg, which only Linux can do.
		grubEntry:        NewMapping(GrubEntryAttribute, options.OperatingSystems(), options.Linux),
		deviceID:         NewMapping(DeviceIDAttribute, options.Displays(), options.Windows),
		displaySwitchArg: NewMapping(DisplaySwitchArgAttribute, options.Displays(), options.Windows),
	}
}

// Load opens the configs file in dir. See properties.Load for mustExist.
func Load(dir string, mustExist bool, logger *slog.Logger) (*Configs, error) {
	store, err := properties.Load(filepath.Join(dir, Filename), mustExist, logger)
	if err != nil {
		return nil, err
	}
	return New(store), nil
}

// Store returns the shared store.
func (c *Configs) Store() kvstorage.Store {
	return c.store
}

// OperatingSystemByGrubEntry maps a saved_entry value back to its system.
func (c *Configs) OperatingSystemByGrubEntry(entry string) (options.OperatingSystem, error) {
	return c.grubEntry.ObjectByValue(c.store, entry)
}

// GrubEntry returns the GRUB menu entry that boots os.
func (c *Configs) GrubEntry(os options.OperatingSystem) (string, error) {
	return c.grubEntry.Value(c.store, os)
}

// SetGrubEntry records the GRUB menu entry that boots os.
func (c *Configs) SetGrubEntry(os options.OperatingSystem, entry string) {
	c.grubEntry.SetValue(c.store, os, entry)
}

// DisplayByDeviceID maps an active display device id to its display.
func (c *Configs) DisplayByDeviceID(id string) (options.Display, error) {
	return c.deviceID.ObjectByValue(c.store, id)
}

// SetDeviceID records the device id of d.
func (c *Configs) SetDeviceID(d options.Display, id string) {
	c.deviceID.SetValue(c.store, d, id)
}

// DisplaySwitchArg returns the DisplaySwitch argument that activates d.
func (c *Configs) DisplaySwitchArg(d options.Display) (string, error) {
	return c.displaySwitchArg.Value(c.store, d)
}

// SetDisplaySwitchArg records the DisplaySwitch argument that activates d.
func (c *Configs) SetDisplaySwitchArg(d options.Display, arg string) {
	c.displaySwitchArg.SetValue(c.store, d, arg)
}

// Save persists the shared store.
func (c *Configs) Save() error {
	return c.store.Save()
}
