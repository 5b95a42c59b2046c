// Package state reads and changes the boot intent: which system boots
// next, which display Windows uses when it boots, and which display is
// active now.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"my-reboot/internal/configs"
	"my-reboot/internal/hostos"
	"my-reboot/internal/kvstorage"
	"my-reboot/internal/kvstorage/grubenv"
	"my-reboot/internal/kvstorage/properties"
	"my-reboot/internal/options"
	"my-reboot/internal/text"
)

const (
	// GrubEntryKey is the grubenv variable GRUB boots from.
	GrubEntryKey = "saved_entry"

	// WindowsDisplayKey holds the display code for the next Windows boot.
	WindowsDisplayKey = "windows.display"

	// OptionsFilename is the properties file holding the user options.
	OptionsFilename = "my-reboot-options.properties"

	// GrubenvFilename is the environment block inside the state dir.
	GrubenvFilename = "grubenv"

	// DefaultSwitchTimeout bounds the wait for a display switch.
	DefaultSwitchTimeout = 10 * time.Second
)

// ErrSwitchNotSupported is returned when the host cannot switch displays.
var ErrSwitchNotSupported = errors.New(text.SwitchNotSupported)

// ErrSwitchTimeout is returned when a switch was not observed in time.
var ErrSwitchTimeout = errors.New(text.SwitchTakingTooLong)

// State is a snapshot of the boot intent. Nil fields are unset; a nil
// CurrentDisplay also means the host cannot tell.
type State struct {
	NextBootOperatingSystem *options.OperatingSystem `json:"next_boot_operating_system"`
	NextWindowsBootDisplay  *options.Display         `json:"next_windows_boot_display"`
	CurrentDisplay          *options.Display         `json:"current_display"`
}

// Provider combines the boot block, the options file and the configs.
// Every mutation is saved before it returns.
type Provider struct {
	bootBlock kvstorage.Store
	options   kvstorage.Store
	configs   *configs.Configs
	switcher  hostos.DisplaySwitcher

	// SwitchTimeout bounds SetCurrentDisplay.
	SwitchTimeout time.Duration
}

// New returns a Provider over already opened stores. switcher may be nil.
func New(bootBlock, opts kvstorage.Store, cfgs *configs.Configs, switcher hostos.DisplaySwitcher) *Provider {
	return &Provider{
		bootBlock:     bootBlock,
		options:       opts,
		configs:       cfgs,
		switcher:      switcher,
		SwitchTimeout: DefaultSwitchTimeout,
	}
}

// Open loads the stores under dir. The boot block and the configs must
// exist; a missing options file is treated as empty.
func Open(dir string, switcher hostos.DisplaySwitcher, logger *slog.Logger) (*Provider, error) {
	bootBlock, err := grubenv.Load(filepath.Join(dir, GrubenvFilename))
	if err != nil {
		return nil, err
	}
	opts, err := properties.Load(filepath.Join(dir, OptionsFilename), false, logger)
	if err != nil {
		return nil, err
	}
	cfgs, err := configs.Load(dir, true, logger)
	if err != nil {
		return nil, err
	}
	return New(bootBlock, opts, cfgs, switcher), nil
}

// State computes a snapshot from the stores and the live display.
func (p *Provider) State() (State, error) {
	var s State
	var err error
	if s.NextBootOperatingSystem, err = p.NextBootOperatingSystem(); err != nil {
		return State{}, err
	}
	s.NextWindowsBootDisplay = p.NextWindowsBootDisplay()
	if s.CurrentDisplay, err = p.CurrentDisplay(); err != nil {
		return State{}, err
	}
	return s, nil
}

// NextBootOperatingSystem maps saved_entry back to its system. An
// entry that matches no configured system is a configuration error.
func (p *Provider) NextBootOperatingSystem() (*options.OperatingSystem, error) {
	entry, ok := p.bootBlock.Get(GrubEntryKey)
	if !ok {
		return nil, nil
	}
	os, err := p.configs.OperatingSystemByGrubEntry(entry)
	if err != nil {
		return nil, err
	}
	return &os, nil
}

// SetNextBootOperatingSystem points saved_entry at the entry of os.
func (p *Provider) SetNextBootOperatingSystem(os options.OperatingSystem) error {
	entry, err := p.configs.GrubEntry(os)
	if err != nil {
		return err
	}
	p.bootBlock.Set(GrubEntryKey, entry)
	return p.bootBlock.Save()
}

// UnsetNextBootOperatingSystem lets GRUB pick its default entry.
func (p *Provider) UnsetNextBootOperatingSystem() error {
	p.bootBlock.Unset(GrubEntryKey)
	return p.bootBlock.Save()
}

// NextWindowsBootDisplay returns nil when the option is absent or holds
// an unknown code.
func (p *Provider) NextWindowsBootDisplay() *options.Display {
	code, ok := p.options.Get(WindowsDisplayKey)
	if !ok {
		return nil
	}
	d, ok := options.ParseDisplay(code)
	if !ok {
		return nil
	}
	return &d
}

func (p *Provider) SetNextWindowsBootDisplay(d options.Display) error {
	p.options.Set(WindowsDisplayKey, d.Code())
	return p.options.Save()
}

func (p *Provider) UnsetNextWindowsBootDisplay() error {
	p.options.Unset(WindowsDisplayKey)
	return p.options.Save()
}

// CanSwitchDisplay reports whether the host has a display switcher.
func (p *Provider) CanSwitchDisplay() bool {
	return p.switcher != nil
}

// CurrentDisplay maps the active display id to its display. It returns
// nil without error when the host cannot switch displays.
func (p *Provider) CurrentDisplay() (*options.Display, error) {
	if p.switcher == nil {
		return nil, nil
	}
	id, err := p.switcher.ActiveDisplayID()
	if err != nil {
		return nil, err
	}
	d, err := p.configs.DisplayByDeviceID(id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SetCurrentDisplay switches to d now. The current display is always read
// live, so nothing is saved.
func (p *Provider) SetCurrentDisplay(ctx context.Context, d options.Display) error {
	if p.switcher == nil {
		return ErrSwitchNotSupported
	}
	arg, err := p.configs.DisplaySwitchArg(d)
	if err != nil {
		return err
	}
	switched, err := p.switcher.Switch(ctx, arg, p.SwitchTimeout)
	if err != nil {
		return fmt.Errorf("switching to %s: %w", d.Code(), err)
	}
	if !switched {
		return ErrSwitchTimeout
	}
	return nil
}
