// Package script describes a set of boot intent changes, parses them from
// command-line tokens and applies them in a fixed order.
package script

import "my-reboot/internal/options"

// SetOrUnset is a change to one optional setting.
type SetOrUnset[T any] struct {
	value T
	set   bool
}

// Set returns a change that sets the setting to v.
func Set[T any](v T) *SetOrUnset[T] {
	return &SetOrUnset[T]{value: v, set: true}
}

// Unset returns a change that clears the setting.
func Unset[T any]() *SetOrUnset[T] {
	return &SetOrUnset[T]{}
}

// Value returns the value to set, or false when the change is an unset.
func (s SetOrUnset[T]) Value() (T, bool) {
	return s.value, s.set
}

// Ptr returns the value to set, or nil.
func (s SetOrUnset[T]) Ptr() *T {
	if !s.set {
		return nil
	}
	v := s.value
	return &v
}

// SetOrUnsetFrom sets the setting when v is non-nil and clears it
// otherwise.
func SetOrUnsetFrom[T any](v *T) *SetOrUnset[T] {
	if v == nil {
		return Unset[T]()
	}
	return Set(*v)
}

// SwitchKind selects the target of a display switch.
type SwitchKind int

const (
	// SwitchKindOther targets whichever display is not current.
	SwitchKindOther SwitchKind = iota + 1
	// SwitchKindDisplay targets a fixed display.
	SwitchKindDisplay
	// SwitchKindSaved targets the display saved for the next Windows boot.
	SwitchKindSaved
)

// SwitchToDisplay is a directive to switch the active display now.
type SwitchToDisplay struct {
	Kind SwitchKind
	// Display is only meaningful for SwitchKindDisplay.
	Display options.Display
}

func SwitchOther() *SwitchToDisplay {
	return &SwitchToDisplay{Kind: SwitchKindOther}
}

func SwitchTo(d options.Display) *SwitchToDisplay {
	return &SwitchToDisplay{Kind: SwitchKindDisplay, Display: d}
}

func SwitchSaved() *SwitchToDisplay {
	return &SwitchToDisplay{Kind: SwitchKindSaved}
}

// Script holds at most one change per axis. Nil axes are left alone, so
// the zero Script is a valid no-op.
type Script struct {
	NextBootOperatingSystem *SetOrUnset[options.OperatingSystem]
	NextWindowsBootDisplay  *SetOrUnset[options.Display]
	SwitchToDisplay         *SwitchToDisplay
	RebootAction            *options.RebootAction
}

// IsEmpty reports whether no axis is specified.
func (s Script) IsEmpty() bool {
	return s.NextBootOperatingSystem == nil && s.NextWindowsBootDisplay == nil &&
		s.SwitchToDisplay == nil && s.RebootAction == nil
}

// Options are the selections of the advanced dialog.
type Options struct {
	NextBootOperatingSystem *options.OperatingSystem
	NextWindowsBootDisplay  *options.Display
	SwitchDisplay           bool
	RebootAction            *options.RebootAction
}

// FromOptions turns dialog selections into a script. Both boot settings
// are always written, set or unset.
func FromOptions(o Options) Script {
	s := Script{
		NextBootOperatingSystem: SetOrUnsetFrom(o.NextBootOperatingSystem),
		NextWindowsBootDisplay:  SetOrUnsetFrom(o.NextWindowsBootDisplay),
		RebootAction:            o.RebootAction,
	}
	if o.SwitchDisplay {
		s.SwitchToDisplay = SwitchOther()
	}
	return s
}
