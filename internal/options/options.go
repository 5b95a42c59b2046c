// Package options defines the closed catalogs the tool works with:
// operating systems, displays and reboot actions. Each value has a stable
// lowercase code, used in files and on the command line, and a separate
// human-facing form returned by String.
package options

import "fmt"

// Option is satisfied by every catalog type.
type Option interface {
	comparable
	Code() string
	String() string
}

// FromCode returns the value in values whose code is exactly code.
func FromCode[O Option](values []O, code string) (O, bool) {
	for _, v := range values {
		if v.Code() == code {
			return v, true
		}
	}
	var zero O
	return zero, false
}

// Codes returns the codes of values, in order.
func Codes[O Option](values []O) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Code()
	}
	return out
}

func unmarshalCode[O Option](values []O, kind string, text []byte, dst *O) error {
	v, ok := FromCode(values, string(text))
	if !ok {
		return fmt.Errorf("unknown %s %q", kind, text)
	}
	*dst = v
	return nil
}

// OperatingSystem is one of the two systems installed side by side.
type OperatingSystem int

const (
	Windows OperatingSystem = iota + 1
	Linux
)

// OperatingSystems returns every operating system in a stable order.
func OperatingSystems() []OperatingSystem {
	return []OperatingSystem{Windows, Linux}
}

// ParseOperatingSystem looks an operating system up by code.
func ParseOperatingSystem(code string) (OperatingSystem, bool) {
	return FromCode(OperatingSystems(), code)
}

func (o OperatingSystem) Code() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	}
	return ""
}

func (o OperatingSystem) String() string {
	switch o {
	case Windows:
		return "Windows"
	case Linux:
		return "Linux"
	}
	return fmt.Sprintf("OperatingSystem(%d)", int(o))
}

func (o OperatingSystem) MarshalText() ([]byte, error) {
	if o.Code() == "" {
		return nil, fmt.Errorf("invalid operating system %d", int(o))
	}
	return []byte(o.Code()), nil
}

func (o *OperatingSystem) UnmarshalText(text []byte) error {
	return unmarshalCode(OperatingSystems(), "operating system", text, o)
}

// Display is a physical screen Windows can output to.
type Display int

const (
	Monitor Display = iota + 1
	TV
)

// Displays returns every display in a stable order.
func Displays() []Display {
	return []Display{Monitor, TV}
}

// ParseDisplay looks a display up by code.
func ParseDisplay(code string) (Display, bool) {
	return FromCode(Displays(), code)
}

func (d Display) Code() string {
	switch d {
	case Monitor:
		return "monitor"
	case TV:
		return "tv"
	}
	return ""
}

func (d Display) String() string {
	switch d {
	case Monitor:
		return "monitor"
	case TV:
		return "TV"
	}
	return fmt.Sprintf("Display(%d)", int(d))
}

// Other returns the display that is not d. The catalog has exactly two
// displays; a third one would make this ambiguous.
func (d Display) Other() Display {
	if d == Monitor {
		return TV
	}
	return Monitor
}

func (d Display) MarshalText() ([]byte, error) {
	if d.Code() == "" {
		return nil, fmt.Errorf("invalid display %d", int(d))
	}
	return []byte(d.Code()), nil
}

func (d *Display) UnmarshalText(text []byte) error {
	return unmarshalCode(Displays(), "display", text, d)
}

// RebootAction is what to do with the machine once the boot options are set.
type RebootAction int

const (
	Reboot RebootAction = iota + 1
	Shutdown
)

// RebootActions returns every reboot action in a stable order.
func RebootActions() []RebootAction {
	return []RebootAction{Reboot, Shutdown}
}

// ParseRebootAction looks a reboot action up by code.
func ParseRebootAction(code string) (RebootAction, bool) {
	return FromCode(RebootActions(), code)
}

func (a RebootAction) Code() string {
	switch a {
	case Reboot:
		return "reboot"
	case Shutdown:
		return "shutdown"
	}
	return ""
}

func (a RebootAction) String() string {
	switch a {
	case Reboot:
		return "reiniciar"
	case Shutdown:
		return "desligar"
	}
	return fmt.Sprintf("RebootAction(%d)", int(a))
}

func (a RebootAction) MarshalText() ([]byte, error) {
	if a.Code() == "" {
		return nil, fmt.Errorf("invalid reboot action %d", int(a))
	}
	return []byte(a.Code()), nil
}

func (a *RebootAction) UnmarshalText(text []byte) error {
	return unmarshalCode(RebootActions(), "reboot action", text, a)
}
