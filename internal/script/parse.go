package script

import (
	"strings"

	"my-reboot/internal/fault"
	"my-reboot/internal/options"
	"my-reboot/internal/text"
)

const (
	osPrefix      = "os:"
	displayPrefix = "display:"
	switchToken   = "switch"
	switchPrefix  = "switch:"
	unsetValue    = "unset"
	otherValue    = "other"
	savedValue    = "saved"
)

// Parse builds a script from command-line tokens:
//
//	[os:]windows | [os:]linux | os:unset
//	[display:]monitor | [display:]tv | display:unset
//	switch[:other] | switch:monitor | switch:tv | switch:saved
//	reboot | shutdown
//
// When the first token is not a script token, Parse returns false and no
// error so the caller can try other interpretations. Any later bad token
// is a *fault.UserError.
func Parse(args []string) (Script, bool, error) {
	if len(args) == 0 {
		return Script{}, false, nil
	}

	var b Builder
	for i, arg := range args {
		ok, err := parseToken(&b, arg)
		if err != nil {
			return Script{}, false, err
		}
		if !ok {
			if i == 0 {
				return Script{}, false, nil
			}
			return Script{}, false, fault.NewUserError(text.UnexpectedArgument, arg)
		}
	}
	return b.Script(), true, nil
}

func parseToken(b *Builder, arg string) (bool, error) {
	if v, ok, err := parseSetOrUnset(arg, osPrefix, options.ParseOperatingSystem); ok || err != nil {
		if err != nil {
			return false, err
		}
		return true, b.NextBootOperatingSystem(v, arg)
	}
	if v, ok, err := parseSetOrUnset(arg, displayPrefix, options.ParseDisplay); ok || err != nil {
		if err != nil {
			return false, err
		}
		return true, b.NextWindowsBootDisplay(v, arg)
	}
	if v, ok, err := parseSwitch(arg); ok || err != nil {
		if err != nil {
			return false, err
		}
		return true, b.SwitchToDisplay(v, arg)
	}
	if action, ok := options.ParseRebootAction(arg); ok {
		return true, b.RebootAction(action, arg)
	}
	return false, nil
}

// parseSetOrUnset accepts "prefix:code", "prefix:unset" and a bare code.
func parseSetOrUnset[T any](arg, prefix string, parse func(string) (T, bool)) (*SetOrUnset[T], bool, error) {
	if value, found := strings.CutPrefix(arg, prefix); found {
		if value == unsetValue {
			return Unset[T](), true, nil
		}
		v, ok := parse(value)
		if !ok {
			return nil, false, fault.NewUserError(text.UnexpectedArgument, arg)
		}
		return Set(v), true, nil
	}
	v, ok := parse(arg)
	if !ok {
		return nil, false, nil
	}
	return Set(v), true, nil
}

func parseSwitch(arg string) (*SwitchToDisplay, bool, error) {
	if arg == switchToken {
		return SwitchOther(), true, nil
	}
	value, found := strings.CutPrefix(arg, switchPrefix)
	if !found {
		return nil, false, nil
	}
	switch value {
	case otherValue:
		return SwitchOther(), true, nil
	case savedValue:
		return SwitchSaved(), true, nil
	}
	d, ok := options.ParseDisplay(value)
	if !ok {
		return nil, false, fault.NewUserError(text.UnexpectedArgument, arg)
	}
	return SwitchTo(d), true, nil
}
