package script

import "my-reboot/internal/options"

// Named is a predefined script with its dialog label.
type Named struct {
	Label  string
	Script Script
}

// Predefined returns the predefined scripts offered on host, in dialog
// order. "my-reboot script N" runs the N-th one.
func Predefined(host options.OperatingSystem) []Named {
	if host == options.Windows {
		return []Named{
			{Label: "Reiniciar no Linux", Script: rebootOn(options.Linux, nil)},
		}
	}
	monitor, tv := options.Monitor, options.TV
	return []Named{
		{Label: "Reiniciar no Windows usando o monitor", Script: rebootOn(options.Windows, &monitor)},
		{Label: "Reiniciar no Windows usando a TV", Script: rebootOn(options.Windows, &tv)},
	}
}

func rebootOn(os options.OperatingSystem, display *options.Display) Script {
	reboot := options.Reboot
	s := Script{
		NextBootOperatingSystem: Set(os),
		RebootAction:            &reboot,
	}
	if display != nil {
		s.NextWindowsBootDisplay = Set(*display)
	}
	return s
}
