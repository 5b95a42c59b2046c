package hostos

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"my-reboot/internal/text"
)

// DefaultProbeInterval is the pause between two probes of the active
// display while waiting for a switch.
const DefaultProbeInterval = time.Second

// PollingSwitcher switches displays by running a command and then polling
// the active display id until it changes.
type PollingSwitcher struct {
	// Command is the switch executable; the mapped argument is appended.
	Command string
	// Probe returns the active display id.
	Probe    func() (string, error)
	Runner   Runner
	Clock    Clock
	Interval time.Duration
	Logger   *slog.Logger
}

var _ DisplaySwitcher = (*PollingSwitcher)(nil)

// ActiveDisplayID probes the active display.
func (s *PollingSwitcher) ActiveDisplayID() (string, error) {
	return s.Probe()
}

// Switch runs the switch command with arg and polls until the active
// display id differs from the one seen before the command, or timeout.
func (s *PollingSwitcher) Switch(ctx context.Context, arg string, timeout time.Duration) (bool, error) {
	before, err := s.Probe()
	if err != nil {
		return false, err
	}

	if err := s.Runner.Run(ctx, s.Command, arg); err != nil {
		return false, fmt.Errorf("%s: %w", text.SwitchFailed, err)
	}

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultProbeInterval
	}

	begin := s.Clock.Now()
	for s.Clock.Now().Sub(begin) < timeout {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		s.Clock.Sleep(interval)

		current, err := s.Probe()
		if err != nil {
			return false, err
		}
		if s.Logger != nil {
			s.Logger.Debug("probed active display", "arg", arg, "before", before, "current", current)
		}
		if current != before {
			return true, nil
		}
	}
	return false, nil
}
