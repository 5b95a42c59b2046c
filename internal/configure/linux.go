// Package configure discovers the host identifiers the boot state relies
// on: GRUB menu entry ids on Linux, display device ids and switch
// arguments on Windows.
package configure

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"my-reboot/internal/configs"
	"my-reboot/internal/options"
	"my-reboot/internal/text"
)

// DefaultGrubCfg is where GRUB keeps its generated menu.
const DefaultGrubCfg = "/boot/grub/grub.cfg"

const menuEntryPrefix = "menuentry "

var (
	// The id is the last quoted token before the opening brace:
	//   menuentry 'Ubuntu' --class ubuntu $menuentry_id_option 'gnulinux-simple-1234' {
	grubEntryRegex = regexp.MustCompile(`'([a-zA-Z0-9_-]+)'\s*\{`)
)

// GrubEntries finds the menu entry id of each operating system in a
// grub.cfg. A top-level entry belongs to a system when its line mentions
// the system code, ignoring case. The first matching entry wins.
func GrubEntries(grubCfg []byte) (map[options.OperatingSystem]string, error) {
	entries := make(map[options.OperatingSystem]string)

	scanner := bufio.NewScanner(bytes.NewReader(grubCfg))
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !strings.HasPrefix(line, menuEntryPrefix) {
			continue
		}
		system, ok := lineOperatingSystem(line)
		if !ok {
			continue
		}
		if _, seen := entries[system]; seen {
			continue
		}
		if m := grubEntryRegex.FindAllStringSubmatch(line, -1); len(m) > 0 {
			entries[system] = m[len(m)-1][1]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning grub.cfg: %w", err)
	}

	for _, system := range options.OperatingSystems() {
		if _, ok := entries[system]; !ok {
			return nil, fmt.Errorf("%s %s!", text.ConfigureEntryNotFound, system)
		}
	}
	return entries, nil
}

func lineOperatingSystem(line string) (options.OperatingSystem, bool) {
	lower := strings.ToLower(line)
	for _, system := range options.OperatingSystems() {
		if strings.Contains(lower, system.Code()) {
			return system, true
		}
	}
	return 0, false
}

// Linux reads grubCfgPath and records the entry of each system in cfgs.
func Linux(ctx context.Context, grubCfgPath string, cfgs *configs.Configs, out io.Writer) error {
	fmt.Fprintf(out, "%s %s...\n", text.ConfigureReading, grubCfgPath)

	raw, err := os.ReadFile(grubCfgPath)
	if err != nil {
		return fmt.Errorf("reading grub.cfg: %w", err)
	}
	entries, err := GrubEntries(raw)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, system := range options.OperatingSystems() {
		cfgs.SetGrubEntry(system, entries[system])
	}
	fmt.Fprintln(out, text.ConfigureSaving)
	if err := cfgs.Save(); err != nil {
		return err
	}
	fmt.Fprintln(out, text.ConfigureDone)
	return nil
}
