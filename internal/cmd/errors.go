package cmd

import (
	"my-reboot/internal/fault"
	"my-reboot/internal/text"
)

// FormatError renders err for stderr. User errors get the usage hint.
func FormatError(err error) string {
	if fault.IsUser(err) {
		return text.InvalidArguments + "\n\n" + err.Error()
	}
	return "Erro: " + err.Error()
}
