package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"my-reboot/internal/options"
	"my-reboot/internal/text"
)

// optionValue is a pflag.Value accepting the codes of one catalog.
type optionValue[O options.Option] struct {
	values   []O
	typeName string
	value    O
	set      bool
}

var _ pflag.Value = (*optionValue[options.Display])(nil)

func newDisplayValue() *optionValue[options.Display] {
	return &optionValue[options.Display]{values: options.Displays(), typeName: "tela"}
}

func (v *optionValue[O]) String() string {
	if !v.set {
		return ""
	}
	return v.value.Code()
}

func (v *optionValue[O]) Set(code string) error {
	o, ok := options.FromCode(v.values, code)
	if !ok {
		return fmt.Errorf("valor inválido %q, use %s", code, text.QuotedList(options.Codes(v.values)))
	}
	v.value, v.set = o, true
	return nil
}

func (v *optionValue[O]) Type() string {
	return v.typeName
}

// Get returns the parsed value, or nil when unset.
func (v *optionValue[O]) Get() *O {
	if !v.set {
		return nil
	}
	o := v.value
	return &o
}
