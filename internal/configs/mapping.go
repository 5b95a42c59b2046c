package configs

import (
	"fmt"

	"my-reboot/internal/fault"
	"my-reboot/internal/kvstorage"
	"my-reboot/internal/options"
)

// ConfigurationError reports a mapping entry that the configure step
// never wrote, or a host value that matches no option. It wraps
// fault.ErrIntegrity.
type ConfigurationError struct {
	Message string
	// HostOS is the system on which 'my-reboot configure' populates the
	// missing entry.
	HostOS options.OperatingSystem
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s. Execute 'my-reboot configure' no %s", e.Message, e.HostOS)
}

func (e *ConfigurationError) Unwrap() error {
	return fault.ErrIntegrity
}

// Mapping translates the values of one catalog to and from the opaque
// host strings stored under "{code}.{attribute}". It holds no data of its
// own; every operation reads or writes the given store.
type Mapping[O options.Option] struct {
	attribute string
	values    []O
	hostOS    options.OperatingSystem
}

// NewMapping returns a mapping for attribute over values, populated by
// the configure step on hostOS.
func NewMapping[O options.Option](attribute string, values []O, hostOS options.OperatingSystem) Mapping[O] {
	return Mapping[O]{attribute: attribute, values: values, hostOS: hostOS}
}

// Attribute returns the key suffix of the mapping.
func (m Mapping[O]) Attribute() string {
	return m.attribute
}

// Key returns the store key holding the host string for o.
func (m Mapping[O]) Key(o O) string {
	return o.Code() + "." + m.attribute
}

// Value returns the host string mapped to o.
func (m Mapping[O]) Value(store kvstorage.Store, o O) (string, error) {
	key := m.Key(o)
	v, ok := store.Get(key)
	if !ok {
		return "", &ConfigurationError{
			Message: fmt.Sprintf("Configuração '%s' não encontrada", key),
			HostOS:  m.hostOS,
		}
	}
	return v, nil
}

// ObjectByValue returns the first value whose host string equals raw.
func (m Mapping[O]) ObjectByValue(store kvstorage.Store, raw string) (O, error) {
	var zero O
	for _, o := range m.values {
		v, err := m.Value(store, o)
		if err != nil {
			return zero, err
		}
		if v == raw {
			return o, nil
		}
	}
	return zero, &ConfigurationError{
		Message: fmt.Sprintf("Configuração com valor %s não encontrada", raw),
		HostOS:  m.hostOS,
	}
}

// SetValue maps o to value in memory. The caller saves the store.
func (m Mapping[O]) SetValue(store kvstorage.Store, o O, value string) {
	store.Set(m.Key(o), value)
}
