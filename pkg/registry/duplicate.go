package registry

import (
	"github.com/arthur-debert/factory/pkg/logging"
)

// Duplicate describes a second registration under an id that was already taken
type Duplicate struct {
	Interface string `json:"interface" yaml:"interface" toml:"interface"`
	ID        string `json:"id" yaml:"id" toml:"id"`
	Previous  string `json:"previous" yaml:"previous" toml:"previous"`
	Current   string `json:"current" yaml:"current" toml:"current"`

	// SameProducer is true when the identical producer registered twice,
	// false when two different producers chose the same id.
	SameProducer bool `json:"same_producer" yaml:"same_producer" toml:"same_producer"`
}

// Reason returns a short human description of the anomaly
func (d Duplicate) Reason() string {
	if d.SameProducer {
		return "repeated registration of the same producer"
	}
	return "different producer registered with a duplicate id"
}

// LogReporter writes duplicates to the registry component logger at warn level
func LogReporter(d Duplicate) {
	logger := logging.GetLogger("registry")
	logger.Warn().
		Str("interface", d.Interface).
		Str("id", d.ID).
		Str("previous", d.Previous).
		Str("current", d.Current).
		Bool("same_producer", d.SameProducer).
		Msg("Second registration of id: " + d.Reason())
}
