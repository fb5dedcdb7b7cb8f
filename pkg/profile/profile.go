// Package profile reads declarative terminal profiles from YAML files.
//
// A profile file looks like this:
//
//	profiles:
//	  modem:
//	    speed: 115200
//	    settings: [raw, cs8, -parenb, -cstopb, clocal, crtscts]
//	    cc:
//	      min: 1
//	      time: 5
//
// "speed" sets both directions; "ispeed" and "ospeed" set one direction each
// and are applied after "speed". Settings use the vocabulary of
// termios.Attrs.Apply and are applied before control characters.
package profile

import (
	"bytes"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"src.ttyattr.dev/pkg/termios"
)

// Config is the content of a profile file.
type Config struct {
	Profiles map[string]*Profile `yaml:"profiles"`
}

// Profile describes changes to terminal attributes.
type Profile struct {
	Speed    int               `yaml:"speed,omitempty"`
	ISpeed   int               `yaml:"ispeed,omitempty"`
	OSpeed   int               `yaml:"ospeed,omitempty"`
	Settings []string          `yaml:"settings,omitempty"`
	CC       map[string]string `yaml:"cc,omitempty"`
}

// ErrNoProfile is returned by Config.Profile for unknown names.
var ErrNoProfile = errors.New("no such profile")

// Parse parses a profile file. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse profiles")
	}
	return &cfg, nil
}

// Load reads and parses the named profile file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	return cfg, errors.Wrap(err, path)
}

// Profile returns the profile with the given name.
func (cfg *Config) Profile(name string) (*Profile, error) {
	p, ok := cfg.Profiles[name]
	if !ok || p == nil {
		return nil, errors.Wrap(ErrNoProfile, name)
	}
	return p, nil
}

// Names returns the names of all profiles in lexicographical order.
func (cfg *Config) Names() []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply applies the profile to a. When it returns an error, a may have been
// partially modified.
func (p *Profile) Apply(a *termios.Attrs) error {
	if err := a.Apply(p.Settings...); err != nil {
		return err
	}
	if p.Speed != 0 {
		s, err := speedForRate(p.Speed)
		if err != nil {
			return err
		}
		if err := a.SetSpeed(s); err != nil {
			return err
		}
	}
	if p.ISpeed != 0 {
		s, err := speedForRate(p.ISpeed)
		if err != nil {
			return err
		}
		if err := a.SetInputSpeed(s); err != nil {
			return err
		}
	}
	if p.OSpeed != 0 {
		s, err := speedForRate(p.OSpeed)
		if err != nil {
			return err
		}
		if err := a.SetOutputSpeed(s); err != nil {
			return err
		}
	}
	// Apply control characters in a fixed order so that errors are
	// deterministic.
	names := make([]string, 0, len(p.CC))
	for name := range p.CC {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		idx, ok := termios.CCNames[name]
		if !ok {
			return errors.Errorf("unknown control character %q", name)
		}
		v, err := termios.ParseCC(idx, p.CC[name])
		if err != nil {
			return errors.Wrap(err, name)
		}
		a.Cc[idx] = v
	}
	return nil
}

func speedForRate(rate int) (termios.Speed, error) {
	s, ok := termios.SpeedForRate(rate)
	if !ok {
		return 0, errors.Errorf("unsupported bit rate %d", rate)
	}
	return s, nil
}
