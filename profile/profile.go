// Package profile loads sensor profiles: YAML documents naming a sensor
// kind, a poll capacity and the ordered parameters to apply before the
// channel is opened.
//
//	sensor: ILD1220
//	capacity: 1
//	parameters:
//	  - {name: Port, value: COM3}
//	  - {name: BaudRate, value: 115200}
//	  - {name: Interface, value: RS422}
//
// Integer scalars become integer parameters and everything quoted or
// textual becomes a string parameter, so `value: "115200"` is sent as a
// string.
package profile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/axondata/go-medaq"
)

// ErrInvalidProfile indicates a profile that parses but cannot be used
var ErrInvalidProfile = errors.New("profile: invalid profile")

// Profile is a decoded sensor profile
type Profile struct {
	// Name is an optional label used in logs and capture files
	Name string
	// Sensor is the sensor kind to acquire
	Sensor medaq.SensorKind
	// Capacity is the number of samples to poll
	Capacity int
	// Parameters are applied in order
	Parameters medaq.ParameterSet
}

type document struct {
	Name       string          `yaml:"name"`
	Sensor     string          `yaml:"sensor"`
	Capacity   int             `yaml:"capacity"`
	Parameters []parameterNode `yaml:"parameters"`
}

type parameterNode struct {
	Name  string    `yaml:"name"`
	Value yaml.Node `yaml:"value"`
}

// Default returns the ILD1220 profile with the package defaults: Port,
// BaudRate and Interface, one sample per poll
func Default() *Profile {
	return &Profile{
		Name:       "default",
		Sensor:     medaq.SensorILD1220,
		Capacity:   medaq.DefaultPollCapacity,
		Parameters: medaq.DefaultParameters(),
	}
}

// Parse decodes a YAML profile
func Parse(data []byte) (*Profile, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("profile: decoding: %w", err)
	}

	kind, err := medaq.ParseSensorKind(doc.Sensor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	p := &Profile{
		Name:     doc.Name,
		Sensor:   kind,
		Capacity: doc.Capacity,
	}
	if p.Capacity == 0 {
		p.Capacity = medaq.DefaultPollCapacity
	}

	for i, pn := range doc.Parameters {
		v, err := decodeValue(&pn.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %d (%q): %v", ErrInvalidProfile, i, pn.Name, err)
		}
		p.Parameters = p.Parameters.Add(pn.Name, v)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads and decodes the profile at path
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks that the profile can drive a session
func (p *Profile) Validate() error {
	if !p.Sensor.IsKnown() {
		return fmt.Errorf("%w: unknown sensor kind", ErrInvalidProfile)
	}
	if p.Capacity < 1 || p.Capacity > medaq.DefaultMaxPollCapacity {
		return fmt.Errorf("%w: capacity %d out of range", ErrInvalidProfile, p.Capacity)
	}
	for i, param := range p.Parameters {
		if param.Name == "" {
			return fmt.Errorf("%w: parameter %d has no name", ErrInvalidProfile, i)
		}
		if !param.Value.IsValid() {
			return fmt.Errorf("%w: parameter %q has no value", ErrInvalidProfile, param.Name)
		}
	}
	return nil
}

// Set replaces the value of the named parameter in place, or appends it
// when the profile does not have it yet
func (p *Profile) Set(name string, v medaq.Value) {
	for i := range p.Parameters {
		if p.Parameters[i].Name == name {
			p.Parameters[i].Value = v
			return
		}
	}
	p.Parameters = p.Parameters.Add(name, v)
}

// Get returns the value of the named parameter
func (p *Profile) Get(name string) (medaq.Value, bool) {
	for _, param := range p.Parameters {
		if param.Name == name {
			return param.Value, true
		}
	}
	return medaq.Value{}, false
}

func decodeValue(n *yaml.Node) (medaq.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return medaq.Value{}, errors.New("value must be a scalar")
	}

	switch n.Tag {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return medaq.Value{}, err
		}
		if i < math.MinInt32 || i > math.MaxInt32 {
			return medaq.Value{}, fmt.Errorf("integer %d does not fit in 32 bits", i)
		}
		return medaq.IntValue(int32(i)), nil
	case "!!str":
		return medaq.StringValue(n.Value), nil
	default:
		return medaq.Value{}, fmt.Errorf("unsupported value type %s", n.Tag)
	}
}
