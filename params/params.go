// Package params loads the startup parameters of the game.
package params

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/milk9111/mover/common"
	"gopkg.in/yaml.v3"
)

var ErrNotFinite = errors.New("params: values must be finite")

// GameParameters is read once at startup to build the player.
type GameParameters struct {
	InitialPlayerPosition common.Vec3 `yaml:"initial_player_position"`
	InitialPlayerScale    common.Vec3 `yaml:"initial_player_scale"`
	InitialPlayerVelocity common.Vec2 `yaml:"initial_player_velocity"`
}

func Default() GameParameters {
	return GameParameters{
		InitialPlayerPosition: common.Vec3{X: 0, Y: 0, Z: 0},
		InitialPlayerScale:    common.Vec3{X: 100, Y: 20, Z: 1},
		InitialPlayerVelocity: common.Vec2{X: 0, Y: 0},
	}
}

// WithInitialVelocity returns a copy of p with a different starting velocity.
func (p GameParameters) WithInitialVelocity(v common.Vec2) GameParameters {
	p.InitialPlayerVelocity = v
	return p
}

// Validate rejects NaN and infinite values. Any finite scale is allowed; a
// negative component mirrors the sprite.
func (p GameParameters) Validate() error {
	pos, scale, vel := p.InitialPlayerPosition, p.InitialPlayerScale, p.InitialPlayerVelocity
	checks := []struct {
		name   string
		values []float64
	}{
		{"initial_player_position", []float64{pos.X, pos.Y, pos.Z}},
		{"initial_player_scale", []float64{scale.X, scale.Y, scale.Z}},
		{"initial_player_velocity", []float64{vel.X, vel.Y}},
	}
	for _, c := range checks {
		for _, v := range c.values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s has %g", ErrNotFinite, c.name, v)
			}
		}
	}
	return nil
}

// Decode parses YAML on top of the defaults, so omitted keys keep their
// default value.
func Decode(data []byte) (GameParameters, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return GameParameters{}, fmt.Errorf("params: unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return GameParameters{}, err
	}
	return p, nil
}

// LoadParameters reads parameters from an explicit file path, or from the
// embedded/params-dir file when path is empty.
func LoadParameters(path string) (GameParameters, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = Load(DefaultFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return GameParameters{}, fmt.Errorf("params: load %s: %w", displayName(path), err)
	}

	p, err := Decode(data)
	if err != nil {
		return GameParameters{}, fmt.Errorf("decode %s: %w", displayName(path), err)
	}
	return p, nil
}

func displayName(path string) string {
	if path == "" {
		return DefaultFile
	}
	return path
}
