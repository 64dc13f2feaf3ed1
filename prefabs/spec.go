package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// BallSpec describes one ball material: how it looks and which sound
// category its first impact plays.
type BallSpec struct {
	Name           string     `yaml:"name"`
	Color          *YAMLColor `yaml:"color"`
	Sound          string     `yaml:"sound"`
	SizeMultiplier float64    `yaml:"size_multiplier"`
}

type ballsFile struct {
	Balls []BallSpec `yaml:"balls"`
}

// LoadSpec reads and unmarshals a single prefab yaml file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadBallSpecs returns the ball material catalogue from balls.yaml.
func LoadBallSpecs() ([]BallSpec, error) {
	file, err := LoadSpec[ballsFile]("balls.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Balls) == 0 {
		return nil, fmt.Errorf("prefabs: balls.yaml contains no materials")
	}
	for i := range file.Balls {
		if file.Balls[i].SizeMultiplier <= 0 {
			file.Balls[i].SizeMultiplier = 1.0
		}
	}
	return file.Balls, nil
}

// YAMLColor unmarshals "#rrggbb" or "#rrggbbaa" strings.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", value.Value, err)
	}

	rgba := color.RGBA{A: 0xff}
	if len(s) == 8 {
		rgba.A = uint8(v)
		v >>= 8
	}
	rgba.B = uint8(v)
	rgba.G = uint8(v >> 8)
	rgba.R = uint8(v >> 16)

	c.Color = rgba
	return nil
}
