package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Resolution is a screen resolution in pixels
type Resolution struct {
	X uint32
	Y uint32
}

// String returns the resolution as WIDTHxHEIGHT
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.X, r.Y)
}

// MarshalJSON encodes the resolution as a two element array
func (r Resolution) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint32{r.X, r.Y})
}

// UnmarshalJSON decodes a two element array
func (r *Resolution) UnmarshalJSON(data []byte) error {
	var pair [2]uint32
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("resolution must be a [width, height] pair: %w", err)
	}
	r.X, r.Y = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes the resolution as WIDTHxHEIGHT
func (r Resolution) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// ParseResolution parses WIDTHxHEIGHT
func ParseResolution(s string) (Resolution, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Resolution{}, fmt.Errorf("invalid resolution %q, expected WIDTHxHEIGHT", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution width %q: %w", parts[0], err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution height %q: %w", parts[1], err)
	}
	return Resolution{X: uint32(x), Y: uint32(y)}, nil
}

// FieldSet holds the menu settings managed by livery mode
type FieldSet struct {
	DDSGeneration bool       `json:"dds_generation" yaml:"dds_generation"`
	Resolution    Resolution `json:"resolution" yaml:"resolution"`
	Fullscreen    bool       `json:"fullscreen" yaml:"fullscreen"`
	MasterVolume  float64    `json:"master_volume" yaml:"master_volume"`
	MusicVolume   float64    `json:"music_volume" yaml:"music_volume"`
}

// DefaultLiveryModeFields returns the livery mode values used on first run
func DefaultLiveryModeFields() FieldSet {
	return FieldSet{
		DDSGeneration: false,
		Resolution:    Resolution{X: 1600, Y: 900},
		Fullscreen:    false,
		MasterVolume:  0.5,
		MusicVolume:   0.0,
	}
}

// VolumeText keeps the literal text a settings file used for a volume when
// it is not the shortest form of the value. The game writes float32 values
// widened to 17 digits, such as 0.64999997615814209. Empty means the
// shortest form.
type VolumeText struct {
	Master string
	Music  string
}

// LiteralText returns text when it is a number literal spelled differently
// from the shortest form of its value, and "" otherwise
func LiteralText(text string) string {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || strconv.FormatFloat(v, 'f', -1, 64) == text {
		return ""
	}
	return text
}

// MatchesText reports whether text is a literal of exactly v
func MatchesText(v float64, text string) bool {
	parsed, err := strconv.ParseFloat(text, 64)
	return err == nil && parsed == v
}
