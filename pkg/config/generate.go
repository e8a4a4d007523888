package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	skerrors "github.com/arthur-debert/skinmanager/pkg/errors"
)

// GenerateConfigContent returns the default configuration file with every value commented out
func GenerateConfigContent() string {
	return commentOutConfigValues(string(defaultConfig))
}

// Render encodes an effective configuration as TOML
func Render(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", skerrors.Wrap(err, skerrors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}

// commentOutConfigValues prefixes every key assignment with "# ".
// Comments, blank lines and [section] headers are kept as they are.
func commentOutConfigValues(content string) string {
	var b strings.Builder
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if isAssignment(strings.TrimSpace(line)) {
			b.WriteString("# ")
		}
		b.WriteString(line)
	}
	return b.String()
}

func isAssignment(line string) bool {
	if line == "" || line[0] == '#' {
		return false
	}
	return !(line[0] == '[' && line[len(line)-1] == ']')
}
