package config

import (
	"strings"
)

// GenerateConfigContent returns the example configuration with the
// [settings] values commented out, so a fresh file inherits the built-in
// defaults while still documenting them.
func GenerateConfigContent() string {
	return commentOutSection(GetExampleConfigContent(), "settings")
}

// commentOutSection comments out the assignment lines of one TOML table.
// Blank lines, existing comments and headers are kept as-is.
func commentOutSection(content, section string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	inSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			inSection = trimmed == "["+section+"]"
			result = append(result, line)
			continue
		}

		if !inSection || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
