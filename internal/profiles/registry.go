// internal/profiles/registry.go
package profiles

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads an external registry file and merges it over the builtin
// entries, the file winning on conflicts. An empty path returns the builtin
// registry unchanged. A missing or malformed file is an error; callers
// downgrade it to an advisory warning and continue with the builtins.
func Load(path string) (*Registry, error) {
	reg := Builtin()
	if path == "" {
		return reg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return reg, fmt.Errorf("unable to read profile registry %s: %w", path, err)
	}

	var external map[string]Profile
	if err := json.Unmarshal(data, &external); err != nil {
		return reg, fmt.Errorf("unable to parse profile registry %s: %w", path, err)
	}

	for name, prof := range external {
		if prof.Name == "" {
			prof.Name = name
		}
		reg.profiles[name] = prof
	}
	return reg, nil
}
