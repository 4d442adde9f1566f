package params

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFile is the parameter file used when no path is given.
const DefaultFile = "game.yaml"

//go:embed *.yaml
var ParamsFS embed.FS

// Load reads a parameter file. A copy under params/ on disk wins over the
// embedded one so values can be tuned without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanParamsPath(name)
	if data, err := os.ReadFile(diskParamsPath(clean)); err == nil {
		return data, nil
	}
	return ParamsFS.ReadFile(clean)
}

func cleanParamsPath(path string) string {
	if path == "" {
		return DefaultFile
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "params/"); ok {
		return after
	}
	return s
}

func diskParamsPath(clean string) string {
	return filepath.Join("params", filepath.FromSlash(clean))
}
