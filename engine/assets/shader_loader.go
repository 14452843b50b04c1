package assets

import (
	"fmt"
	"path/filepath"

	"github.com/hollyoak/sprig/engine/shader"
)

// LoadShader reads a combined .shader artifact by name and splits it
// into its per-stage sources.
func LoadShader(name string) (shader.Source, error) {
	path := filepath.Join("assets", "shaders", name)
	src, err := shader.SplitFile(path)
	if err != nil {
		return shader.Source{}, fmt.Errorf("load shader %q: %w", name, err)
	}
	return src, nil
}
