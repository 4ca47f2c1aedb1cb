package assets

import (
	"os"
	"path/filepath"
)

// filenameAliases maps the canonical image name stored in the catalog
// to the candidate filenames actually present in deployments, probed
// in order. Cosmetic only; a miss never fails an operation.
var filenameAliases = map[string][]string{
	"margherita.png":   {"margherita.png", "margherita.png.png"},
	"calabresa.png":    {"calabresa.png"},
	"burger.png":       {"burger.png", "hambúrguer.png", "hamburguer.png"},
	"refrigerante.png": {"refrigerante.png", "refriger.png"},
}

// Resolver probes candidate filenames against an ordered list of
// search directories.
type Resolver struct {
	dirs []string
}

func NewResolver(dirs ...string) *Resolver {
	return &Resolver{dirs: dirs}
}

// Resolve returns the path of the first existing candidate for name,
// trying every candidate in the first directory before moving on.
func (r *Resolver) Resolve(name string) (string, bool) {
	candidates, ok := filenameAliases[name]
	if !ok {
		candidates = []string{name}
	}

	for _, dir := range r.dirs {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}
