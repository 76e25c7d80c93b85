package solver

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/forester-bio/forester/pkg/errors"
)

// Params is the parameter set consumed opaquely by the external solver.
// Typical PCSF keys are w, b, g and noise, but no invariants are enforced
// here beyond what the solver itself requires.
type Params map[string]any

// LoadParams reads a parameter set from a TOML file.
//
// Example file:
//
//	w = 6.0
//	b = 1.0
//	g = 0.1
//	noise = 0.1
//	dummy_mode = "terminals"
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "parameter file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "parameter file %s", path)
	}

	var p Params
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "parse %s", path)
	}
	return p, nil
}
