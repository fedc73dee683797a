package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/formloom/formloom/pkg/domain/model"
)

// loadSchema reads a form schema from a JSON or TOML file, chosen by
// extension. TOML files must use the object form for options; the bare
// string shorthand is JSON only.
func loadSchema(path string) (*model.FormSchema, error) {
	// #nosec G304 - path is provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read schema file", goerr.V("path", path))
	}

	var schema model.FormSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &schema); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML schema", goerr.V("path", path))
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON schema", goerr.V("path", path))
		}
	}

	return &schema, nil
}
