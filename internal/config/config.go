package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/expressgen-dev/expressgen/internal/errors"
	"github.com/expressgen-dev/expressgen/internal/options"
)

// ConfigFileName is the name of the generator defaults file.
const ConfigFileName = "expressgen.json"

// Defaults holds flag defaults read from expressgen.json. Flags passed
// explicitly on the command line always win over these.
type Defaults struct {
	// View is the default view engine name.
	View string `json:"view,omitempty"`

	// CSS is the default CSS engine name.
	CSS string `json:"css,omitempty"`

	// Git copies a .gitignore by default.
	Git bool `json:"git,omitempty"`
}

// Load reads the defaults file from the specified directory. A missing
// file is not an error and yields zero defaults.
func Load(dir string) (Defaults, error) {
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults{}, nil
	}
	if err != nil {
		return Defaults{}, errors.FromError(err, "E060")
	}

	var d Defaults
	if err := json.Unmarshal(data, &d); err != nil {
		return Defaults{}, errors.New("E060").
			WithDetail(err.Error()).
			WithSuggestion("Check " + path + " for JSON syntax errors")
	}

	if err := d.Validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// Validate checks that any engine names in the defaults are supported.
func (d Defaults) Validate() error {
	if d.View != "" {
		if _, err := options.ParseView(d.View); err != nil {
			return errors.New("E061").
				WithDetail("view engine '" + d.View + "' in " + ConfigFileName).
				WithSuggestion("Remove the entry or use one of the supported engines")
		}
	}
	if d.CSS != "" {
		if _, err := options.ParseCSS(d.CSS); err != nil {
			return errors.New("E061").
				WithDetail("CSS engine '" + d.CSS + "' in " + ConfigFileName).
				WithSuggestion("Remove the entry or use one of the supported engines")
		}
	}
	return nil
}
