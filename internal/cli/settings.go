package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/pipeline"
)

// Settings are the user defaults read from footprint.toml. Command flags
// override them.
//
//	output_dir = "figures"
//	formats    = ["svg", "png"]
//	scale      = 3
//	embed_font = true
//	charts     = "~/charts.toml"
//	redis_addr = "localhost:6379"
type Settings struct {
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`
	Scale     float64  `toml:"scale"`
	EmbedFont bool     `toml:"embed_font"`
	Charts    string   `toml:"charts"`
	RedisAddr string   `toml:"redis_addr"`
}

func defaultSettings() Settings {
	return Settings{
		OutputDir: ".",
		Formats:   []string{pipeline.FormatSVG},
		Scale:     pipeline.DefaultScale,
	}
}

// readSettings decodes the settings file at path over the defaults. A
// missing file is only an error when the user named it.
func readSettings(path string, explicit bool) (Settings, error) {
	s := defaultSettings()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return s, nil
		}
		return s, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return s, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown settings %s", path, strings.Join(keys, ", "))
	}

	s.Charts = expandHome(s.Charts)
	s.OutputDir = expandHome(s.OutputDir)
	return s, s.validate()
}

func (s *Settings) validate() error {
	if err := errors.ValidateOutputDir(s.OutputDir); err != nil {
		return err
	}
	formats, err := pipeline.ParseFormats(strings.Join(s.Formats, ","))
	if err != nil {
		return err
	}
	if len(formats) > 0 {
		s.Formats = formats
	}
	if s.Scale <= 0 || s.Scale > pipeline.MaxScale {
		return errors.New(errors.ErrCodeInvalidConfig, "scale %v outside (0, %v]", s.Scale, pipeline.MaxScale)
	}
	return nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + string(os.PathSeparator) + rest
}
