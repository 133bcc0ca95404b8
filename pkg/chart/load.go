package chart

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/footprint/pkg/dataset"
	"github.com/matzehuels/footprint/pkg/errors"
)

// Format is a definition file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is the top-level shape of a definition file.
type File struct {
	Charts []Definition `json:"charts" toml:"charts" yaml:"charts"`
}

// knownSubjects are the only subject names a definition file may use.
var knownSubjects = []string{dataset.Jonathan, dataset.Connor, dataset.Agnel}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported definition file extension %q", ext)
	}
}

// LoadFile reads chart definitions from path.
func LoadFile(path string) ([]Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "access %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Load(bytes.NewReader(data), format)
}

// Load decodes chart definitions from r.
func Load(r io.Reader, format Format) ([]Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read definitions")
	}

	var f File
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "decode %s definitions", format)
	}

	if err := validateDefinitions(f.Charts); err != nil {
		return nil, err
	}
	return f.Charts, nil
}

func validateDefinitions(defs []Definition) error {
	v := errors.ValidationErrors{Code: errors.ErrCodeInvalidChart}
	for i, d := range defs {
		if d.Name == "" {
			v.Add("chart %d has no name", i)
			continue
		}
		if err := errors.ValidateChartName(d.Name); err != nil {
			v.Add("%s", errors.UserMessage(err))
		}
		if d.Dataset != nil {
			for _, s := range d.Dataset.Subjects {
				if !slices.Contains(knownSubjects, s.Name) {
					v.Add("%s: unknown subject %q (want one of %s)", d.Name, s.Name, strings.Join(knownSubjects, ", "))
				}
			}
		}
	}
	return v.Err()
}
