package policy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for policy files that are not YAML, TOML or JSON.
var ErrUnknownFormat = errors.New("unknown policy format")

// Format is a policy file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads and validates the policy file at path.
// Keys missing from the file keep their DefaultPolicy values.
func Load(path string) (Policy, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Policy{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy: %w", err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a policy over DefaultPolicy. Unknown keys are rejected.
// The result is not validated.
func Parse(data []byte, format Format) (Policy, error) {
	p := DefaultPolicy()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Policy{}, fmt.Errorf("parse yaml policy: %w", err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return Policy{}, fmt.Errorf("parse toml policy: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Policy{}, fmt.Errorf("parse toml policy: unknown keys %s", strings.Join(keys, ", "))
		}

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Policy{}, fmt.Errorf("parse json policy: %w", err)
		}

	default:
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return p, nil
}
