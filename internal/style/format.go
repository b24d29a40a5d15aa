package style

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-stripe/internal/errors"
)

// Format identifies a document syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format of path from its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "%s: unsupported extension, want .toml, .yaml or .yml", path)
	}
}

// Decode parses data in format into v. Keys v has no field for are
// rejected.
func Decode(data []byte, format Format, v any) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", undecoded[0].String())
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && err != io.EOF {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// ReadFile reads path and decodes it into v using the format its extension
// names.
func ReadFile(path string, v any) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return inFile(path, Decode(data, format, v))
}

// inFile prefixes the message of a coded error with path.
func inFile(path string, err error) error {
	e, ok := errors.As(err)
	if !ok {
		return err
	}
	return &errors.Error{Code: e.Code, Message: path + ": " + e.Message, Cause: e.Cause}
}
