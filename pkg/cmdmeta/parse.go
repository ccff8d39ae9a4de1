// SPDX-License-Identifier: MPL-2.0

package cmdmeta

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"titanium-cli/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ExtCUE is the extension of CUE metadata files.
	ExtCUE = ".cue"
	// ExtTOML is the extension of TOML metadata files.
	ExtTOML = ".toml"
)

// ErrUnsupportedFormat is returned for metadata files that are neither CUE nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported metadata format")

//go:embed cmdmeta_schema.cue
var metadataSchema string

// FileLoader loads metadata from CUE or TOML files, keyed by file path.
type FileLoader struct {
	// MaxFileSize overrides cueutil.DefaultMaxFileSize when non-zero.
	MaxFileSize int64
}

// Load reads and parses the metadata file at locator.
func (l FileLoader) Load(locator string) (*Metadata, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("failed to read command metadata at %s: %w", locator, err)
	}

	maxSize := l.MaxFileSize
	if maxSize == 0 {
		maxSize = cueutil.DefaultMaxFileSize
	}

	switch strings.ToLower(filepath.Ext(locator)) {
	case ExtCUE:
		return ParseCUE(data, locator, cueutil.WithMaxFileSize(maxSize))
	case ExtTOML:
		if err := cueutil.CheckFileSize(data, maxSize, locator); err != nil {
			return nil, err
		}
		return ParseTOML(data, locator)
	default:
		return nil, fmt.Errorf("%s: %w", locator, ErrUnsupportedFormat)
	}
}

// IsMetadataFile reports whether name has a supported metadata extension.
func IsMetadataFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ExtCUE, ExtTOML:
		return true
	default:
		return false
	}
}

// ParseCUE validates data against the #Metadata schema and decodes it.
func ParseCUE(data []byte, filename string, opts ...cueutil.Option) (*Metadata, error) {
	opts = append([]cueutil.Option{cueutil.WithFilename(filename)}, opts...)
	result, err := cueutil.ParseAndDecodeString[Metadata](metadataSchema, data, "#Metadata", opts...)
	if err != nil {
		return nil, err
	}
	return flatten(result.Value), nil
}

// ParseTOML decodes TOML metadata. TOML files are not schema checked.
func ParseTOML(data []byte, filename string) (*Metadata, error) {
	var md Metadata
	if err := toml.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return flatten(&md), nil
}

// flatten drops subcommands declared below the first level.
func flatten(md *Metadata) *Metadata {
	for _, sc := range md.Subcommands {
		if sc != nil {
			sc.Subcommands = nil
		}
	}
	return md
}
