package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemes loads a themes file from disk and validates it. Entries with
// empty or duplicate names are kept: the registry builder skips them with a
// warning.
func ParseThemes(path string) ([]theme.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return DecodeThemes(path, data)
}

// DecodeThemes parses themes file contents. source names the input in errors.
func DecodeThemes(source string, data []byte) ([]theme.Definition, error) {
	var file ThemeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, themeerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateThemeFile(&file); err != nil {
		return nil, err
	}

	return file.Themes, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
