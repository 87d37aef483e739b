package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/glintui/glint/style"
)

// Theme is the demo's resolved color palette
type Theme struct {
	Text   style.RGB
	Help   style.RGB
	Status style.RGB
	Accent style.RGB

	ModeBg map[agentMode]style.RGB
	ModeFg map[agentMode]style.RGB
}

func defaultTheme() Theme {
	return Theme{
		Text:   style.Hex(0xe6edf3),
		Help:   style.Hex(0xc9d1d9),
		Status: style.Hex(0x8b949e),
		Accent: style.Hex(0x58a6ff),
		ModeBg: map[agentMode]style.RGB{
			modeSafe:         style.Hex(0x132a13),
			modeAutonomous:   style.Hex(0x10243d),
			modeJailbreaking: style.Hex(0x3a1212),
		},
		ModeFg: map[agentMode]style.RGB{
			modeSafe:         style.Hex(0xb7f7c0),
			modeAutonomous:   style.Hex(0xb3e3ff),
			modeJailbreaking: style.Hex(0xffc9c9),
		},
	}
}

// themeFile is the on-disk TOML shape; every key is optional and overrides
// the default palette
type themeFile struct {
	Colors struct {
		Text   string `toml:"text"`
		Help   string `toml:"help"`
		Status string `toml:"status"`
		Accent string `toml:"accent"`
	} `toml:"colors"`
	Modes map[string]struct {
		Bg string `toml:"bg"`
		Fg string `toml:"fg"`
	} `toml:"modes"`
}

func loadTheme(path string) (Theme, error) {
	theme := defaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, errors.Wrap(err, "read theme")
	}
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return theme, errors.Wrap(err, "parse theme")
	}

	if err := overrideColor(&theme.Text, file.Colors.Text); err != nil {
		return theme, err
	}
	if err := overrideColor(&theme.Help, file.Colors.Help); err != nil {
		return theme, err
	}
	if err := overrideColor(&theme.Status, file.Colors.Status); err != nil {
		return theme, err
	}
	if err := overrideColor(&theme.Accent, file.Colors.Accent); err != nil {
		return theme, err
	}

	for name, colors := range file.Modes {
		mode, ok := modeByName(name)
		if !ok {
			return theme, errors.Errorf("unknown mode %q in theme", name)
		}
		bg, fg := theme.ModeBg[mode], theme.ModeFg[mode]
		if err := overrideColor(&bg, colors.Bg); err != nil {
			return theme, err
		}
		if err := overrideColor(&fg, colors.Fg); err != nil {
			return theme, err
		}
		theme.ModeBg[mode], theme.ModeFg[mode] = bg, fg
	}
	return theme, nil
}

func overrideColor(dst *style.RGB, value string) error {
	if value == "" {
		return nil
	}
	c, err := parseHexColor(value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func parseHexColor(s string) (style.RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return style.RGB{}, errors.Errorf("invalid color %q, want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return style.RGB{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return style.Hex(uint32(v)), nil
}
