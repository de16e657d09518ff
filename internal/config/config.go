// Package config loads docnote settings from an optional YAML file and the
// DOCNOTE_* environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	TabWidth        = "tab_width"
	Bullet          = "bullet"
	Editor          = "editor"
	Browser         = "browser"
	LogLevel        = "log.level"
	LogFile         = "log.file"
	ThemeHeading    = "theme.heading"
	ThemeCode       = "theme.code"
	ThemeCodeBlockF = "theme.code_block_fg"
	ThemeCodeBlockB = "theme.code_block_bg"
	ThemeLink       = "theme.link"
)

// Settings is the resolved configuration.
type Settings struct {
	TabWidth int    `validate:"gte=1,lte=16"`
	Bullet   string `validate:"required"`
	Editor   string
	Browser  string
	Log      LogSettings
	Theme    ThemeSettings
}

type LogSettings struct {
	Level string `validate:"oneof=debug info warn error"`
	// File is where the interactive viewer logs; empty disables logging there.
	File string
}

// ThemeSettings holds tcell color names ("teal", "#5fafd7", "color44").
// Empty keeps the built-in color.
type ThemeSettings struct {
	Heading     string
	Code        string
	CodeBlockFg string
	CodeBlockBg string
	Link        string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultPath is $XDG_CONFIG_HOME/docnote/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "docnote", "config.yaml")
}

// Read loads settings from path. An empty path looks for the default
// location, where a missing file just means defaults.
func Read(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("docnote")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	s := fromViper(v)
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Settings {
	return &Settings{
		TabWidth: v.GetInt(TabWidth),
		Bullet:   v.GetString(Bullet),
		Editor:   v.GetString(Editor),
		Browser:  v.GetString(Browser),
		Log: LogSettings{
			Level: strings.ToLower(v.GetString(LogLevel)),
			File:  v.GetString(LogFile),
		},
		Theme: ThemeSettings{
			Heading:     v.GetString(ThemeHeading),
			Code:        v.GetString(ThemeCode),
			CodeBlockFg: v.GetString(ThemeCodeBlockF),
			CodeBlockBg: v.GetString(ThemeCodeBlockB),
			Link:        v.GetString(ThemeLink),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(TabWidth, 4)
	v.SetDefault(Bullet, "•")
	v.SetDefault(Editor, "")
	v.SetDefault(Browser, "")
	v.SetDefault(LogLevel, "info")
	v.SetDefault(LogFile, "")
	v.SetDefault(ThemeHeading, "")
	v.SetDefault(ThemeCode, "")
	v.SetDefault(ThemeCodeBlockF, "")
	v.SetDefault(ThemeCodeBlockB, "")
	v.SetDefault(ThemeLink, "")
}
