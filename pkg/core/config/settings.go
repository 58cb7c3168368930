// Package config loads process settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"strategic_posture/pkg/core/profile"
)

// Settings are the knobs shared by the API server and the export tool.
type Settings struct {
	APIAddr          string `env:"POSTURE_API_ADDR" envDefault:":8080"`
	DefaultSelection string `env:"POSTURE_DEFAULT_SELECTION" envDefault:"Forces Armées Indiennes"`
	Parallel         bool   `env:"POSTURE_PARALLEL" envDefault:"true"`
	Locale           string `env:"POSTURE_LOCALE" envDefault:"fr"`

	// ProfilesFile layers extra profile definitions over the built-in ones.
	ProfilesFile string `env:"POSTURE_PROFILES_FILE"`
}

// Load reads .env files (missing ones are ignored) and then the environment.
func Load(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, err
	}
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Language parses Locale, falling back to French.
func (s Settings) Language() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		log.Printf("[CONFIG] unknown locale %q, using fr", s.Locale)
		return language.French
	}
	return tag
}

// Resolver builds the profile resolver, layering ProfilesFile when set.
func (s Settings) Resolver() (*profile.Resolver, error) {
	if s.ProfilesFile == "" {
		return profile.NewResolver(), nil
	}
	defs, err := profile.LoadDefinitions(s.ProfilesFile)
	if err != nil {
		return nil, err
	}
	log.Printf("[CONFIG] loaded %d profile(s) from %s", len(defs), s.ProfilesFile)
	return profile.NewResolver(profile.WithDefinitions(defs...)), nil
}
