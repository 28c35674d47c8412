// Package config provides the configuration loader for render.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the default name of the configuration file.
const FileName = "render.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads a configuration file from the given path and returns a validated domain.Config.
// Relative document and state paths are resolved against the directory of the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	var file Renderfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := validate(&file); err != nil {
		return nil, err
	}

	if file.Host != "" && !file.Browser {
		l.Logger.Warn(fmt.Sprintf("'host' defined in %s has no effect outside browser mode", filepath.Base(path)))
	}

	pages := make(domain.Pages, len(file.Pages))
	for name, dto := range file.Pages {
		pages[name] = domain.Page{Path: dto.Path}
	}

	hints := make(domain.CacheHints, len(file.CacheHints))
	for hash, hint := range file.CacheHints {
		hints[hash] = hint
	}

	dir := filepath.Dir(path)
	cfg := &domain.Config{
		Runtime: domain.RenderRuntime{
			Account:    file.Account,
			Workspace:  file.Workspace,
			AppsEtag:   file.AppsEtag,
			Production: file.Production,
			AMP:        file.AMP,
			Browser:    file.Browser,
			Host:       file.Host,
			BaseURI:    file.BaseURI,
			Domain:     file.Domain,
			Locale:     file.Culture.Locale,
			CacheHints: hints,
			Pages:      pages,
		},
		SessionEndpoint: file.Session.Endpoint,
		DocumentsDir:    resolvePath(dir, file.Documents),
		StateFile:       resolvePath(dir, file.State),
		Headers:         file.Headers,
	}

	return cfg, nil
}

func validate(file *Renderfile) error {
	if file.Account == "" || file.Workspace == "" {
		return zerr.With(zerr.With(domain.ErrInvalidWorkspace, "account", file.Account), "workspace", file.Workspace)
	}

	for hash, hint := range file.CacheHints {
		switch strings.ToLower(hint.Scope) {
		case "", domain.ScopePublic, domain.ScopePrivate:
		default:
			return zerr.With(zerr.With(domain.ErrInvalidScope, "hash", hash), "scope", hint.Scope)
		}
	}

	return nil
}

// resolvePath returns p unchanged when empty or absolute, else joined with dir.
func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
