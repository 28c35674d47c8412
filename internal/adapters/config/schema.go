package config

import "go.trai.ch/render/internal/core/domain"

// Renderfile represents the structure of the render.yaml configuration file.
type Renderfile struct {
	Account    string                      `yaml:"account"`
	Workspace  string                      `yaml:"workspace"`
	AppsEtag   string                      `yaml:"appsEtag"`
	Production bool                        `yaml:"production"`
	AMP        bool                        `yaml:"amp"`
	Browser    bool                        `yaml:"browser"`
	Host       string                      `yaml:"host"`
	BaseURI    string                      `yaml:"baseURI"`
	Domain     string                      `yaml:"domain"`
	Culture    CultureDTO                  `yaml:"culture"`
	Session    SessionDTO                  `yaml:"session"`
	Headers    map[string]string           `yaml:"headers"`
	Pages      map[string]PageDTO          `yaml:"pages"`
	CacheHints map[string]domain.CacheHint `yaml:"cacheHints"`
	Documents  string                      `yaml:"documents"`
	State      string                      `yaml:"state"`
}

// CultureDTO holds the locale settings of the store.
type CultureDTO struct {
	Locale string `yaml:"locale"`
}

// SessionDTO configures how sessions are established.
type SessionDTO struct {
	Endpoint string `yaml:"endpoint"`
}

// PageDTO represents a page declaration in the configuration.
type PageDTO struct {
	Path string `yaml:"path"`
}
