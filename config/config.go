// Package config loads and validates server.yml, the on-disk configuration
// for the server loop's bind address and port.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 25565

	minPort = 1024
	maxPort = 65535
)

// Server is the root document shape of server.yml.
type Server struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
}

func defaults() *Server {
	s := &Server{}
	s.Server.Host = DefaultHost
	s.Server.Port = DefaultPort
	return s
}

// Load reads path, creating it with defaults if absent. Invalid values are
// replaced with defaults rather than rejected, per the startup validation
// policy: a malformed config must never prevent the process from starting.
func Load(path string) (*Server, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := defaults()
		return cfg, Save(path, cfg)
	}
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return defaults(), nil
	}

	cfg.Validate()
	return cfg, nil
}

// Validate replaces invalid fields with defaults in place.
func (s *Server) Validate() {
	if s.Server.Host == "" {
		s.Server.Host = DefaultHost
	}
	if s.Server.Port < minPort || s.Server.Port >= maxPort {
		s.Server.Port = DefaultPort
	}
}

// Save writes cfg to path as YAML, overwriting any existing file.
func Save(path string, cfg *Server) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
