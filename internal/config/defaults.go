package config

import (
	_ "embed"
)

//go:embed defaults/astar.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no YAML source
// can be read.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: 50,
		},
		Search: SearchConfig{
			Frontier: "stale",
		},
		Animation: AnimationConfig{
			FPS:     240,
			PathFPS: 60,
		},
		Theme: "default",
		Storage: StorageConfig{
			DB: "~/.astar/astar.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:            ":2222",
			HostKey:            ".ssh/astar_ed25519",
			IdleTimeoutMinutes: 15,
		},
	}
}
