package config

import (
	_ "embed"
)

// getgas config
//
//go:embed default.config.yml
var DefaultConfigYml string
