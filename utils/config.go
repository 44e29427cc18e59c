package utils

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ethpandaops/getgas/config"
	"github.com/ethpandaops/getgas/types"
)

// Config is the globally accessible configuration
var Config *types.Config

// ReadConfig will process a configuration
func ReadConfig(cfg *types.Config, path string) error {
	err := readConfigFile(cfg, path)
	if err != nil {
		return err
	}

	err = readConfigEnv(cfg)
	if err != nil {
		return fmt.Errorf("error reading config from environment: %w", err)
	}

	if cfg.Chains.ChainA.RpcUrl == "" || cfg.Chains.ChainB.RpcUrl == "" {
		return fmt.Errorf("missing chain rpc endpoints (need an endpoint for both chains)")
	}
	if cfg.Chains.ChainA.ChainId == cfg.Chains.ChainB.ChainId {
		return fmt.Errorf("chainA and chainB must be different chains (both have chain id %v)", cfg.Chains.ChainA.ChainId)
	}

	log.WithFields(log.Fields{
		"chainA":       cfg.Chains.ChainA.Name,
		"chainAId":     cfg.Chains.ChainA.ChainId,
		"chainB":       cfg.Chains.ChainB.Name,
		"chainBId":     cfg.Chains.ChainB.ChainId,
		"verification": cfg.Verification.AppId != "",
		"redisCache":   cfg.Sessions.RedisCacheAddr != "",
	}).Infof("did init config")

	return nil
}

func readConfigFile(cfg *types.Config, path string) error {
	err := yaml.Unmarshal([]byte(config.DefaultConfigYml), cfg)
	if err != nil {
		return fmt.Errorf("error decoding default config: %v", err)
	}
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening config file %v: %v", path, err)
	}
	defer f.Close()

	fileCfg := types.Config{}
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&fileCfg)
	if err != nil {
		return fmt.Errorf("error decoding config file %v: %v", path, err)
	}

	// values set in the config file override the embedded defaults
	err = mergo.Merge(cfg, fileCfg, mergo.WithOverride)
	if err != nil {
		return fmt.Errorf("error merging config file %v: %v", path, err)
	}

	return nil
}

func readConfigEnv(cfg *types.Config) error {
	return envconfig.Process("", cfg)
}
