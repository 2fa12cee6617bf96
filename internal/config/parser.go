package config

import (
	"encoding/json"
	"path/filepath"
)

func ParseConfig(byteConfig []byte) (*Config, error) {
	var cfg Config
	err := json.Unmarshal(byteConfig, &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Rod.UserDataDir != "" {
		absPath, err := filepath.Abs(cfg.Rod.UserDataDir)
		if err != nil {
			return nil, err
		}
		cfg.Rod.UserDataDir = absPath
	}
	if cfg.Chromedp.UserDataDir != "" {
		absPath, err := filepath.Abs(cfg.Chromedp.UserDataDir)
		if err != nil {
			return nil, err
		}
		cfg.Chromedp.UserDataDir = absPath
	}
	//等待预算与输出目录的缺省值
	if cfg.Directory.WaitSeconds <= 0 {
		cfg.Directory.WaitSeconds = 30
	}
	if cfg.Directory.SettleSeconds <= 0 {
		cfg.Directory.SettleSeconds = 2
	}
	if cfg.Directory.OutputDir == "" {
		cfg.Directory.OutputDir = "data"
	}
	return &cfg, nil
}
