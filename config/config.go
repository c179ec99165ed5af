package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Provider names accepted in the config file
const (
	ProviderWalletConnect = "walletconnect"
	ProviderDemo          = "demo"
)

// Config represents the application configuration
type Config struct {
	AlgodURL   string `json:"algod_url"`
	AlgodToken string `json:"algod_token,omitempty"`
	BridgeURL  string `json:"bridge_url"`
	Provider   string `json:"provider"`
	Network    string `json:"network"`
	ClientName string `json:"client_name,omitempty"`
	Logger     bool   `json:"logger"`
}

// DefaultPath returns the config location in the user's home directory
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".quantumguard-config.json")
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration pointing at Algorand TestNet
func DefaultConfig() Config {
	return Config{
		AlgodURL:  "https://testnet-api.algonode.cloud",
		BridgeURL: "https://bridge.walletconnect.org",
		Provider:  ProviderWalletConnect,
		Network:   "TestNet",
		Logger:    false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := DefaultConfig()
		_ = Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	return cfg.withDefaults()
}

// ApplyEnv overrides endpoints from ALGOD_URL, ALGOD_TOKEN and WC_BRIDGE_URL
func (c Config) ApplyEnv() Config {
	if v := strings.TrimSpace(os.Getenv("ALGOD_URL")); v != "" {
		c.AlgodURL = v
	}
	if v := strings.TrimSpace(os.Getenv("ALGOD_TOKEN")); v != "" {
		c.AlgodToken = v
	}
	if v := strings.TrimSpace(os.Getenv("WC_BRIDGE_URL")); v != "" {
		c.BridgeURL = v
	}
	return c
}

// withDefaults fills empty fields of a partially written config file
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.AlgodURL == "" {
		c.AlgodURL = def.AlgodURL
	}
	if c.BridgeURL == "" {
		c.BridgeURL = def.BridgeURL
	}
	if c.Provider == "" {
		c.Provider = def.Provider
	}
	if c.Network == "" {
		c.Network = def.Network
	}
	return c
}
