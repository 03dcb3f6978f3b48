package config

import "sync"

// globalConfig is the configuration loaded for the current invocation.
var (
	globalConfig   *Config      //nolint:gochecknoglobals // Set once per CLI run
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
)

// SetGlobalConfig stores cfg for later GetGlobalConfig calls.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the stored configuration, or defaults if none was set.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()

	if cfg == nil {
		return New()
	}
	return cfg
}

// ResetGlobalConfigForTest clears the stored configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}
