package config

import (
	"fmt"
	"sync"
)

// MapConfig holds config keys in memory. Tests use it to feed the daemon
// settings without touching the process environment.
type MapConfig struct {
	configValues sync.Map
}

func NewMapConfig(entries map[string]string) *MapConfig {
	c := &MapConfig{}

	for key, entry := range entries {
		c.configValues.Store(key, entry)
	}

	return c
}

func (c *MapConfig) LoadFromPath(_ string) error {
	return fmt.Errorf("LoadFromPath not supported for MapConfig")
}

func (c *MapConfig) Load() error {
	return nil
}

func (c *MapConfig) SetKey(key, value string) {
	c.configValues.Store(key, value)
}

func (c *MapConfig) GetKey(key string) string {
	v, ok := c.configValues.Load(key)
	if !ok || v == nil {
		return ""
	}

	return v.(string)
}

func (c *MapConfig) MustGetKey(key string) string {
	return mustKey(c.GetKey, key)
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	return keyWithDefault(c.GetKey, key, defaultValue)
}

func (c *MapConfig) GetIntKey(key string) int {
	return intKey(c.GetKey, key)
}

func (c *MapConfig) MustGetIntKey(key string) int {
	return mustIntKey(c.GetKey, key)
}

func (c *MapConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return intKeyWithDefault(c.GetKey, key, defaultValue)
}
