package config

import (
	"os"

	"github.com/subosito/gotenv"
)

// DotenvConfig loads a dotenv file into the process environment and resolves
// keys from it, so values set in the real environment always win over the
// file.
type DotenvConfig struct {
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{DotenvPath: path}
}

func (c *DotenvConfig) LoadFromPath(path string) error {
	c.DotenvPath = path
	return c.Load()
}

func (c *DotenvConfig) Load() error {
	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) GetKey(key string) string {
	return os.Getenv(key)
}

func (c *DotenvConfig) MustGetKey(key string) string {
	return mustKey(c.GetKey, key)
}

func (c *DotenvConfig) GetKeyWithDefault(key, defaultValue string) string {
	return keyWithDefault(c.GetKey, key, defaultValue)
}

func (c *DotenvConfig) GetIntKey(key string) int {
	return intKey(c.GetKey, key)
}

func (c *DotenvConfig) MustGetIntKey(key string) int {
	return mustIntKey(c.GetKey, key)
}

func (c *DotenvConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return intKeyWithDefault(c.GetKey, key, defaultValue)
}
