package config

import (
	"strconv"

	"github.com/apex/log"
)

// Configer is the lookup surface the daemon uses for its SAHLA_* and DB_*
// keys. DotenvConfig backs it in production, MapConfig in tests.
type Configer interface {
	LoadFromPath(path string) error
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKey(key string) int
	MustGetIntKey(key string) int
	GetIntKeyWithDefault(key string, defaultValue int) int
}

// The Must/Default/int variants are all derived from a raw string lookup, so
// implementations only provide GetKey and delegate the rest here.

func mustKey(get func(string) string, key string) string {
	val := get(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func keyWithDefault(get func(string) string, key, defaultValue string) string {
	if val := get(key); val != "" {
		return val
	}

	return defaultValue
}

func intKey(get func(string) string, key string) int {
	intVal, err := strconv.Atoi(get(key))
	if err != nil {
		return 0
	}

	return intVal
}

func mustIntKey(get func(string) string, key string) int {
	intVal, err := strconv.Atoi(get(key))
	if err != nil {
		log.Fatalf("Required config key either doesn't exist or isn't an int: '%s': %s", key, err)
	}

	return intVal
}

func intKeyWithDefault(get func(string) string, key string, defaultValue int) int {
	intVal, err := strconv.Atoi(get(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}
