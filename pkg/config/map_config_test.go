package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapConfigKeyLookups(t *testing.T) {
	c := NewMapConfig(map[string]string{
		"SAHLAD_PORT":    "1401",
		"SAHLA_TX_RETRY": "not-an-int",
	})

	assert.Equal(t, "1401", c.GetKey("SAHLAD_PORT"))
	assert.Equal(t, 1401, c.GetIntKey("SAHLAD_PORT"))
	assert.Equal(t, "", c.GetKey("SAHLA_JWT_SECRET"))

	assert.Equal(t, "dev-secret", c.GetKeyWithDefault("SAHLA_JWT_SECRET", "dev-secret"))
	assert.Equal(t, 3, c.GetIntKeyWithDefault("SAHLA_TX_RETRY", 3))
	assert.Equal(t, 0, c.GetIntKey("SAHLA_TX_RETRY"))

	c.SetKey("SAHLA_JWT_SECRET", "s3cret")
	assert.Equal(t, "s3cret", c.MustGetKey("SAHLA_JWT_SECRET"))
}
