package tutil

import (
	"os"
	"strings"
)

func IsIntegrationTest() bool {
	testType := os.Getenv("SAHLA_TEST")
	return strings.ToLower(testType) == "integration"
}
