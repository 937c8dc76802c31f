package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FINTRACK_LOG_LEVEL",
		"FINTRACK_LOG_FORMAT",
		"FINTRACK_DATA_DIRECTORY",
		"FINTRACK_CSV_DELIMITER",
		"FINTRACK_CURRENCY_SYMBOL",
	} {
		// t.Setenv registers restoration of the original value; the
		// variable itself must be absent, not empty, so defaults apply.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "data", config.Data.Directory)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.True(t, config.CSV.IncludeHeaders)
	assert.Equal(t, "$", config.Currency.Symbol)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("FINTRACK_LOG_LEVEL", "debug")
	t.Setenv("FINTRACK_DATA_DIRECTORY", "/tmp/ledger")
	t.Setenv("FINTRACK_CSV_DELIMITER", ";")
	t.Setenv("FINTRACK_CURRENCY_SYMBOL", "€")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "/tmp/ledger", config.Data.Directory)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "€", config.Currency.Symbol)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Data.Directory = "data"
		c.CSV.Delimiter = ","
		return c
	}

	assert.NoError(t, validateConfig(valid()))

	c := valid()
	c.Log.Level = "verbose"
	assert.Error(t, validateConfig(c))

	c = valid()
	c.Data.Directory = ""
	assert.Error(t, validateConfig(c))

	c = valid()
	c.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(c))
}
