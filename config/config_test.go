package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		SigningSecret: "8f742231b10e8888abcd99yyyzzz85a5",
		SpreadsheetID: "1abcDEF",
	}
}

func TestConfigValidate_Passes(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfigValidate_EmptySigningSecret(t *testing.T) {
	cfg := validConfig()
	cfg.SigningSecret = ""

	err := cfg.Validate()
	assert.ErrorContains(t, err, "SLACK_SIGNING_SECRET")
}

func TestConfigValidate_EmptySpreadsheetID(t *testing.T) {
	cfg := validConfig()
	cfg.SpreadsheetID = ""

	err := cfg.Validate()
	assert.ErrorContains(t, err, "SPREADSHEET_ID")
}
