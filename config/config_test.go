package config_test

import (
	"testing"
	"time"

	"github.com/ksalau/learnflow-backend/config"
	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"KEY": "value", "EMPTY": ""}

	assert.Equal(t, "value", config.GetString(c, "KEY", "fallback"))
	assert.Equal(t, "", config.GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", config.GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", config.GetString(nil, "KEY", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"PORT": "8080", "BAD": "not a number"}

	assert.Equal(t, 8080, config.GetInt(c, "PORT", 80))
	assert.Equal(t, 80, config.GetInt(c, "BAD", 80))
	assert.Equal(t, 80, config.GetInt(c, "MISSING", 80))
}

func TestGetDuration(t *testing.T) {
	c := map[string]string{"LIFETIME": "8760h", "BAD": "a year"}

	assert.Equal(t, 8760*time.Hour, config.GetDuration(c, "LIFETIME", time.Hour))
	assert.Equal(t, time.Hour, config.GetDuration(c, "BAD", time.Hour))
	assert.Equal(t, time.Hour, config.GetDuration(c, "MISSING", time.Hour))
}

func TestGetStrings(t *testing.T) {
	c := map[string]string{
		"EMAILS": " a@example.com ,b@example.com,, ",
		"EMPTY":  "",
	}

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, config.GetStrings(c, "EMAILS"))
	assert.Nil(t, config.GetStrings(c, "EMPTY"))
	assert.Nil(t, config.GetStrings(c, "MISSING"))
}
