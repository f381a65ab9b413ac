package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("CONVERSATION_TTL", "45m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "memory", cfg.Conversation.Driver)
	assert.Equal(t, 45*time.Minute, cfg.Conversation.TTL)
	assert.Equal(t, 5*time.Second, cfg.Calculator.Timeout)
	assert.True(t, cfg.Planner.CarryOverSlots)
	assert.Equal(t, 3, cfg.Product.TopK)

	require.NotEmpty(t, cfg.LLM.Providers)
	assert.Equal(t, "groq", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "test-key", cfg.LLM.Providers[0].APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Conversation: ConversationConfig{Driver: "memory"},
			Calculator:   CalculatorConfig{Timeout: time.Second},
			Product:      ProductConfig{TopK: 3},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"redis driver", func(c *Config) { c.Conversation.Driver = "redis" }, false},
		{"unknown driver", func(c *Config) { c.Conversation.Driver = "postgres" }, true},
		{"negative max sessions", func(c *Config) { c.Conversation.MaxSessions = -1 }, true},
		{"negative ttl", func(c *Config) { c.Conversation.TTL = -time.Second }, true},
		{"zero calculator timeout", func(c *Config) { c.Calculator.Timeout = 0 }, true},
		{"zero top k", func(c *Config) { c.Product.TopK = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name      string
		providers []ProviderConfig
		wantErr   bool
	}{
		{"ok", []ProviderConfig{{Name: "groq", Model: "m", Enabled: true, Priority: 1}}, false},
		{"missing name", []ProviderConfig{{Model: "m"}}, true},
		{"missing model", []ProviderConfig{{Name: "groq"}}, true},
		{"disabled skips priority", []ProviderConfig{{Name: "groq", Model: "m"}}, false},
		{"zero priority", []ProviderConfig{{Name: "groq", Model: "m", Enabled: true}}, true},
		{"duplicate priority", []ProviderConfig{
			{Name: "groq", Model: "m", Enabled: true, Priority: 1},
			{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&LLMConfig{Providers: tt.providers})
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, ParseDuration("2s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("COFFEE_TEST_SECRET", "s3cret")

	assert.Equal(t, "s3cret", expandEnvVar("${COFFEE_TEST_SECRET}"))
	assert.Equal(t, "", expandEnvVar("${COFFEE_TEST_UNSET}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
}
