package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(body), 0o644))
	t.Chdir(dir)
}

func TestLoad_Defaults(t *testing.T) {
	writeConfig(t, "environment:\n  name: test\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.False(t, cfg.LLM.FallbackEnabled)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)
	assert.Equal(t, "0s", cfg.LLM.MaxTotalTimeout)
	assert.Empty(t, cfg.LLM.Providers)
	assert.False(t, cfg.LLM.HasEnabledProvider())
	assert.Equal(t, 0, cfg.Director.RateLimitPerMin)
}

func TestLoad_ProvidersAndDirector(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "secret-key")
	writeConfig(t, `
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.5-flash
      timeout: 30s
    - name: ollama
      enabled: false
      priority: 2
      base_url: http://ollama:11434
      model: llama3.1
director:
  classifier_model: small-model
  agent_model: large-model
  rate_limit_per_min: 30
`)

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "secret-key", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "30s", cfg.LLM.Providers[0].Timeout)
	assert.Equal(t, "http://ollama:11434", cfg.LLM.Providers[1].BaseURL)
	assert.True(t, cfg.LLM.HasEnabledProvider())

	assert.Equal(t, "small-model", cfg.Director.ClassifierModel)
	assert.Equal(t, "large-model", cfg.Director.AgentModel)
	assert.Equal(t, 30, cfg.Director.RateLimitPerMin)
}

func TestLoad_EnvOverride(t *testing.T) {
	writeConfig(t, "http_server:\n  port: 9000\n")
	t.Setenv("HTTP_SERVER_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.HTTPServer.Port)
}

func TestLoad_DotEnv(t *testing.T) {
	writeConfig(t, `
llm:
  providers:
    - name: qwen
      enabled: true
      priority: 1
      api_key: ${DOTENV_QWEN_KEY}
      model: qwen-plus
`)
	require.NoError(t, os.WriteFile(".env", []byte("DOTENV_QWEN_KEY=from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DOTENV_QWEN_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.LLM.Providers[0].APIKey)
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"empty is allowed", LLMConfig{}, false},
		{"all disabled is allowed", LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Model: "m"}}}, false},
		{"missing name", LLMConfig{Providers: []ProviderConfig{{Model: "m", Enabled: true, Priority: 1}}}, true},
		{"missing model", LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Enabled: true, Priority: 1}}}, true},
		{"non-positive priority", LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Model: "m", Enabled: true}}}, true},
		{
			"duplicate priority",
			LLMConfig{Providers: []ProviderConfig{
				{Name: "qwen", Model: "m", Enabled: true, Priority: 1},
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	v := viper.New()
	v.AutomaticEnv()
	t.Setenv("EXPAND_ME", "expanded")

	assert.Equal(t, "plain", expandEnvVar(v, "plain"))
	assert.Equal(t, "expanded", expandEnvVar(v, "${EXPAND_ME}"))
	assert.Equal(t, "", expandEnvVar(v, "${DEFINITELY_NOT_SET_12345}"))
}
