package config

import "testing"

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("READINESS_DB", "/tmp/r.db")
	t.Setenv("READINESS_CATALOG", "/tmp/catalog.json")
	t.Setenv("READINESS_LLM_PROVIDER", "openai")
	t.Setenv("READINESS_OPENAI_API_KEY", "sk-test")
	t.Setenv("READINESS_OPENAI_MODEL", "gpt-4o")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/r.db" || cfg.CatalogPath != "/tmp/catalog.json" {
		t.Errorf("paths = %+v", cfg)
	}

	llmCfg := cfg.LLM()
	if llmCfg.Provider != "openai" {
		t.Errorf("provider = %q", llmCfg.Provider)
	}
	if llmCfg.OpenAI.APIKey != "sk-test" || llmCfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai = %+v", llmCfg.OpenAI)
	}
}

func TestLLMDefaultsSurviveEmptyEnvironment(t *testing.T) {
	var cfg Config
	llmCfg := cfg.LLM()
	if llmCfg.Provider != "anthropic" {
		t.Errorf("default provider = %q", llmCfg.Provider)
	}
	if llmCfg.Retry.MaxAttempts == 0 {
		t.Error("retry defaults missing")
	}
}
