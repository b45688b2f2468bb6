package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Output.Dir != "output" {
		t.Errorf("output dir = %q, want output", cfg.Output.Dir)
	}
	if cfg.Analysis.CorrelationThreshold != 0.3 {
		t.Errorf("correlation threshold = %v, want 0.3", cfg.Analysis.CorrelationThreshold)
	}
	if cfg.Analysis.InfluenceThreshold != 0.3 {
		t.Errorf("influence threshold = %v, want 0.3", cfg.Analysis.InfluenceThreshold)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTOCSV_OUTPUT_DIR", "artifacts")
	t.Setenv("AUTOCSV_CORRELATION_THRESHOLD", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Dir != "artifacts" {
		t.Errorf("output dir = %q, want artifacts", cfg.Output.Dir)
	}
	if cfg.Analysis.CorrelationThreshold != 0.5 {
		t.Errorf("correlation threshold = %v, want 0.5", cfg.Analysis.CorrelationThreshold)
	}
	// Untouched keys keep their defaults
	if cfg.Analysis.InfluenceThreshold != 0.3 {
		t.Errorf("influence threshold = %v, want 0.3", cfg.Analysis.InfluenceThreshold)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("AUTOCSV_CORRELATION_THRESHOLD", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("want error for unparseable threshold")
	}
}

func TestLoad_RejectsOutOfRangeThreshold(t *testing.T) {
	t.Setenv("AUTOCSV_INFLUENCE_THRESHOLD", "1.5")
	if _, err := Load(); err == nil {
		t.Error("want error for threshold outside [0,1)")
	}
}
