package matchctx

import (
	"os"
	"testing"

	"github.com/pact-foundation/pact-go-matching/interaction"
)

func TestConfigFromEnvDefaultsFalse(t *testing.T) {
	os.Unsetenv(EnvLogExecutedPlan)
	os.Unsetenv(EnvLogPlanSummary)
	os.Unsetenv(EnvColouredOutput)

	cfg := ConfigFromEnv()
	if cfg.LogExecutedPlan || cfg.LogPlanSummary || cfg.ColouredOutput {
		t.Errorf("expected all flags false by default, got %+v", cfg)
	}
}

func TestConfigFromEnvTruthyVariants(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", " True "} {
		os.Setenv(EnvLogExecutedPlan, v)
		if !ConfigFromEnv().LogExecutedPlan {
			t.Errorf("expected %q to enable LogExecutedPlan", v)
		}
	}
	os.Unsetenv(EnvLogExecutedPlan)
}

func TestForBodyIsPureAndForcesShowTypes(t *testing.T) {
	req := &interaction.HTTPRequest{Method: "GET"}
	resp := &interaction.HTTPResponse{}
	base := New(Document{Consumer: "c", Provider: "p"}, req, resp, Config{})

	narrowed := base.ForBody()

	if base.Config.ShowTypesInErrors {
		t.Error("narrowing must not mutate the parent context")
	}
	if !narrowed.Config.ShowTypesInErrors {
		t.Error("ForBody() must force ShowTypesInErrors on")
	}
	if narrowed.Category != "body" {
		t.Errorf("expected category \"body\", got %q", narrowed.Category)
	}
}

func TestNarrowingSelectsDistinctCategories(t *testing.T) {
	req := &interaction.HTTPRequest{}
	resp := &interaction.HTTPResponse{}
	base := New(Document{}, req, resp, Config{})

	if got := base.ForMethod().Category; got != "method" {
		t.Errorf("ForMethod category = %q", got)
	}
	if got := base.ForStatus().Category; got != "status" {
		t.Errorf("ForStatus category = %q", got)
	}
}
