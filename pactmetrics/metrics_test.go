package pactmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBuildRecordsHistogram(t *testing.T) {
	m := New()
	m.ObserveBuild("request", 5*time.Millisecond)

	count := testutil.CollectAndCount(m.buildDuration)
	if count != 1 {
		t.Errorf("expected 1 histogram series, got %d", count)
	}
}

func TestObserveBestMatcherSelectionIncrementsByLabel(t *testing.T) {
	m := New()
	m.ObserveBestMatcherSelection("path", false)
	m.ObserveBestMatcherSelection("path", true)
	m.ObserveBestMatcherSelection("path", true)

	got := testutil.ToFloat64(m.bestMatcherSelections.WithLabelValues("path", "true"))
	if got != 2 {
		t.Errorf("cascaded=true count = %v, want 2", got)
	}
}

func TestTwoIndependentRegistriesDoNotCollide(t *testing.T) {
	a := New()
	b := New()
	a.ObserveBuild("request", time.Millisecond)
	b.ObserveBuild("response", time.Millisecond)

	if testutil.CollectAndCount(a.buildDuration) != 1 {
		t.Error("registry a should see only its own observation")
	}
}
