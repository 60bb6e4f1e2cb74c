package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, OnOfficeCallsTotal)
	assert.NotNil(t, OnOfficeCallDuration)
	assert.NotNil(t, OnOfficeProbeUp)
	assert.NotNil(t, ChatRoutesTotal)
	assert.NotNil(t, GenerativeDuration)
	assert.NotNil(t, GenerativeFailuresTotal)
}
