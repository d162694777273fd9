package logx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDebugEnabledForDomain_AllDomainsWhenUnfiltered(t *testing.T) {
	SetDebugConfig(true, nil)
	defer SetDebugConfig(false, nil)

	assert.True(t, IsDebugEnabledForDomain("pipeline"))
	assert.True(t, IsDebugEnabledForDomain("gen"))
}

func TestIsDebugEnabledForDomain_FilteredDomains(t *testing.T) {
	SetDebugConfig(true, []string{"pipeline", " score "})
	defer SetDebugConfig(false, nil)

	assert.True(t, IsDebugEnabledForDomain("pipeline"))
	assert.True(t, IsDebugEnabledForDomain("score"), "domain names are trimmed")
	assert.False(t, IsDebugEnabledForDomain("gen"))
}

func TestIsDebugEnabledForDomain_DisabledOverridesDomains(t *testing.T) {
	SetDebugConfig(false, []string{"pipeline"})

	assert.False(t, IsDebugEnabledForDomain("pipeline"))
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := Errorf("boom")
	wrapped := Wrap(cause, "stage failed")

	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "stage failed: boom")
}

func TestWithComponent(t *testing.T) {
	base := NewLogger("pipeline")
	derived := base.WithComponent("pipeline.draft")

	assert.Equal(t, "pipeline", base.GetComponent())
	assert.Equal(t, "pipeline.draft", derived.GetComponent())
}
