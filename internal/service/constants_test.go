package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModel(t *testing.T) {
	for label, want := range map[string]string{
		"GigaChat-Lite": "GigaChat",
		"GigaChat-Pro":  "GigaChat-Pro",
		"GigaChat-Max":  "GigaChat-Max",
	} {
		got, err := ResolveModel(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got)
	}
}

func TestResolveModelUnknown(t *testing.T) {
	_, err := ResolveModel("GigaChat-Ultra")
	require.ErrorIs(t, err, ErrUnknownModel)
}

func TestValidateScope(t *testing.T) {
	for _, scope := range []string{ScopePersonal, ScopeCorporate, ScopeB2B} {
		assert.NoError(t, ValidateScope(scope))
	}
	require.ErrorIs(t, ValidateScope("GIGACHAT_API_FREE"), ErrUnknownScope)
}

func TestBuildChatParams(t *testing.T) {
	params := buildChatParams("GigaChat-Pro", "classify this")

	assert.Equal(t, "GigaChat-Pro", string(params.Model))
	require.Len(t, params.Messages, 1)
	assert.Equal(t, float64(0), params.Temperature.Value)
}
