package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelopeShape(t *testing.T) {
	env := NewSuccess(200, "GET", "records retrieved").WithData([]string{"a"})

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Equal(t, "success", m["status"])
	assert.Equal(t, float64(200), m["code"])
	assert.Equal(t, "GET", m["method"])
	assert.Equal(t, "records retrieved", m["message"])
	assert.Contains(t, m, "data")
	// No token issued: the field must be absent, not empty.
	assert.NotContains(t, m, "access_token")
}

func TestErrorEnvelopeShape(t *testing.T) {
	env := NewError(409, "POST", "student record already exists")

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Equal(t, "error", m["status"])
	assert.Equal(t, float64(409), m["code"])
	assert.NotContains(t, m, "data")
}

func TestWithTokenSetsAccessToken(t *testing.T) {
	env := NewSuccess(201, "POST", "created").WithToken("signed.jwt.token")
	assert.Equal(t, "signed.jwt.token", env.AccessToken)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"access_token":"signed.jwt.token"`)
}
