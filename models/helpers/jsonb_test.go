package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONB_ValueAndScan(t *testing.T) {
	src := JSONB(`{"heroQuote":"hi"}`)
	v, err := src.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"heroQuote":"hi"}`, v)

	var fromBytes JSONB
	require.NoError(t, fromBytes.Scan([]byte(`{"a":1}`)))
	assert.Equal(t, `{"a":1}`, string(fromBytes))

	var fromString JSONB
	require.NoError(t, fromString.Scan(`[1,2]`))
	assert.Equal(t, `[1,2]`, string(fromString))

	var fromNil JSONB = JSONB(`{}`)
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)
}

func TestJSONB_EmptyAndInvalid(t *testing.T) {
	v, err := JSONB(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = JSONB(`{broken`).Value()
	assert.Error(t, err)

	var j JSONB
	assert.Error(t, j.Scan(42))
}
