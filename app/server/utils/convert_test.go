package utils

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := ParseID(s)
		assert.Error(t, err, s)
	}
}

func TestFormInt(t *testing.T) {
	v, err := FormInt("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = FormInt("30")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 30, *v)

	_, err = FormInt("trinta")
	assert.Error(t, err)
}

func TestPV(t *testing.T) {
	assert.Equal(t, "horta", V(P("horta")))
	assert.Equal(t, 0, V[int](nil))
}
