package keycodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestNew_ClampsCost(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, MinCost, c.Cost())

	c, err = New(12)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Cost())

	_, err = New(bcrypt.MaxCost + 1)
	require.Error(t, err)
}

func TestIssue_ShapeAndHash(t *testing.T) {
	c, err := New(MinCost)
	require.NoError(t, err)

	s, err := c.Issue()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s.Raw, Tag))
	assert.Len(t, s.Raw, len(Tag)+64)
	assert.True(t, IsWellFormed(s.Raw))
	assert.Equal(t, s.Raw[:PrefixLength], s.Prefix)
	assert.NotContains(t, s.Hash, s.Raw)

	cost, err := bcrypt.Cost([]byte(s.Hash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, MinCost)
}

func TestIssue_VerifyRoundTrip(t *testing.T) {
	c, err := New(MinCost)
	require.NoError(t, err)

	first, err := c.Issue()
	require.NoError(t, err)
	second, err := c.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, first.Raw, second.Raw)
	assert.True(t, c.Verify(first.Raw, first.Hash))
	assert.False(t, c.Verify(second.Raw, first.Hash))
	assert.False(t, c.Verify(first.Raw+"x", first.Hash))
	assert.False(t, c.Verify(first.Raw, "not-a-bcrypt-hash"))
}

func TestIssue_EntropyFailure(t *testing.T) {
	orig := randReader
	randReader = failingReader{}
	t.Cleanup(func() { randReader = orig })

	c, err := New(MinCost)
	require.NoError(t, err)

	s, err := c.Issue()
	assert.Nil(t, s)
	assert.ErrorIs(t, err, common.ErrEntropySource)
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "kk_abcdef01", Prefix("kk_abcdef0123456789"))
	assert.Equal(t, "kk_", Prefix("kk_"))
}

func TestIsWellFormed(t *testing.T) {
	assert.False(t, IsWellFormed(""))
	assert.False(t, IsWellFormed("kk_xyz"))
	assert.False(t, IsWellFormed("zz_"+strings.Repeat("a", 64)))
	assert.False(t, IsWellFormed("kk_"+strings.Repeat("g", 64)))
	assert.True(t, IsWellFormed("kk_"+strings.Repeat("a", 64)))
}
