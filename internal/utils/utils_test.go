package utils_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestToStringSlice(t *testing.T) {
	out, ok := utils.ToStringSlice([]any{"a", "b"})
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, out)

	out, ok = utils.ToStringSlice([]any{"a", 1, "b", nil})
	require.False(t, ok)
	require.Equal(t, []string{"a", "b"}, out)

	out, ok = utils.ToStringSlice(nil)
	require.True(t, ok)
	require.Empty(t, out)
}

func TestPointers(t *testing.T) {
	p := utils.Ptr(3)
	require.Equal(t, 3, *p)
	*p = 4
	require.Equal(t, 3, *utils.Ptr(3))

	require.Nil(t, utils.PtrOrNil(time.Time{}))
	require.Nil(t, utils.PtrOrNil(""))
	require.Equal(t, "x", *utils.PtrOrNil("x"))
}
