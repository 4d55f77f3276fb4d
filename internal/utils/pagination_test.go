package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePageNumber(t *testing.T) {
	require.Equal(t, 1, NormalizePageNumber(-10))
	require.Equal(t, 1, NormalizePageNumber(0))
	require.Equal(t, 1, NormalizePageNumber(1))
	require.Equal(t, 7, NormalizePageNumber(7))
}

func TestNormalizePageSize(t *testing.T) {
	require.Equal(t, 20, NormalizePageSize(0))
	require.Equal(t, 20, NormalizePageSize(-1))
	require.Equal(t, 20, NormalizePageSize(101))
	require.Equal(t, 20, NormalizePageSize(10000))
	require.Equal(t, 1, NormalizePageSize(1))
	require.Equal(t, 100, NormalizePageSize(100))
	require.Equal(t, 42, NormalizePageSize(42))
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0, 20))
	require.Equal(t, 1, TotalPages(1, 20))
	require.Equal(t, 1, TotalPages(20, 20))
	require.Equal(t, 2, TotalPages(21, 20))
	require.Equal(t, 5, TotalPages(100, 20))
}
