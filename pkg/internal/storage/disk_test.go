package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskDriverRoundTrip(t *testing.T) {
	driver, err := NewDiskDriver(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, driver.Put("media/abc.jpg", []byte("bytes"), "image/jpeg"))
	assert.True(t, driver.Exists("media/abc.jpg"))

	data, err := driver.Get("media/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), data)

	require.NoError(t, driver.Delete("media/abc.jpg"))
	assert.False(t, driver.Exists("media/abc.jpg"))
}

func TestDiskDriverDeleteIdempotent(t *testing.T) {
	driver, err := NewDiskDriver(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, driver.Delete("never/existed.png"))
}

func TestDiskDriverKeyTraversalContained(t *testing.T) {
	root := t.TempDir()
	driver, err := NewDiskDriver(root)
	require.NoError(t, err)

	require.NoError(t, driver.Put("../escape.txt", []byte("x"), "text/plain"))
	assert.True(t, driver.Exists("escape.txt"))
}
