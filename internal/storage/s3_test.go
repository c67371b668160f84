package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyCarriesExtensionAndFolder(t *testing.T) {
	key := ObjectKey("uploads", "photo.png")

	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotContains(t, key, "photo")
}

func TestObjectKeyWithoutFolderOrExtension(t *testing.T) {
	key := ObjectKey("", "README")

	assert.False(t, strings.HasPrefix(key, "/"))
	assert.NotContains(t, key, ".")
	assert.NotContains(t, key, "README")
}

func TestObjectKeysAreUnique(t *testing.T) {
	assert.NotEqual(t, ObjectKey("a", "f.txt"), ObjectKey("a", "f.txt"))
}

func TestPlaceholderURL(t *testing.T) {
	assert.Equal(t, "https://placeholder-storage.com/uploads/x.png", PlaceholderURL("uploads/x.png"))
}

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := errors.New("access denied")
	err := &StorageError{Op: "upload", Err: cause}

	assert.Contains(t, err.Error(), "upload")
	assert.Contains(t, err.Error(), "access denied")
	assert.ErrorIs(t, err, cause)
}
