package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Traverser25/GetCoditer/internal/models"
)

func TestKeyIsStablePerComment(t *testing.T) {
	a := models.RawComment{Author: "dev_one", Body: "Python dev here"}
	b := models.RawComment{Author: "dev_one", Body: "Python dev here"}
	c := models.RawComment{Author: "dev_two", Body: "Python dev here"}

	assert.Equal(t, Key(a), Key(b))
	assert.NotEqual(t, Key(a), Key(c))
}

func TestCommentCacheAddAndIsSeen(t *testing.T) {
	cache := NewCommentCache(t.TempDir())

	key := Key(models.RawComment{Author: "dev", Body: "hello"})
	assert.False(t, cache.IsSeen(key))

	cache.Add([]string{key})
	assert.True(t, cache.IsSeen(key))
}

func TestCommentCachePersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()

	first := NewCommentCache(dir)
	key := Key(models.RawComment{Author: "dev", Body: "persisted"})
	first.Add([]string{key})

	second := NewCommentCache(dir)
	require.True(t, second.IsSeen(key))
}

func TestCommentCacheEmptyAddWritesNothing(t *testing.T) {
	cache := NewCommentCache(t.TempDir())
	cache.Add(nil)

	key := Key(models.RawComment{Author: "dev", Body: "x"})
	assert.False(t, cache.IsSeen(key))
}
