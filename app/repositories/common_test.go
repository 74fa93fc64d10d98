package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB opens a throwaway Badger database in a temp directory.
func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []byte("post:abc"), postKey("abc"))
	assert.Equal(t, []byte("comment:p1:c1"), commentKey("p1", "c1"))
	assert.Equal(t, []byte("comment:p1:"), commentPostPrefix("p1"))
}

func TestMarshalEntity(t *testing.T) {
	data, err := marshalEntity(map[string]string{"a": "b"})
	assert.NoError(t, err)

	var out map[string]string
	err = unmarshalEntity(data, &out)
	assert.NoError(t, err)
	assert.Equal(t, "b", out["a"])

	err = unmarshalEntity([]byte("not json"), &out)
	assert.Error(t, err)
}
