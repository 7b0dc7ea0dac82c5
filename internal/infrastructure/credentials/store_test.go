package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "session.yaml")),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			assert.False(t, store.HasToken())
			assert.Equal(t, "", store.Token())
			assert.Nil(t, store.UserInfo())

			require.NoError(t, store.Save("1|abcdef", &UserInfo{ID: 7, Name: "Admin", Email: "admin@onlyfix.local"}))
			assert.True(t, store.HasToken())
			assert.Equal(t, "1|abcdef", store.Token())
			assert.Equal(t, &UserInfo{ID: 7, Name: "Admin", Email: "admin@onlyfix.local"}, store.UserInfo())

			require.NoError(t, store.Save("2|second", nil))
			assert.Equal(t, "2|second", store.Token())
			assert.Nil(t, store.UserInfo())

			require.NoError(t, store.Clear())
			assert.False(t, store.HasToken())
			require.NoError(t, store.Clear())
		})
	}
}

func TestMemoryStore_UserInfoIsCopy(t *testing.T) {
	store := NewMemoryStore()
	info := &UserInfo{ID: 1, Name: "A"}
	require.NoError(t, store.Save("t", info))

	info.Name = "changed"
	got := store.UserInfo()
	got.Email = "x"

	assert.Equal(t, &UserInfo{ID: 1, Name: "A"}, store.UserInfo())
}

func TestFileStore_PermissionsAndPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, NewFileStore(path).Save("3|persisted", &UserInfo{ID: 2, Name: "B", Email: "b@x.io"}))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

	reopened := NewFileStore(path)
	assert.Equal(t, "3|persisted", reopened.Token())
	assert.Equal(t, "B", reopened.UserInfo().Name)
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: [unclosed"), 0o600))

	store := NewFileStore(path)
	assert.False(t, store.HasToken())
	assert.Nil(t, store.UserInfo())
}
