package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu/persona/internal/content"
)

func tempRegistry(t *testing.T) *Registry {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "users.json"))
}

func TestFindByCredentials(t *testing.T) {
	reg := tempRegistry(t)
	require.NoError(t, reg.Upsert(NewProfile("minh", "minh@example.com", "secret")))

	tests := []struct {
		name       string
		identifier string
		password   string
		found      bool
	}{
		{"by email", "minh@example.com", "secret", true},
		{"by username", "minh", "secret", true},
		{"wrong password", "minh", "nope", false},
		{"unknown identifier", "ghost", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := reg.FindByCredentials(tt.identifier, tt.password)
			require.NoError(t, err)
			if tt.found {
				require.NotNil(t, user)
				assert.Equal(t, "minh", user.Username)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func TestUpsertReplacesByIdentityKey(t *testing.T) {
	reg := tempRegistry(t)

	user := NewProfile("minh", "minh@example.com", "secret")
	require.NoError(t, reg.Upsert(user))

	user.SetProgress(content.MBTI, 0.5)
	user.SetType(content.DISC, "DI")
	require.NoError(t, reg.Upsert(user))

	users, err := reg.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 0.5, users[0].ProgressFor(content.MBTI))

	code, ok := users[0].TypeFor(content.DISC)
	assert.True(t, ok)
	assert.Equal(t, "DI", code)
}

func TestUpsertAppendsNewUsers(t *testing.T) {
	reg := tempRegistry(t)
	require.NoError(t, reg.Upsert(NewProfile("a", "a@example.com", "pw")))
	require.NoError(t, reg.Upsert(NewProfile("b", "b@example.com", "pw")))

	users, err := reg.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "b", users[1].Username)
}

func TestMissingFileIsEmptyRegistry(t *testing.T) {
	reg := tempRegistry(t)

	users, err := reg.ListAll()
	require.NoError(t, err)
	assert.Empty(t, users)

	user, err := reg.Find("anyone")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCorruptFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path).ListAll()
	assert.Error(t, err)
}

func TestKeyPrefersEmail(t *testing.T) {
	withEmail := NewProfile("minh", "minh@example.com", "pw")
	assert.Equal(t, "minh@example.com", withEmail.Key())

	usernameOnly := NewProfile("minh", "", "pw")
	assert.Equal(t, "minh", usernameOnly.Key())
}

func TestNewProfileZeroesEveryInstrument(t *testing.T) {
	user := NewProfile("minh", "", "pw")
	for _, inst := range content.Instruments() {
		assert.Equal(t, 0.0, user.ProgressFor(inst))
		_, ok := user.TypeFor(inst)
		assert.False(t, ok)
	}
}
