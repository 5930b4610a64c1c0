package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
test:
  greeting: "Hello {0}, you have {1} days"
  payload: "Body {0}"
`), 0o600))
	require.NoError(t, Init(path))

	assert.Equal(t, "Hello ana, you have 5 days", GetMessage("test.greeting", "ana", 5))
	assert.Equal(t, `Body {"id":"x"}`, GetMessage("test.payload", map[string]string{"id": "x"}))
	assert.Equal(t, "Body ", GetMessage("test.payload", nil))
	assert.Equal(t, "Message not found: test.absent", GetMessage("test.absent"))
}

func TestInitMissingFile(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "absent.yml")))
}
