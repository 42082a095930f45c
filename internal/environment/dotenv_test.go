package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
)

func TestLoadFile(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddFile("/proj/.env", []byte(`# comment line
API_KEY=abc123

REDIS_URL=redis://localhost:6379
NO_EQUALS_LINE
export EXPORTED=yes
QUOTED="hello world"
SINGLE='${NOT_EXPANDED}'
EQUALS=a=b=c
TEMPLATE=${HOST:-localhost}
   SPACED = value  
EMPTY=
CRLF=value` + "\r\n"))

	env := LoadFile(fsys, "/proj/.env")

	assert.Equal(t, map[string]string{
		"API_KEY":   "abc123",
		"REDIS_URL": "redis://localhost:6379",
		"EXPORTED":  "yes",
		"QUOTED":    "hello world",
		"SINGLE":    "${NOT_EXPANDED}",
		"EQUALS":    "a=b=c",
		"TEMPLATE":  "${HOST:-localhost}",
		"SPACED":    "value",
		"EMPTY":     "",
		"CRLF":      "value",
	}, env)
}

func TestLoadFile_MissingFileIsEmpty(t *testing.T) {
	env := LoadFile(filesystems.NewMemoryFS(), "/nowhere/.env")
	assert.NotNil(t, env)
	assert.Empty(t, env)
}
