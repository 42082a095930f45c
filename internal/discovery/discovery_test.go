package discovery

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/compose-spec/compose-go/v2/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
)

func TestLocate_PrefersFirstStandardName(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddFile("/work/docker-compose.yml", []byte("services: {}"))
	fsys.AddFile("/work/compose.yaml", []byte("services: {}"))

	descriptor, err := NewLocator(fsys).Locate("/work", "")
	require.NoError(t, err)
	assert.Equal(t, "/work/compose.yaml", descriptor.Path)
	assert.Equal(t, TypeCompose, descriptor.Type)
	assert.Equal(t, "/work", descriptor.Dir())
}

func TestLocate_FallsBackToLegacyName(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddFile("/work/docker-compose.yaml", []byte("services: {}"))

	descriptor, err := NewLocator(fsys).Locate("/work", "")
	require.NoError(t, err)
	assert.Equal(t, "/work/docker-compose.yaml", descriptor.Path)
}

func TestLocate_ExplicitFile(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddFile("/work/deploy/stack.yml", []byte("services: {}"))
	fsys.AddFile("/other/stack.yml", []byte("services: {}"))
	locator := NewLocator(fsys)

	descriptor, err := locator.Locate("/work", "deploy/stack.yml")
	require.NoError(t, err)
	assert.Equal(t, "/work/deploy/stack.yml", descriptor.Path)
	assert.Equal(t, "/work/deploy", descriptor.Dir())

	descriptor, err = locator.Locate("/work", "/other/stack.yml")
	require.NoError(t, err)
	assert.Equal(t, "/other/stack.yml", descriptor.Path)
}

func TestLocate_Missing(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddDir("/work/compose.yaml")
	locator := NewLocator(fsys)

	_, err := locator.Locate("/work", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDescriptorNotFound))
	hints := errors.FlattenHints(err)
	for _, name := range cli.DefaultFileNames {
		assert.Contains(t, hints, name)
	}

	_, err = locator.Locate("/work", "nope.yml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDescriptorNotFound))
	assert.Contains(t, err.Error(), "/work/nope.yml")
}

func TestEnvFile(t *testing.T) {
	locator := NewLocator(filesystems.NewMemoryFS())
	descriptor := Descriptor{Path: "/work/deploy/compose.yaml", Type: TypeCompose}

	assert.Equal(t, "/work/deploy/.env", locator.EnvFile(descriptor, "/work", ""))
	assert.Equal(t, "/work/prod.env", locator.EnvFile(descriptor, "/work", "prod.env"))
	assert.Equal(t, "/etc/app.env", locator.EnvFile(descriptor, "/work", "/etc/app.env"))
}
