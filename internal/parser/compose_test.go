package parser

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youroldmangaming/Apple-Container-Compose/internal/discovery"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/filesystems"
	"github.com/youroldmangaming/Apple-Container-Compose/internal/schema"
)

const sampleDescriptor = `version: "3.8"
services:
  web:
    image: nginx:1.25
    ports: ["8080:80"]
    networks: [front]
  api:
    build: ./api
    environment:
      - PORT=3000
networks:
  front:
    driver: bridge
volumes:
  data: {}
x-custom:
  ignored: true
`

func TestComposeParser_Parse(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddFile("/home/me/shop/compose.yaml", []byte(sampleDescriptor))
	p := NewComposeParser(fsys)

	require.True(t, p.CanParse(discovery.TypeCompose))
	assert.False(t, p.CanParse("fly"))

	project, err := p.Parse(discovery.Descriptor{Path: "/home/me/shop/compose.yaml", Type: discovery.TypeCompose})
	require.NoError(t, err)

	assert.Equal(t, "3.8", project.Version)
	assert.Equal(t, "shop", project.Name)
	assert.Equal(t, []string{"api", "web"}, project.ServiceNames())
	assert.Equal(t, "nginx:1.25", project.Services["web"].Image)
	assert.Equal(t, &schema.BuildSpec{Context: "./api"}, project.Services["api"].Build)
	assert.Equal(t, "bridge", project.Networks["front"].Driver)
	assert.Contains(t, project.Volumes, "data")
}

func TestComposeParser_ExplicitNameWins(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddFile("/srv/app/compose.yaml", []byte("name: storefront\nservices:\n  web:\n    image: nginx\n"))

	project, err := NewComposeParser(fsys).Parse(discovery.Descriptor{Path: "/srv/app/compose.yaml", Type: discovery.TypeCompose})
	require.NoError(t, err)
	assert.Equal(t, "storefront", project.Name)
}

func TestComposeParser_ReadFailure(t *testing.T) {
	p := NewComposeParser(filesystems.NewMemoryFS())

	_, err := p.Parse(discovery.Descriptor{Path: "/missing/compose.yaml", Type: discovery.TypeCompose})
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "/missing/compose.yaml", parseErr.Path)
	assert.True(t, errors.Is(err, filesystems.ErrNotExist))
}

func TestComposeParser_SchemaViolationIsParseError(t *testing.T) {
	fsys := filesystems.NewMemoryFS()
	fsys.AddFile("/app/compose.yaml", []byte("services:\n  web:\n    restart: always\n"))

	_, err := NewComposeParser(fsys).Parse(discovery.Descriptor{Path: "/app/compose.yaml", Type: discovery.TypeCompose})
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, schema.ErrServiceNoImage))
	assert.Contains(t, err.Error(), "web")
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace", "  \n\t\n", ErrEmptyInput},
		{"no services key", "version: '3'\n", ErrNoServices},
		{"empty services", "services: {}\n", ErrNoServices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is))
		})
	}
}

func TestDecode_MalformedYAML(t *testing.T) {
	_, err := Decode([]byte("services: [unclosed"))
	require.Error(t, err)

	_, err = Decode([]byte("just a string"))
	require.Error(t, err)
}
