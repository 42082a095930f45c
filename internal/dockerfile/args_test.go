package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiStage = `ARG BASE=alpine:3.19
FROM ${BASE} AS build
ARG VERSION
ARG COMMIT=unknown
RUN echo $VERSION $COMMIT

FROM scratch
ARG VERSION
COPY --from=build /out /out
`

func TestDeclaredArgs(t *testing.T) {
	args, err := DeclaredArgs([]byte(multiStage))
	require.NoError(t, err)
	assert.Equal(t, []string{"BASE", "COMMIT", "VERSION"}, args)
}

func TestDeclaredArgs_NoArgs(t *testing.T) {
	args, err := DeclaredArgs([]byte("FROM alpine\nRUN true\n"))
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestUndeclaredArgs(t *testing.T) {
	missing, err := UndeclaredArgs([]byte(multiStage), map[string]string{
		"VERSION":    "1.0",
		"NODE_ENV":   "production",
		"HTTP_PROXY": "http://proxy:3128",
		"EXTRA":      "",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"EXTRA", "NODE_ENV"}, missing)
}
