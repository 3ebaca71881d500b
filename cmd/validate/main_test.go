package main

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dungeon/content"
)

func contentFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := content.FS.ReadFile(name)
	require.NoError(t, err)
	return data
}

func TestValidate_EmbeddedContent(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, validate(content.FS, &out))
	assert.Equal(t, "ok: 9 locations, 4 items, 2 enemies\n", out.String())
}

func TestValidate_UnknownEnemyRequirement(t *testing.T) {
	enemies := strings.Replace(string(contentFile(t, content.EnemiesFile)), "requires: [sword]", "requires: [axe]", 1)
	fsys := fstest.MapFS{
		content.WorldFile:   {Data: contentFile(t, content.WorldFile)},
		content.ItemsFile:   {Data: contentFile(t, content.ItemsFile)},
		content.EnemiesFile: {Data: []byte(enemies)},
	}
	err := validate(fsys, &bytes.Buffer{})
	assert.ErrorContains(t, err, "axe")
}

func TestValidate_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		content.WorldFile: {Data: contentFile(t, content.WorldFile)},
	}
	assert.Error(t, validate(fsys, &bytes.Buffer{}))
}
