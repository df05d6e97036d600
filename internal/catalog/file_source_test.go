package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	content := csvHeader + "\n" +
		"Boat,Storm Pro,Smartwatch,Black,AMOLED Display,Silicone,1999,2999,4.2,1500,7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	source := NewFileSource(path, zerolog.Nop())
	table, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "Boat", table.Products()[0].Brand)
}

func TestFileSource_LoadMissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"), zerolog.Nop())

	table, err := source.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, table)
	assert.Contains(t, err.Error(), "failed to open catalogue file")
}

func TestFileSource_LoadBadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("Brand Name,Model Name\nBoat,Storm\n"), 0o644))

	source := NewFileSource(path, zerolog.Nop())

	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}
