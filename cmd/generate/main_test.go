package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designcollective.dev/internal/models"
	"designcollective.dev/internal/view"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	clock := view.Fixed(time.Date(2029, 3, 3, 0, 0, 0, 0, time.UTC))

	require.NoError(t, export(dir, models.DefaultContent(), clock))

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "© 2029 Design Collective")
	assert.Contains(t, string(page), `src="static/js/motion.js"`)

	data, err := os.ReadFile(filepath.Join(dir, "content.json"))
	require.NoError(t, err)
	var content models.Content
	require.NoError(t, json.Unmarshal(data, &content))
	assert.NoError(t, content.Validate())

	for _, asset := range []string{"js/motion.js", "js/menu.js", "css/site.css"} {
		assert.FileExists(t, filepath.Join(dir, "static", asset))
	}
}
