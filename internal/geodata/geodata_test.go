package geodata

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

const squareBoundaries = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"shapeName": "Ontario"},
     "geometry": {"type": "Polygon", "coordinates": [[[-95,42],[-74,42],[-74,56],[-95,56],[-95,42]]]}},
    {"type": "Feature", "properties": {"shapeName": "Quebec"},
     "geometry": {"type": "Polygon", "coordinates": [[[-74,45],[-57,45],[-57,62],[-74,62],[-74,45]]]}}
  ]
}`

const samplePoints = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "CN Tower"}, "geometry": {"type": "Point", "coordinates": [-79.387, 43.642]}},
    {"type": "Feature", "properties": {"name": null}, "geometry": {"type": "Point", "coordinates": [-79.0, 43.0]}},
    {"type": "Feature", "properties": {"name": "Some Road"}, "geometry": {"type": "LineString", "coordinates": [[-79,43],[-78,44]]}}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
