package gwaskit

import (
	"path/filepath"
	"strings"
)

// output formats, static ones go through gonum plot, html through echarts
var outputExts = map[string]bool{
	".pdf":  true,
	".png":  true,
	".svg":  true,
	".html": true,
}

// KnownExt reports whether ext (with the dot) is a supported output format.
func KnownExt(ext string) bool {
	return outputExts[strings.ToLower(ext)]
}

// OutputPath appends def to path unless path already ends in a
// supported extension.
func OutputPath(path, def string) string {
	if KnownExt(filepath.Ext(path)) {
		return path
	}
	return path + def
}

func isHTML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".html")
}

// RenderManhattan writes m to path in the format its extension names.
func RenderManhattan(m *Manhattan, path string) error {
	if isHTML(path) {
		return writeHTML(path, manhattanChart(m))
	}
	return saveManhattan(m, path)
}

// RenderQQ writes q to path in the format its extension names.
func RenderQQ(q *QQ, path string) error {
	if isHTML(path) {
		return writeHTML(path, qqChart(q))
	}
	return saveQQ(q, path)
}
