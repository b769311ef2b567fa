// Package language maps file names to the tag used on fenced Markdown blocks.
package language

import (
	"path/filepath"
	"strings"
)

// byExtension is keyed by lower-case extension including the dot.
var byExtension = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".java": "java",
	".cs":   "csharp",
	".fs":   "fsharp",
	".vb":   "vbnet",
	".go":   "go",
	".rs":   "rust",
	".c":    "c",
	".cpp":  "cpp",
	".h":    "cpp",
	".html": "html",
	".css":  "css",
	".scss": "scss",
	".less": "less",
	".xml":  "xml",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".sh":   "bash",
	".bash": "bash",
	".zsh":  "bash",
	".ps1":  "powershell",
	".psm1": "powershell",
	".psd1": "powershell",
	".rb":   "ruby",
	".php":  "php",
	".sql":  "sql",
	".md":   "markdown",
	".txt":  "",

	".gitignore":     "ignore",
	".gitattributes": "ignore",
}

// byName covers files identified by their whole base name.
var byName = map[string]string{
	".gitignore":     "ignore",
	".gitattributes": "ignore",
	"Dockerfile":     "dockerfile",
}

// Hint returns the language tag for path, or "" when nothing is mapped.
// Dotfiles such as ".gitignore" have no extension and resolve by name.
func Hint(path string) string {
	base := filepath.Base(path)
	if !strings.HasPrefix(base, ".") || strings.Count(base, ".") > 1 {
		if hint, ok := byExtension[strings.ToLower(filepath.Ext(base))]; ok {
			return hint
		}
	}
	return byName[base]
}
