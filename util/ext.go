package util

import "strings"

// SplitExt splits name into base and extension at the last dot. Leading dots
// do not start an extension, so ".bashrc" has none.
func SplitExt(name string) (base, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || strings.Trim(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// NormalizeExt lowercases ext and ensures it has a leading dot. An empty
// string stays empty.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}
