package workspace

import (
	"path/filepath"
	"strings"
)

// Recognized language names.
const (
	LanguagePlain      = "plain"
	LanguagePython     = "python"
	LanguageJavaScript = "javascript"
)

// languageByExt maps file extensions to language names.
var languageByExt = map[string]string{
	".py": LanguagePython,
	".js": LanguageJavaScript,
}

// DetectLanguage returns the language name for a file path based on its
// extension, or "plain" when the extension is not recognized.
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}
	return LanguagePlain
}
