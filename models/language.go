package models

// DefaultLanguage is substituted when a stored note carries a language tag
// this build does not recognize. An unknown tag is a presentation concern,
// never a read failure.
const DefaultLanguage = "plaintext"

// Languages lists the syntax-highlighting tags the viewer understands.
var Languages = []string{
	"plaintext",
	"bash",
	"brainfuck",
	"c",
	"cpp",
	"css",
	"go",
	"html",
	"java",
	"javascript",
	"json",
	"markdown",
	"python",
	"rust",
	"sql",
	"toml",
	"typescript",
	"yaml",
}

// KnownLanguage reports whether language is in [Languages].
func KnownLanguage(language string) bool {
	for _, l := range Languages {
		if l == language {
			return true
		}
	}
	return false
}
