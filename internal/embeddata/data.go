package embeddata

import "embed"

//go:embed scenario.yaml about.md
var embeddedFS embed.FS

// ReadScenario returns the contents of the built-in scenario.
func ReadScenario() ([]byte, error) {
	return embeddedFS.ReadFile("scenario.yaml")
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}
