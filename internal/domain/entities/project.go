package entities

const (
	ProjectFile         = "xx.json"
	FallbackProjectFile = "package.json"
	InitialVersion      = "0.0.1"
)

// ProjectConfig describes the file that supplied the local version.
type ProjectConfig struct {
	Path    string
	Name    string
	Version string
	Created bool
}
