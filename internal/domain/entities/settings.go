package entities

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// HomeEnvVar overrides the directory the CLI keeps its files in.
	HomeEnvVar = "XX_HOME"

	EnvFileName      = ".xx-cli.env"
	CLIHomeKey       = "CLI_HOME"
	SettingsFileName = "settings.yaml"

	DefaultCLIHome        = ".xx-cli"
	DefaultRemote         = "origin"
	DefaultMainBranch     = "main"
	DefaultRepoConfigFile = ".xxRepo.json"
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the per-invocation configuration of the CLI. It is built once and never mutated.
type Settings struct {
	HomeDir        string `yaml:"-"`
	CLIHome        string `yaml:"-"`
	Remote         string `yaml:"remote"`
	MainBranch     string `yaml:"main_branch"`
	RepoConfigFile string `yaml:"repo_config_file"`
	MinGitVersion  string `yaml:"min_git_version"`

	// APIURLs points a server type at a self-hosted instance: the API root for
	// GITHUB and GITEE, the web URL for GITLAB.
	APIURLs map[ServerType]string `yaml:"api_urls"`
}

// NewSettings loads the settings of the current user, honouring XX_HOME.
func NewSettings() (*Settings, error) {
	homeDir := os.Getenv(HomeEnvVar)
	if homeDir == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		homeDir = userHome
	}
	return LoadSettings(homeDir)
}

// LoadSettings reads <homeDir>/.xx-cli.env and the optional settings.yaml under CLI_HOME.
// Missing files fall back to the defaults.
func LoadSettings(homeDir string) (*Settings, error) {
	settings := &Settings{
		HomeDir: homeDir,
		CLIHome: filepath.Join(homeDir, DefaultCLIHome),
	}

	envPath := filepath.Join(homeDir, EnvFileName)
	values, err := godotenv.Read(envPath)
	switch {
	case err == nil:
		if cliHome := values[CLIHomeKey]; cliHome != "" {
			settings.CLIHome = resolvePath(homeDir, cliHome)
		}
	case errors.Is(err, fs.ErrNotExist):
		logger.Debugf("No env file at %q, using defaults", envPath)
	default:
		return nil, fmt.Errorf("failed to read env file %q: %w", envPath, err)
	}

	settingsPath := filepath.Join(settings.CLIHome, SettingsFileName)
	data, err := os.ReadFile(settingsPath)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal([]byte(expandEnv(string(data))), settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse settings file %q: %w", settingsPath, unmarshalErr)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read settings file %q: %w", settingsPath, err)
	}

	if err = settings.validateAPIURLs(); err != nil {
		return nil, fmt.Errorf("invalid settings file %q: %w", settingsPath, err)
	}
	settings.applyDefaults()
	return settings, nil
}

// RepoConfigPath returns the absolute path of the per-repository configuration file.
func (s *Settings) RepoConfigPath() string {
	return resolvePath(s.HomeDir, s.RepoConfigFile)
}

func (s *Settings) applyDefaults() {
	if s.Remote == "" {
		s.Remote = DefaultRemote
	}
	if s.MainBranch == "" {
		s.MainBranch = DefaultMainBranch
	}
	if s.RepoConfigFile == "" {
		s.RepoConfigFile = DefaultRepoConfigFile
	}
	if s.MinGitVersion == "" {
		s.MinGitVersion = DefaultMinGitVersion
	}
}

func (s *Settings) validateAPIURLs() error {
	for server, rawURL := range s.APIURLs {
		switch server {
		case ServerGitHub, ServerGitee, ServerGitLab:
		default:
			return fmt.Errorf("api_urls: unknown server type %q", server)
		}
		parsed, err := url.Parse(rawURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("api_urls: %s needs an absolute URL, got %q", server, rawURL)
		}
	}
	return nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
