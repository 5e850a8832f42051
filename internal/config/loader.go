package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	jsonparser "github.com/knadh/koanf/parsers/json"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/benharvie/commitcheck/pkg/config"
	"github.com/benharvie/commitcheck/pkg/logger"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidConfig is returned when the configuration cannot be
	// parsed or finalized. It is fatal to the whole run.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPermissions is returned when a config file is
	// world-writable.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// ProjectConfigDir is the directory name for project configuration.
	ProjectConfigDir = ".commitcheck"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = "config.toml"

	// ProjectConfigFileAlt is the alternative TOML file name at the
	// repository root.
	ProjectConfigFileAlt = "commitcheck.toml"

	// ProjectConfigFileJSON is the JSON file name at the repository root.
	ProjectConfigFileJSON = "commitcheck.json"

	// EnvPrefix is the prefix for environment variable overrides.
	// Nesting uses a double underscore: COMMITCHECK_REFERENCES__ENABLED.
	EnvPrefix = "COMMITCHECK_"
)

// Loader resolves one immutable config snapshot per invocation.
// Precedence order (highest to lowest):
// 1. In-process overrides (CLI flags)
// 2. Environment variables (COMMITCHECK_*)
// 3. Project config (.commitcheck/config.toml, commitcheck.toml, commitcheck.json)
// 4. Defaults
type Loader struct {
	workDir    string
	configPath string
	log        logger.Logger
}

// NewLoader creates a Loader rooted at the current working directory.
func NewLoader(log logger.Logger) (*Loader, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewLoaderWithDir(workDir, log), nil
}

// NewLoaderWithDir creates a Loader rooted at a custom directory.
func NewLoaderWithDir(workDir string, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Loader{workDir: workDir, log: log}
}

// SetConfigPath pins the project config to an explicit file path instead
// of discovering one. A missing pinned file is a ConfigError.
func (l *Loader) SetConfigPath(path string) {
	l.configPath = path
}

// Load resolves the configuration from all sources and finalizes it.
// The returned snapshot is fully merged, compiled, and read-only from the
// engine's perspective.
func (l *Loader) Load(overrides map[string]any) (*config.Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	path, err := l.resolveConfigPath()
	if err != nil {
		return nil, err
	}

	if path != "" {
		l.log.Debug("loading project config", "path", path)

		if err := l.loadConfigFile(k, path); err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "loading %s: %v", path, err)
		}
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load overrides")
		}
	}

	raw := k.Raw()
	normalizeRuleShorthand(raw)

	merged := koanf.New(".")
	if err := merged.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to normalize config")
	}

	var cfg config.Config

	unmarshalConf := koanf.UnmarshalConf{Tag: "koanf", FlatPaths: false}
	if err := merged.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "unmarshaling config: %v", err)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "finalizing config: %v", err)
	}

	return &cfg, nil
}

// resolveConfigPath returns the project config path to load, or empty when
// none exists and none was pinned.
func (l *Loader) resolveConfigPath() (string, error) {
	if l.configPath != "" {
		if !fileExists(l.configPath) {
			return "", errors.Wrap(ErrConfigNotFound, l.configPath)
		}

		return l.configPath, nil
	}

	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path, nil
		}
	}

	return "", nil
}

// ProjectConfigPaths returns the paths checked for project configuration,
// in priority order.
func (l *Loader) ProjectConfigPaths() []string {
	return []string{
		filepath.Join(l.workDir, ProjectConfigDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
		filepath.Join(l.workDir, ProjectConfigFileJSON),
	}
}

// loadConfigFile loads a TOML or JSON config file with a permission check.
func (*Loader) loadConfigFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	if strings.HasSuffix(path, ".json") {
		return k.Load(file.Provider(path), jsonparser.Parser())
	}

	return k.Load(file.Provider(path), tomlparser.Parser())
}

// envTransform maps environment variable names to config paths.
// COMMITCHECK_REFERENCES__ENABLED -> references.enabled
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "__", ".")

	return key, value
}

// normalizeRuleShorthand rewrites the boolean disable shorthand
// ("capitalized": false) into the canonical {enabled: false} record so
// that unmarshaling always sees a rule table.
func normalizeRuleShorthand(raw map[string]any) {
	for _, key := range ruleKeys {
		value, ok := raw[key]
		if !ok {
			continue
		}

		if enabled, isBool := value.(bool); isBool {
			raw[key] = map[string]any{"enabled": enabled}
		}
	}
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
