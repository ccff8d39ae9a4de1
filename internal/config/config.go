// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"titanium-cli/internal/issue"
	"titanium-cli/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "titanium"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. TITANIUM_CLI_LOG_LEVEL.
	EnvPrefix = "TITANIUM"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the titanium configuration directory under the XDG
// config home ($XDG_CONFIG_HOME, ~/Library/Application Support, %APPDATA%).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	if xdg.ConfigHome == "" {
		return "", errors.New("failed to resolve config home")
	}
	return filepath.Join(xdg.ConfigHome, AppName), nil
}

// CommandsDir returns the directory for user-defined command metadata.
// It is always scanned by discovery in addition to paths.commands.
func CommandsDir() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "commands"), nil
}

// ConfigFilePath returns the default config file location.
func ConfigFilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading. It returns the
// resolved config file path, empty when only defaults were used.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("cli.colors", defaults.CLI.Colors)
	v.SetDefault("cli.log_level", string(defaults.CLI.LogLevel))
	v.SetDefault("cli.quiet", defaults.CLI.Quiet)
	v.SetDefault("cli.banner", defaults.CLI.Banner)
	v.SetDefault("paths.commands", defaults.Paths.Commands)
	v.SetDefault("paths.sdks", defaults.Paths.SDKs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	// A config file named by --config is used exclusively.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'titanium config show' to see the default configuration").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", invalidConfigFile(opts.ConfigFilePath, err)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}

		cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(cuePath) {
			if err := loadCUEIntoViper(v, cuePath); err != nil {
				return nil, "", invalidConfigFile(cuePath, err)
			}
			resolvedPath = cuePath
		}
		// If no config file found, use defaults (no error)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema.
	if valid, errs := cfg.IsValid(); !valid {
		ec := issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Check TITANIUM_* environment variables").
			Wrap(errs[0])
		if cfg.CLI.LogLevel != "" {
			if ok, _ := cfg.CLI.LogLevel.IsValid(); !ok {
				ec.WithIssue(issue.InvalidLogLevelId)
			}
		}
		return nil, "", ec.BuildError()
	}

	return &cfg, resolvedPath, nil
}

func invalidConfigFile(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("Run 'titanium config init' to write a fresh default file").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Config decodes to map[string]any rather than a struct so Viper keeps its
// defaults and env overrides, and uses Concrete(false) because every field
// is optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// EnsureCommandsDir creates the commands directory if it doesn't exist
func EnsureCommandsDir() error {
	cmdsDir, err := CommandsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cmdsDir, 0o755)
}

// CreateDefaultConfig writes the default config file unless one exists.
// It returns the file path and whether it was created.
func CreateDefaultConfig() (string, bool, error) {
	cfgPath, err := ConfigFilePath()
	if err != nil {
		return "", false, err
	}
	created, err := CreateDefaultConfigAt(cfgPath)
	return cfgPath, created, err
}

// CreateDefaultConfigAt writes the default config to cfgPath unless the file
// exists, reporting whether it was created.
func CreateDefaultConfigAt(cfgPath string) (bool, error) {
	if _, err := os.Stat(cfgPath); err == nil {
		return false, nil
	}
	if err := writeConfig(cfgPath, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	cfgPath, err := ConfigFilePath()
	if err != nil {
		return err
	}
	return writeConfig(cfgPath, cfg)
}

func writeConfig(cfgPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return issue.NewErrorContext().
			WithOperation("create config directory").
			WithResource(filepath.Dir(cfgPath)).
			WithIssue(issue.PermissionDeniedId).
			Wrap(err).
			BuildError()
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// Titanium CLI Configuration File\n")
	sb.WriteString("// Environment variables prefixed with TITANIUM_ override these values.\n\n")

	sb.WriteString("cli: {\n")
	fmt.Fprintf(&sb, "\tcolors:    %v\n", cfg.CLI.Colors)
	fmt.Fprintf(&sb, "\tlog_level: %q\n", cfg.CLI.LogLevel)
	fmt.Fprintf(&sb, "\tquiet:     %v\n", cfg.CLI.Quiet)
	fmt.Fprintf(&sb, "\tbanner:    %v\n", cfg.CLI.Banner)
	sb.WriteString("}\n")

	sb.WriteString("\npaths: {\n")
	writePaths(&sb, "commands", cfg.Paths.Commands)
	writePaths(&sb, "sdks", cfg.Paths.SDKs)
	sb.WriteString("}\n")

	return sb.String()
}

func writePaths(sb *strings.Builder, key string, paths []SearchPath) {
	if len(paths) == 0 {
		fmt.Fprintf(sb, "\t%s: []\n", key)
		return
	}
	fmt.Fprintf(sb, "\t%s: [\n", key)
	for _, p := range paths {
		fmt.Fprintf(sb, "\t\t%q,\n", p)
	}
	sb.WriteString("\t]\n")
}
