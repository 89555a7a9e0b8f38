package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/bookbind/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// SettingsPathEnv names the environment variable that points at an
// optional HCL settings file.
const SettingsPathEnv = "BOOKBIND_SETTINGS"

// Settings are the ambient knobs that are not part of the command line.
type Settings struct {
	LogLevel  string
	LogFormat string
}

// DefaultSettings returns the settings used when no file is configured.
func DefaultSettings() *Settings {
	return &Settings{LogLevel: DefaultLogLevel, LogFormat: DefaultLogFormat}
}

// settingsFile is the HCL shape of a settings file.
type settingsFile struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// LoadSettingsFromEnv loads the file named by SettingsPathEnv in environ,
// or returns DefaultSettings when the variable is unset or empty.
func LoadSettingsFromEnv(ctx context.Context, environ []string) (*Settings, error) {
	path := lookupEnv(environ, SettingsPathEnv)
	if path == "" {
		ctxlog.FromContext(ctx).Debug("No settings file configured, using defaults.")
		return DefaultSettings(), nil
	}
	return LoadSettings(ctx, path, environ)
}

// LoadSettings parses the HCL settings file at path. Expressions in the file
// can read the process environment through the "env" object, e.g.
//
//	log_level = env.BOOKBIND_LOG_LEVEL
func LoadSettings(ctx context.Context, path string, environ []string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Settings loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(environ),
		},
	}

	var raw settingsFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	s := DefaultSettings()
	if raw.LogLevel != "" {
		s.LogLevel = strings.ToLower(raw.LogLevel)
	}
	if raw.LogFormat != "" {
		s.LogFormat = strings.ToLower(raw.LogFormat)
	}
	if err := validateLogging(s.LogLevel, s.LogFormat); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}

	logger.Debug("Settings loaded.", "log_level", s.LogLevel, "log_format", s.LogFormat)
	return s, nil
}

// envObject exposes environ ("KEY=value" pairs) as a cty object of strings.
func envObject(environ []string) cty.Value {
	vals := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		// First occurrence wins, as with os.Getenv.
		if _, seen := vals[k]; seen {
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	if len(vals) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vals)
}

func lookupEnv(environ []string, key string) string {
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v
		}
	}
	return ""
}
