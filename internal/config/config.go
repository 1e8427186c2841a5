// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Run configuration with env and file overrides

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the tunable run parameters. Defaults reproduce the standard
// scaffold; overrides come from PYBOOT_* environment variables or an
// optional .pyboot.yaml in the working directory.
type Config struct {
	VenvDir          string   // Virtual environment directory name
	PythonCommand    string   // Interpreter used to create the venv
	DefaultBranch    string   // Primary branch pushed to the remote
	CommitMessage    string   // Message for the initial commit
	DevDependencies  []string // Tools listed in requirements-dev.txt
	FallbackUsername string   // Placeholder identity when gh is unavailable
}

// Load reads configuration for a run rooted at dir
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("venv_dir", ".venv")
	v.SetDefault("python_command", "python3")
	v.SetDefault("default_branch", "main")
	v.SetDefault("commit_message", "Initial commit with project structure")
	v.SetDefault("dev_dependencies", []string{"pytest", "black", "flake8", "mypy"})
	v.SetDefault("fallback_username", "yourusername")

	v.SetEnvPrefix("PYBOOT")
	v.AutomaticEnv()

	v.SetConfigName(".pyboot")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		VenvDir:          v.GetString("venv_dir"),
		PythonCommand:    v.GetString("python_command"),
		DefaultBranch:    v.GetString("default_branch"),
		CommitMessage:    v.GetString("commit_message"),
		DevDependencies:  v.GetStringSlice("dev_dependencies"),
		FallbackUsername: v.GetString("fallback_username"),
	}, nil
}
