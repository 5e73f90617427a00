package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// AppConfig holds the path of the optional TOML topic manifest.
type AppConfig struct {
	path string
}

// Manifest declares topics with their source files and an optional custom
// answer prompt.
type Manifest struct {
	Topics []TopicConfig `toml:"topics"`
}

// TopicConfig is one topic entry in the manifest.
type TopicConfig struct {
	Name    string   `toml:"name"`
	Sources []string `toml:"sources"`
	Prompt  string   `toml:"prompt"`
}

// Topic returns the entry's name as a domain topic.
func (t TopicConfig) Topic() model.Topic {
	return model.Topic(t.Name)
}

// Flags returns CLI flags for the topic manifest
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML topic manifest",
			Sources:     cli.EnvVars("TAVOLO_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Path returns the configured manifest path.
func (a *AppConfig) Path() string {
	return a.path
}

// Load reads and validates the manifest. It returns nil without error when
// no manifest path is configured.
func (a *AppConfig) Load() (*Manifest, error) {
	if a.path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "cannot read manifest", goerr.V(ConfigPathKey, a.path))
		}
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V(ConfigPathKey, a.path))
	}

	var manifest Manifest
	if err := toml.Unmarshal(raw, &manifest); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse manifest",
			goerr.V(ConfigPathKey, a.path),
			goerr.V("cause", err.Error()))
	}

	if err := manifest.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid manifest", goerr.V(ConfigPathKey, a.path))
	}

	return &manifest, nil
}

// Validate checks topic names for presence, validity and uniqueness.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Topics))
	for i, topic := range m.Topics {
		if topic.Name == "" {
			return goerr.Wrap(ErrMissingTopicName, "manifest entry has no name", goerr.V(TopicIndexKey, i))
		}
		if err := topic.Topic().Validate(); err != nil {
			return goerr.Wrap(err, "manifest topic name is invalid", goerr.V(TopicNameKey, topic.Name))
		}
		if seen[topic.Name] {
			return goerr.Wrap(ErrDuplicateTopic, "topic declared twice", goerr.V(TopicNameKey, topic.Name))
		}
		seen[topic.Name] = true
	}
	return nil
}
