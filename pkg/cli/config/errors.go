package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound   = goerr.New("configuration file not found")
	ErrInvalidConfig    = goerr.New("invalid configuration")
	ErrDuplicateTopic   = goerr.New("duplicate topic name")
	ErrMissingTopicName = goerr.New("topic name is required")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	TopicNameKey  = "topic_name"
	TopicIndexKey = "topic_index"
)
