package env

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/pkg/log"
)

var variables = new(Environment)

// Process the environment variables set for richcrm.
func Process() error {
	if err := envconfig.Process("richcrm", variables); err != nil {
		return errors.Wrap(err, "failed to process environment variables")
	}

	// set the log level
	if err := log.SetLevel(variables.LogLevel); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}

	return nil
}

// Variables returns the processed environment variables.
func Variables() Environment {
	return *variables
}

// Environment defines the environment variables used
// by richcrm.
type Environment struct {
	LogLevel           string `default:"info" split_words:"true"`
	Port               int    `default:"8080"`
	StoreBackend       string `default:"dynamo" split_words:"true"` // "dynamo" or "memory"
	AWSRegion          string `default:"us-east-1" split_words:"true"`
	AWSAccessKeyID     string `default:"" split_words:"true"`
	AWSSecretAccessKey string `default:"" split_words:"true"`
	DynamoEndpoint     string `default:"" split_words:"true"` // local development override
	TablePrefix        string `default:"" split_words:"true"`
}
