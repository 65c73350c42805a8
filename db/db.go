package db

import (
	"github.com/richcrm/richcrm/db/store"
	"github.com/richcrm/richcrm/db/store/dynamo"
	"github.com/richcrm/richcrm/db/store/memory"
	"github.com/richcrm/richcrm/pkg/env"
	"github.com/richcrm/richcrm/pkg/log"
)

var conn store.Store

// Connection returns the process-wide item store, building it
// from the environment on first use.
func Connection() store.Store {
	if conn != nil {
		return conn
	}

	switch env.Variables().StoreBackend {
	case "memory":
		conn = memory.New()
	case "dynamo":
		fallthrough
	default:
		d, err := dynamo.New()
		if err != nil {
			log.Fatal("failed to connect to dynamodb", "error", err)
		}
		conn = d
	}

	return conn
}

// SetConnection overrides the process-wide store. Used by tests.
func SetConnection(s store.Store) {
	conn = s
}
