package main

import (
	"github.com/richcrm/richcrm/cmd"
	"github.com/richcrm/richcrm/pkg/env"
	"github.com/richcrm/richcrm/pkg/log"
)

func main() {
	if err := env.Process(); err != nil {
		log.Fatal("environment failure", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal("richcrm failure", "error", err)
	}
}
