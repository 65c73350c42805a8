package start

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/richcrm/richcrm/api"
	"github.com/richcrm/richcrm/pkg/log"
	"github.com/spf13/cobra"
)

const (
	usage   = "start"
	short   = "Start a richcrm backend instance"
	long    = "This command starts a richcrm backend instance"
	example = "richcrm start"
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"s"},
		SuggestFor: []string{"launch", "boot", "up", "run", "begin"},
		Example:    example,
		RunE:       start,
	}
)

func start(cmd *cobra.Command, args []string) error {
	signalChan := make(chan os.Signal, 1)

	go func() {
		for s := range signalChan {
			if s == syscall.SIGINT {
				log.Info("gracefully shutting down due to SIGINT signal")
				shutdown()
				os.Exit(0)
			}
		}
	}()

	signal.Notify(signalChan, syscall.SIGINT)

	log.Info("spinning up api")
	return api.Start()
}

func shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.Shutdown(ctx); err != nil {
		log.Error("api shutdown failure", "error", err)
	}
}
