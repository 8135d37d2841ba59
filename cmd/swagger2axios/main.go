// Command swagger2axios generates axios request functions from Swagger 2.0
// and OpenAPI 3.x documents.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/FreezeNow/swagger-to-axios/cmd/swagger2axios/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
