package main

import (
	"context"
	"fmt"
	"os"

	"diskusage/internal/controllers"
	"diskusage/internal/routes"
	"diskusage/internal/services"

	"github.com/pkg/errors"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	root, err := routes.NewRootCommand(version, services.NewSource)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, controllers.ErrNothingToShow) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
