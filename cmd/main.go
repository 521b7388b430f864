package main

import (
	"context"
	"os"

	"go-clinic-records/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New(context.Background())
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Errors have already been reported on stdout
	if err := app.Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
