package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/eskrenkovic/storefront-admin/internal/config"
	"github.com/eskrenkovic/storefront-admin/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := loadEnvFile(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	config, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	server, err := server.NewHTTPServer(config)
	if err != nil {
		log.Fatal(err)
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil {
			log.Fatal(err)
		}
	case <-signals:
	}

	if err := server.Stop(); err != nil {
		log.Fatal(err)
	}
}

// loadEnvFile loads config.env from the directory given as the first
// argument, or .env from the working directory when it exists.
func loadEnvFile(args []string) error {
	if len(args) > 0 {
		rootPath := args[0]
		if rootPath == "" {
			return errors.New("root directory path is empty")
		}
		return godotenv.Load(path.Join(rootPath, "config.env"))
	}

	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}

	return nil
}
