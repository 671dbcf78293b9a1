package main

import (
	"context"
	"flag"
	"log"
	"os"

	entrypoint "github.com/louisbranch/cosmos/internal/platform/cmd"
	"github.com/louisbranch/cosmos/internal/platform/config"
	catalogimporter "github.com/louisbranch/cosmos/internal/tools/importer/catalog"
)

func main() {
	log.SetPrefix("[CATALOG-IMPORTER] ")
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	err = entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceCatalogImporter, func(ctx context.Context) error {
		return catalogimporter.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
