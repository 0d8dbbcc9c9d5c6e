package cli

import (
	"context"
	"fmt"
	"os"

	"parcel-gateway/internal/core/config"
	"parcel-gateway/internal/core/httpclient"
	"parcel-gateway/internal/core/logger"
	adapter "parcel-gateway/internal/features/shipping/adapters"
	"parcel-gateway/internal/features/shipping/ports"
	"parcel-gateway/internal/features/shipping/service"

	"github.com/spf13/cobra"
)

// CommandFactory builds the shipctl commands around a service constructor.
type CommandFactory struct {
	CreateShippingService func(ctx context.Context, flags *Flags) (ports.ShippingService, error)
}

var defaultCommandFactory = CommandFactory{
	CreateShippingService: createShippingService,
}

var root = defaultCommandFactory.CreateRootCommand()

func setDefaultFlags(c *cobra.Command, flgs *Flags) {
	c.Flags().StringVar(&flgs.ConfigPath, flagMap.ConfigPath.Name, flagMap.ConfigPath.Value, flagMap.ConfigPath.Usage)
	c.Flags().StringVar(&flgs.Carrier, flagMap.Carrier.Name, flagMap.Carrier.Value, flagMap.Carrier.Usage)
	c.Flags().BoolVar(&flgs.Test, flagMap.Test.Name, flagMap.Test.Value, flagMap.Test.Usage)
	c.Flags().BoolVar(&flgs.LogXML, flagMap.LogXML.Name, flagMap.LogXML.Value, flagMap.LogXML.Usage)
}

func (f CommandFactory) CreateRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "shipctl",
		Short:         "shipctl quotes rates and tracks parcels against the carrier gateways",
		Long:          `shipctl quotes rates and tracks parcels against the carrier gateways using the same configuration as the API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// createShippingService wires a service with no audit store; the CLI never books shipments.
func createShippingService(_ context.Context, flags *Flags) (ports.ShippingService, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	xmlClient, err := httpclient.NewXMLClient(cfg.FedEx.Timeout(), cfg.Proxy)
	if err != nil {
		return nil, fmt.Errorf("failed to build http client: %w", err)
	}

	fedex := adapter.NewFedExAdapter(cfg.FedEx, xmlClient)
	return service.NewShippingService([]ports.Carrier{fedex}, nil), nil
}

func Execute() {
	defer logger.Sync()
	if err := root.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
