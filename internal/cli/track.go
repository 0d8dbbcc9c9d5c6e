package cli

import (
	"context"

	"parcel-gateway/internal/features/shipping/domain"

	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateTrackCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "track <number>",
		Short: "Print the scan history of a package",
		Long:  `Print the scan history of a package as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := f.CreateShippingService(ctx, flgs)
			if err != nil {
				return err
			}
			opts := domain.ShipmentOptions{
				PackageIdentifierType: flgs.IdentifierType,
				Test:                  flgs.Test,
				LogXML:                flgs.LogXML,
			}
			resp, err := svc.TrackShipment(ctx, flgs.Carrier, args[0], opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func init() {
	c := defaultCommandFactory.CreateTrackCommand(flgs)
	setDefaultFlags(c, flgs)
	c.Flags().StringVar(&flgs.IdentifierType, flagMap.IdentifierType.Name, flagMap.IdentifierType.Value, flagMap.IdentifierType.Usage)
	root.AddCommand(c)
}
