package cli

import (
	"context"
	"fmt"

	"parcel-gateway/internal/features/shipping/domain"

	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateRateCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "Quote every service for a single package",
		Long:  `Quote every service for a single package between two postal codes and print the rates as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flgs.FromCountry == "" || flgs.ToCountry == "" {
				return fmt.Errorf("--%s and --%s are required", flagMap.FromCountry.Name, flagMap.ToCountry.Name)
			}
			if flgs.WeightKg <= 0 {
				return fmt.Errorf("--%s must be positive", flagMap.WeightKg.Name)
			}

			ctx := context.Background()
			svc, err := f.CreateShippingService(ctx, flgs)
			if err != nil {
				return err
			}

			origin := domain.Location{CountryCode: flgs.FromCountry, PostalCode: flgs.FromPostal}
			destination := domain.Location{CountryCode: flgs.ToCountry, PostalCode: flgs.ToPostal}
			pkg := domain.NewPackage(flgs.WeightKg, flgs.LengthCm, flgs.WidthCm, flgs.HeightCm, domain.Metric)
			opts := domain.ShipmentOptions{Test: flgs.Test, LogXML: flgs.LogXML}

			resp, err := svc.FindRates(ctx, flgs.Carrier, origin, destination, []domain.Package{pkg}, opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func init() {
	c := defaultCommandFactory.CreateRateCommand(flgs)
	setDefaultFlags(c, flgs)
	c.Flags().StringVar(&flgs.FromCountry, flagMap.FromCountry.Name, flagMap.FromCountry.Value, flagMap.FromCountry.Usage)
	c.Flags().StringVar(&flgs.FromPostal, flagMap.FromPostal.Name, flagMap.FromPostal.Value, flagMap.FromPostal.Usage)
	c.Flags().StringVar(&flgs.ToCountry, flagMap.ToCountry.Name, flagMap.ToCountry.Value, flagMap.ToCountry.Usage)
	c.Flags().StringVar(&flgs.ToPostal, flagMap.ToPostal.Name, flagMap.ToPostal.Value, flagMap.ToPostal.Usage)
	c.Flags().Float64Var(&flgs.WeightKg, flagMap.WeightKg.Name, flagMap.WeightKg.Value, flagMap.WeightKg.Usage)
	c.Flags().Float64Var(&flgs.LengthCm, flagMap.LengthCm.Name, flagMap.LengthCm.Value, flagMap.LengthCm.Usage)
	c.Flags().Float64Var(&flgs.WidthCm, flagMap.WidthCm.Name, flagMap.WidthCm.Value, flagMap.WidthCm.Usage)
	c.Flags().Float64Var(&flgs.HeightCm, flagMap.HeightCm.Name, flagMap.HeightCm.Value, flagMap.HeightCm.Usage)
	root.AddCommand(c)
}
