package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/amaumene/escort/internal/app"
	"github.com/amaumene/escort/internal/config"
	"github.com/amaumene/escort/internal/domain"
	"github.com/amaumene/escort/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func newRootCommand() *cobra.Command {
	var (
		envFile string
		cfg     *config.Config
	)

	root := &cobra.Command{
		Use:           "escort",
		Short:         "Escort directory web front",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvFile(envFile)

			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log.SetLevel(loaded.LogLevel)
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "path to the environment file")

	root.AddCommand(
		newServeCommand(func() *config.Config { return cfg }),
		newSeedCommand(func() *config.Config { return cfg }),
		newListCommand(func() *config.Config { return cfg }),
	)
	return root
}

func newServeCommand(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("starting escort directory")

			a, err := app.New(cfg())
			if err != nil {
				return fmt.Errorf("initializing application: %w", err)
			}
			return a.Run(cmd.Context())
		},
	}
}

func newSeedCommand(cfg func() *config.Config) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a YAML catalog of profiles, locations and stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg())
			if err != nil {
				return fmt.Errorf("initializing application: %w", err)
			}
			defer a.Close()

			result, err := a.Seed().ImportFile(cmd.Context(), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d profiles, %d locations, %d stories\n",
				result.Profiles, result.Locations, result.Stories)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file to import (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newListCommand(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print stored profiles and locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(cfg().DBPath(), cfg().DBFilePermissions)
			if err != nil {
				return err
			}
			defer store.Close()

			return printCatalog(cmd.Context(), cmd.OutOrStdout(), storage.NewProfileRepository(store), storage.NewLocationRepository(store))
		},
	}
}

func printCatalog(ctx context.Context, out io.Writer, profiles domain.ProfileRepository, locations domain.LocationRepository) error {
	all, err := profiles.FindAll(ctx)
	if err != nil {
		return err
	}
	places, err := locations.FindAll(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "PROFILES (%d)\n", len(all))
	fmt.Fprintln(w, "ID\tNAME\tAGE\tLOCATION\tVERIFIED\tRATING")
	for _, p := range all {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%t\t%.1f\n", p.ID, p.DisplayName(), p.Age, p.LocationName, p.IsVerified, p.Ratings)
	}

	fmt.Fprintf(w, "\nLOCATIONS (%d)\n", len(places))
	fmt.Fprintln(w, "ID\tNAME\tCITY\tREGION\tCOUNTRY")
	for _, l := range places {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.City, l.Region, l.Country)
	}
	return w.Flush()
}
