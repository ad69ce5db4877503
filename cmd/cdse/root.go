package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/catalog/filter"
	"github.com/airbusgeo/cdse-catalog/service/geometry"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

// app is shared by the commands once the configuration is loaded
type app struct {
	v   *viper.Viper
	cfg *config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "cdse",
		Short:         "Copernicus Data Space catalogue client",
		Long:          `Search and download the products of the Copernicus Data Space Ecosystem (CDSE) OData catalogue`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("catalogue-url", "", "url of the OData catalogue")
	flags.String("username", "", "CDSE account username (required to download)")
	flags.String("password", "", "CDSE account password")
	for key, flag := range map[string]string{"log_level": "log-level", "catalogue_url": "catalogue-url", "username": "username", "password": "password"} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(newQueryCmd(a))
	rootCmd.AddCommand(newDownloadCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	return rootCmd
}

func (a *app) init() error {
	if err := initConfig(a.v); err != nil {
		return err
	}
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := log.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", cfg.LogLevel, err)
	}
	log.SetDefault(logger)
	return nil
}

// addSearchFlags adds --search-term and --geometry-file to cmd
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("search-term", nil, "search by term=value pairs. Pass multiple times for multiple search terms")
	cmd.Flags().String("geometry-file", "", "shapefile (.shp) or GeoJSON file of the area of interest (sets the 'geometry' search term)")
}

// searchTerms reads the search terms of the flags added by addSearchFlags
func searchTerms(cmd *cobra.Command) (entities.SearchTerms, error) {
	list, err := cmd.Flags().GetStringArray("search-term")
	if err != nil {
		return nil, err
	}
	terms, err := entities.ParseTerms(list)
	if err != nil {
		return nil, err
	}

	path, err := cmd.Flags().GetString("geometry-file")
	if err != nil || path == "" {
		return terms, err
	}
	var wkt string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		wkt, err = geometry.ShapeFileToWKT(path)
	default:
		var data []byte
		if data, err = os.ReadFile(path); err == nil {
			wkt, err = geometry.GeoJSONToWKT(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("geometry-file: %w", err)
	}
	return terms.With(filter.TermGeometry, entities.String(wkt)), nil
}
