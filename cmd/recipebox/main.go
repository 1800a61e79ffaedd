// Package main is the terminal client for RecipeBox.
// It drives the same session and favorites store as the web server.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

// application is built before every command that talks to TheMealDB or storage.
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "recipebox",
	Short: "Search TheMealDB recipes and keep local favorites",
	Long: `recipebox searches TheMealDB by name, shows full recipes and keeps a
list of favorite recipes in local storage. Favorites are shared with the
recipebox web server when both use the same storage path.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations["skipApp"] == "true" {
			return nil
		}
		if err := validateOutput(); err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			log.SetOutput(io.Discard)
		} else {
			log.SetOutput(cmd.ErrOrStderr())
		}

		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadFile(cfgFile)
		if err != nil {
			return err
		}

		application, err = app.New(cmd.Context(), cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application == nil {
			return nil
		}
		err := application.Close()
		application = nil
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config.yaml or ~/.config/recipebox/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests to stderr")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
