package main

import (
	"context"
	"log"
	"os"

	"bookshelf/internal/cli"
	"bookshelf/internal/collection"
	"bookshelf/internal/store"

	"github.com/spf13/cobra"
)

func main() {
	var dataPath string

	rootCmd := &cobra.Command{
		Use:          "bookshelf",
		Short:        "Manage your personal book collection from a text menu",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := collection.NewService(ctx, store.NewBookFile(dataPath))
			if err != nil {
				return err
			}
			menu := cli.NewMenu(svc, os.Stdin, os.Stdout)
			return menu.Run(ctx)
		},
	}
	rootCmd.Flags().StringVar(&dataPath, "data", "book_data.json", "path to the backing JSON file")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("bookshelf: %v", err)
	}
}
