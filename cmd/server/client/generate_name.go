package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var namePool string

var generateNameCmd = &cobra.Command{
	Use:   "name",
	Short: "Generate a random investigator name",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GenerateName(ctx, namePool)
		if err != nil {
			return fmt.Errorf("failed to generate name: %w", err)
		}

		fmt.Printf("%s (%s)\n", resp.Name, resp.Pool)
		return nil
	},
}

func init() {
	generateNameCmd.Flags().StringVar(&namePool, "pool", "", "Name pool, defaults to en")
}
