package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/healinghandsmipt/website_backend/cmd/http"
	systemcmd "github.com/healinghandsmipt/website_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "hhpt-site",
	Short: "Backend for the Healing Hands Physical Therapy website.",
	Long: `Backend for the Healing Hands Physical Therapy marketing website.
It serves clinic content and the notification banner feed, and relays
contact-form inquiries to the clinic inbox over SMTP.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
