package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const starterConfig = `server:
  port: 8080
  environment: development
  # static_dir: ./public
  cors:
    enabled: false
    allow_origins: "*"

site:
  name: "Healing Hands Physical Therapy Associates LLC"
  url: "https://healinghandsmipt.com"
  phone: "248 560 7994"
  email: "info@healinghandsmipt.com"

email:
  enabled: true
  smtp:
    host: smtp.gmail.com
    port: 465
  # username, password and recipient come from the environment:
  #   HHPT_EMAIL_SMTP_USERNAME, HHPT_EMAIL_SMTP_PASSWORD, HHPT_EMAIL_RECIPIENT

contact:
  rate_limit:
    store: memory
    window_seconds: 15

notifications:
  # feed_url: published spreadsheet CSV export; banner is disabled when unset
  feed_url: ""
  cache_ttl_seconds: 60
  max_items: 3

redis:
  addr: "localhost:6379"

logging:
  level: info

observability:
  enabled: false
`

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}

			if _, err := os.Stat(cfgPath); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", cfgPath)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := os.WriteFile(cfgPath, []byte(starterConfig), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", cfgPath, err)
			}
			fmt.Printf("Wrote starter config to %s\n", cfgPath)
			return nil
		},
	}

	return cmd
}
