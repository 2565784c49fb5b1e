package cli

import (
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// offsetURL is the external carbon-offset purchase page. Nothing is
// exchanged back; the command only opens the link.
const offsetURL = "https://terrapass.com/product/productindividuals-families/"

// newOffsetCmd creates the offset command, which opens the carbon-offset
// purchase page in the default browser.
func newOffsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offset",
		Short: "Open the carbon-offset purchase page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := browser.OpenURL(offsetURL); err != nil {
				log.Warn().
					Str("component", "cli").
					Err(err).
					Msg("could not open browser")
				cmd.Printf("Open this link to purchase offsets: %s\n", offsetURL)
				return nil
			}

			cmd.Printf("Opened %s\n", offsetURL)
			return nil
		},
	}
}
