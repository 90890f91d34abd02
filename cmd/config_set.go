package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	configSetPreviewLength int
	configSetTimeFormat    string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change notr settings",
	Long: `Update one or more settings. Values not passed keep their current value.

Examples:
  notr config set --preview-length 120
  notr config set --time-format "Jan 2 15:04"`,
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().IntVar(&configSetPreviewLength, "preview-length", 0, "Maximum runes shown in the note preview")
	configSetCmd.Flags().StringVar(&configSetTimeFormat, "time-format", "", "Go reference-time layout for list timestamps")
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("preview-length") && !cmd.Flags().Changed("time-format") {
		return errors.New("nothing to set; pass --preview-length and/or --time-format")
	}

	svc := newService()
	cfg := svc.Config()

	if cmd.Flags().Changed("preview-length") {
		if configSetPreviewLength <= 0 {
			return fmt.Errorf("preview-length must be positive, got %d", configSetPreviewLength)
		}

		cfg.PreviewLength = configSetPreviewLength
	}

	if cmd.Flags().Changed("time-format") {
		if strings.TrimSpace(configSetTimeFormat) == "" {
			return errors.New("time-format cannot be blank")
		}

		cfg.TimeFormat = configSetTimeFormat
	}

	if err := svc.SetConfig(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, "Configuration updated.")

	return nil
}
