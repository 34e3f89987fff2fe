package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pollframe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		fmt.Printf("Config file: %s\n\n", config.GetConfigPath())
		fmt.Printf("[demo]\n")
		fmt.Printf("tick_rate = %d\n", cfg.Demo.TickRate)
		fmt.Printf("mouse_sensitivity = %g\n\n", cfg.Demo.MouseSensitivity)
		fmt.Printf("[cursor]\n")
		fmt.Printf("default_icon = %q\n", cfg.Cursor.DefaultIcon)
		fmt.Printf("start_grabbed = %v\n", cfg.Cursor.StartGrabbed)
		fmt.Printf("start_hidden = %v\n\n", cfg.Cursor.StartHidden)
		fmt.Printf("[logging]\n")
		fmt.Printf("file_logging = %v\n", cfg.Logging.FileLogging)
		fmt.Printf("log_level = %q\n", cfg.Logging.LogLevel)

		return nil
	},
}
