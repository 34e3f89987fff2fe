package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pollframe/internal/config"
	"pollframe/internal/input"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively create the pollframe config file",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	tickRate := strconv.Itoa(cfg.Demo.TickRate)
	icon := cfg.Cursor.DefaultIcon
	startGrabbed := cfg.Cursor.StartGrabbed
	startHidden := cfg.Cursor.StartHidden

	iconOptions := make([]huh.Option[string], 0, len(input.CursorIcons()))
	for _, i := range input.CursorIcons() {
		iconOptions = append(iconOptions, huh.NewOption(i.String(), i.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Frame rate").
				Description("Ticks per second for the demo loop").
				Value(&tickRate).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 || n > 1000 {
						return fmt.Errorf("enter a frame rate between 1 and 1000")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Default cursor icon").
				Options(iconOptions...).
				Value(&icon),
			huh.NewConfirm().
				Title("Grab the cursor at startup?").
				Description("Confine the cursor to the window when the demo starts").
				Value(&startGrabbed),
			huh.NewConfirm().
				Title("Hide the cursor at startup?").
				Value(&startHidden),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	fps, _ := strconv.Atoi(tickRate)
	viper.Set("demo.tick_rate", fps)
	viper.Set("cursor.default_icon", icon)
	viper.Set("cursor.start_grabbed", startGrabbed)
	viper.Set("cursor.start_hidden", startHidden)

	if err := config.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Config written to %s\n", config.GetConfigPath())
	return nil
}
