package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pollframe/internal/config"
	"pollframe/internal/input"
	"pollframe/internal/logger"
	"pollframe/internal/platform"
	"pollframe/internal/ui"
)

var (
	demoFPS         int
	demoSensitivity float64
	demoUseUinput   bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive input tracking demo",
	Long: `Run an interactive demo in the terminal. Mouse events feed the tracker as
they arrive; once per tick the loop snapshots press/release edges and motion
deltas and advances the frame. Keys exercise the cursor property mirror
against a window capability (an in-memory window by default, or a uinput
virtual pointer with --uinput).`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoFPS, "fps", 0, "Frames per second for the demo loop")
	demoCmd.Flags().Float64Var(&demoSensitivity, "sensitivity", 0, "Scale applied to motion samples")
	demoCmd.Flags().BoolVar(&demoUseUinput, "uinput", false, "Warp the real cursor through a uinput virtual pointer")

	// Bind flags to viper
	viper.BindPFlag("demo.tick_rate", demoCmd.Flags().Lookup("fps"))
	viper.BindPFlag("demo.mouse_sensitivity", demoCmd.Flags().Lookup("sensitivity"))
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	// Redirect logs to a file before the TUI takes over the terminal.
	// This MUST happen before any log output to avoid display corruption.
	if cfg.Logging.FileLogging {
		logFile, err := logger.SetupFileLogging("DEMO")
		if err != nil {
			return fmt.Errorf("failed to setup file logging: %w", err)
		}
		defer logFile.Close()
	}

	fps := cfg.Demo.TickRate
	if fps <= 0 {
		fps = 60
	}
	sensitivity := cfg.Demo.MouseSensitivity

	tracker := input.NewTracker()

	var window input.Window
	if demoUseUinput {
		uw, err := platform.NewUinput()
		if err != nil {
			return fmt.Errorf("failed to open uinput window: %w", err)
		}
		defer func() { _ = uw.Close() }()
		window = uw
		logger.Info("Using uinput virtual pointer window")
	} else {
		window = platform.NewOffscreen(1920, 1080)
	}

	applyCursorDefaults(tracker, window, cfg)

	model := ui.NewDemoModel(tracker, window, time.Second/time.Duration(fps), sensitivity)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

// applyCursorDefaults pushes the configured startup cursor state through the
// tracker so the mirror and the window agree from the first frame.
func applyCursorDefaults(tracker *input.Tracker, window input.Window, cfg *config.Config) {
	tracker.SetCursorIcon(window, input.ParseCursorIcon(cfg.Cursor.DefaultIcon))
	tracker.SetCursorHidden(window, cfg.Cursor.StartHidden)

	if cfg.Cursor.StartGrabbed {
		if err := tracker.SetCursorGrabbed(window, true); err != nil {
			// Not fatal: the demo runs fine without a grab.
			logger.Warnf("Could not grab cursor at startup: %v", err)
		}
	}
}
