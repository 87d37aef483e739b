package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/glintui/glint/term"
)

var defaultModels = []string{
	"gpt-4.1",
	"gpt-4.1-mini",
	"o4-mini",
	"claude-sonnet-4",
	"claude-haiku-3.5",
	"gemini-2.5-pro",
	"llama-4-maverick",
}

func main() {
	var (
		themePath string
		logPath   string
		model     string
	)

	root := &cobra.Command{
		Use:   "glint-chat",
		Short: "Chat-style demo of the glint terminal UI engine",
		Long: `glint-chat is a small chat interface exercising the glint engine:
flex layout with scroll clipping, cell-diff rendering, and focus-tree
navigation. Tab cycles focus, Enter descends, Esc ascends, Ctrl+C twice
quits, / opens the model picker.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(themePath, logPath, model)
		},
	}

	root.Flags().StringVar(&themePath, "theme", "", "TOML theme file overriding the default palette")
	root.Flags().StringVar(&logPath, "log", "", "debug log file (stdout is owned by the UI)")
	root.Flags().StringVar(&model, "model", defaultModels[0], "initially selected model")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(themePath, logPath, model string) error {
	logger := log.New(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
	}

	theme, err := loadTheme(themePath)
	if err != nil {
		return err
	}

	app := newChatApp(logger, theme, model, defaultModels)
	window := term.NewWindow(term.NewBackend(), app, logger)

	defer func() {
		if r := recover(); r != nil {
			term.EmergencyReset(os.Stdout)
			panic(r)
		}
	}()

	if err := window.Run(); err != nil {
		return err
	}

	fmt.Println("     ..::.")
	fmt.Println("   .-=+++=-:     glint-chat session ended")
	fmt.Println("  .-+**#**+-.    run again: glint-chat")
	fmt.Println("  .-+*###*+-.")
	fmt.Println("   :-=+++=-:")
	fmt.Println("     .:::. ")
	return nil
}
