package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tagform/internal/config"
	"tagform/internal/debug"
	"tagform/internal/ui"
	"tagform/internal/ui/theme"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme),
		"Color theme ("+strings.Join(theme.Available(), ", ")+")")
	widthFlag := flag.Int("width", config.GetInt(config.KeyFormWidth), "Form width in columns")
	debugFlag := flag.Bool("debug", config.GetBool(config.KeyDebug),
		"Write a debug log to ~/"+debug.LogDirName+"/"+debug.LogFileName)
	outputFormatFlag := flag.String("output-format", config.GetString(config.KeyOutputFormat),
		"Summary markdown style (rich, light, plain)")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	// Flag defaults come from config, so pushing the parsed values back is a
	// no-op unless the user passed the flag.
	if err := config.ApplyOverrides(map[string]any{
		config.KeyTheme:        strings.TrimSpace(*themeFlag),
		config.KeyFormWidth:    *widthFlag,
		config.KeyDebug:        *debugFlag,
		config.KeyOutputFormat: strings.TrimSpace(*outputFormatFlag),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying flags: %v\n", err)
		os.Exit(1)
	}

	if name := config.GetString(config.KeyTheme); !theme.SetTheme(name) {
		fmt.Fprintf(os.Stderr, "Unknown theme %q (available: %s)\n",
			name, strings.Join(theme.Available(), ", "))
		os.Exit(1)
	}

	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
	}
	defer debug.Close()
	debug.Logf("starting tagform %s theme=%s", Version, theme.CurrentName())

	app := ui.NewApp(ui.Config{
		Width:        config.GetInt(config.KeyFormWidth),
		OutputFormat: config.GetString(config.KeyOutputFormat),
		DefaultTags:  config.GetStringSlice(config.KeyDefaultTags),
		Version:      Version,
	})

	prog := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
