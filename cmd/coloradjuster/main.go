package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coloradjuster/audio"
	"github.com/lixenwraith/coloradjuster/config"
	"github.com/lixenwraith/coloradjuster/icon"
	"github.com/lixenwraith/coloradjuster/model"
	"github.com/lixenwraith/coloradjuster/ui"
)

var (
	configFlag  = flag.String("config", config.DefaultPath, "Path to TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/coloradjuster.log")
	redFlag     = flag.Int("red", 0, "Initial red value (0-255)")
	greenFlag   = flag.Int("green", 0, "Initial green value (0-255)")
	blueFlag    = flag.Int("blue", 0, "Initial blue value (0-255)")
	iconsFlag   = flag.String("icons", "", "Directory holding the button icons")
	noSoundFlag = flag.Bool("nosound", false, "Disable audio feedback")
	watchFlag   = flag.Bool("watch", false, "Reload button icons when the files change")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	color, err := model.New(cfg.Color.Red, cfg.Color.Green, cfg.Color.Blue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid initial colour: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, color); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "red":
			cfg.Color.Red = *redFlag
		case "green":
			cfg.Color.Green = *greenFlag
		case "blue":
			cfg.Color.Blue = *blueFlag
		case "icons":
			cfg.Icons.Dir = *iconsFlag
		case "nosound":
			cfg.Audio.Enabled = cfg.Audio.Enabled && !*noSoundFlag
		case "watch":
			cfg.Icons.Watch = *watchFlag
		}
	})
}

func run(cfg *config.Config, color *model.Color) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCOLORADJUSTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	sounds := audio.NewSoundManager(cfg.AudioSettings())
	if cfg.Audio.Enabled {
		// Non-fatal, the adjuster works without sound
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		defer sounds.Cleanup()
	}

	icons := icon.LoadSet(cfg.Icons.Dir)
	if cfg.Icons.Watch {
		w, err := icon.NewWatcher(icons.Paths(), func(path string) {
			// Hand the change to the UI goroutine
			_ = screen.PostEvent(tcell.NewEventInterrupt(ui.IconChanged{Path: path}))
		})
		if err != nil {
			log.Printf("Icon watcher failed: %v", err)
		} else {
			defer w.Close()
		}
	}

	frame := ui.NewFrame(color, icons, sounds)
	defer frame.Close()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frame.Draw(screen)
	screen.Show()

	for ev := range eventChan {
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		if frame.HandleEvent(ev) {
			return nil
		}
		frame.Draw(screen)
		screen.Show()
	}
	return nil
}
