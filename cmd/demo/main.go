package main // Demonstration driver for the construction core

import (
	"os" // os.Stdout is the widget render sink

	"github.com/iliyamo/cinema-kit/internal/booking"  // booking record builder
	"github.com/iliyamo/cinema-kit/internal/config"   // process-wide venue configuration
	"github.com/iliyamo/cinema-kit/internal/content"  // movie catalogue factories
	"github.com/iliyamo/cinema-kit/internal/schedule" // clonable schedule records
	"github.com/iliyamo/cinema-kit/internal/ui"       // themed widget factories
	"github.com/joho/godotenv"                        // .env loader
	"github.com/labstack/gommon/log"                  // leveled logger
)

func main() {
	// A .env next to the working directory may pre-seed the venue settings;
	// its absence is fine, the fallbacks below cover it.
	_ = godotenv.Load()

	cfg := config.ApplyEnv()
	if cfg.Name() == "" {
		cfg.SetName("Starlight Cinemas")
	}
	if cfg.ScreenCount() == 0 {
		cfg.SetScreenCount(5)
	}
	log.Infof("Cinema: %s, Screens: %d", cfg.Name(), cfg.ScreenCount())

	movie := content.StandardFactory{}.CreateItem("Inception")
	log.Infof("Movie: %s, Type: %s", movie.Title(), movie.Kind())

	widgets := ui.NewDarkFactory(os.Stdout) // one factory, one theme family
	widgets.CreateButton().Render()
	widgets.CreateCheckbox().Render()

	record := booking.NewBuilder().
		SetMovieTitle("Inception").
		SetSeatNumber("A1").
		SetSnackCombo("Popcorn and Soda").
		Build()
	log.Info(record.String())

	template := schedule.New()
	template.SetTime("18:00")
	template.SetMovie(&movie)

	evening, err := template.Clone() // derive the evening slot from the template
	if err != nil {
		log.Fatalf("derive evening schedule: %v", err)
	}
	evening.SetTime("21:00")

	line, err := evening.Render()
	if err != nil {
		log.Fatalf("render evening schedule: %v", err)
	}
	log.Info(line)
}
