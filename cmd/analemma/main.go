// Analemma opens a window and animates the Sun's figure-eight path across
// a simulated year: one day per real-time minute at the default speed.
// Optional configuration is read from analemma.yaml in the working
// directory; viewer settings persist across runs via platform storage.
package main

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/phanxgames/analemma"
)

const configPath = "analemma.yaml"

func main() {
	cfg, err := analemma.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Platform storage is optional: a nil manager keeps settings in memory.
	store, err := gdata.Open(gdata.Config{AppName: "analemma"})
	if err != nil {
		log.Printf("open settings storage: %v (settings will not persist)", err)
		store = nil
	}
	settings := analemma.NewSettingsManager(store)

	sim, err := analemma.NewSimulation(cfg, settings)
	if err != nil {
		log.Fatalf("configure simulation: %v", err)
	}

	if err := analemma.Run(sim, analemma.RunConfig{Title: "ANALEMMA"}); err != nil {
		log.Fatal(err)
	}
}
