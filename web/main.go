package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-scanline-raytracer/pkg/config"
	"github.com/df07/go-scanline-raytracer/web/server"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}

	// Parse command line flags
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port to serve on")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel scanline workers per render (0 = CPU count)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid options: %v", err)
		os.Exit(1)
	}

	// Create and start web server
	webServer := server.NewServer(cfg)

	log.Printf("Scanline Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
