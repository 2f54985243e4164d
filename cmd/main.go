package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/goparticles/glfwcontext"
	"github.com/richinsley/goparticles/graphics"
	"github.com/richinsley/goparticles/headless"
	"github.com/richinsley/goparticles/options"
	"github.com/richinsley/goparticles/renderer"
)

func runSimulation(platform graphics.Platform, opts *options.SimOptions, mode renderer.Mode) error {
	win, err := renderer.Init(platform, uint16(*opts.Width), uint16(*opts.Height))
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Shutdown(); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
	}()

	if err := win.Configure(mode); err != nil {
		return err
	}

	maxFrames := int64(*opts.Frames)
	log.Println("Starting render loop...")
	return win.Run(func(f renderer.Frame) error {
		if maxFrames > 0 && f.Index >= maxFrames {
			return renderer.ErrStopLoop
		}
		return nil
	})
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Particle Simulation")
		flag.PrintDefaults()
		return
	}

	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	mode, err := renderer.ParseMode(*opts.Mode)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	var platform graphics.Platform = glfwcontext.Platform{}
	if *opts.Headless {
		platform = headless.Platform{}
	} else {
		if err := glfwcontext.InitGraphics(); err != nil {
			log.Fatalf("Failed to initialize GLFW: %v", err)
		}
		defer glfwcontext.TerminateGraphics()
	}

	if err := runSimulation(platform, opts, mode); err != nil {
		log.Printf("Simulation failed (%s): %v", renderer.KindOf(err), err)
		if !*opts.Headless {
			glfwcontext.TerminateGraphics()
		}
		os.Exit(1)
	}
	log.Println("Simulation finished")
}
