// Command levelview previews generated levels in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/beka-birhanu/vinom-pcg/presets"
	"github.com/gdamore/tcell/v2"
)

func main() {
	var (
		presetName  = flag.String("preset", "", "preset to generate from")
		presetsPath = flag.String("presets", "presets.yaml", "presets file")
		seed        = flag.Int("seed", pcg.RandomSeed, "seed, -1 for random")
		width       = flag.Int("width", 0, "width override")
		height      = flag.Int("height", 0, "height override")
	)
	flag.Parse()

	params, err := resolveParams(*presetName, *presetsPath)
	if err != nil {
		log.Fatalf("levelview: %v", err)
	}
	params.Seed = *seed
	if *width > 0 {
		params.Width = *width
	}
	if *height > 0 {
		params.Height = *height
	}
	if err := params.Validate(); err != nil {
		log.Fatalf("levelview: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("levelview: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("levelview: %v", err)
	}
	defer screen.Fini()

	v := newViewer(screen, params)
	v.run()
}

func resolveParams(name, path string) (pcg.Parameters, error) {
	if name == "" {
		return pcg.DefaultParameters(), nil
	}
	loader := presets.NewLoader(path)
	if err := loader.Load(); err != nil {
		return pcg.Parameters{}, err
	}
	p, err := loader.Preset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "available presets: %v\n", loader.Names())
		return pcg.Parameters{}, err
	}
	return p, nil
}
