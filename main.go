package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/aranyx/chroma-go/pkg/camera"
	"github.com/aranyx/chroma-go/pkg/core"
	"github.com/aranyx/chroma-go/pkg/renderer"
	"github.com/aranyx/chroma-go/pkg/scene"
)

// Config holds the command-line configuration for a single progressive render.
type Config struct {
	SceneType       string
	Width, Height   int
	Passes          int
	SamplesPerPixel int
	SlowRandom      bool
	Help            bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	fmt.Println("Starting Chroma...")
	startTime := time.Now()

	sceneObj, err := createScene(config.SceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	if err := sceneObj.Validate(); err != nil {
		fmt.Printf("Invalid scene: %v\n", err)
		os.Exit(1)
	}

	outputDir := createOutputDir(config.SceneType)
	img := renderProgressive(config, sceneObj)

	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", renderTime)

	outPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	if err := saveImageToFile(img, outPath); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", outPath)
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene to render")
	flag.IntVar(&config.Width, "width", 400, "Image width")
	flag.IntVar(&config.Height, "height", 300, "Image height")
	flag.IntVar(&config.Passes, "passes", 16, "Number of progressive accumulation passes")
	flag.IntVar(&config.SamplesPerPixel, "samples", 1, "Samples per pixel per pass (1-16)")
	flag.BoolVar(&config.SlowRandom, "slow-random", false, "Use math/rand instead of the deterministic hash for diffuse bounces")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("Chroma - progressive CPU path tracer")
	fmt.Println("Usage: chroma [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  default - spheres and a ground plane under an emissive sky")
	fmt.Println()
	fmt.Println("Output is saved to output/<scene>/render_<timestamp>.png")
}

// createScene builds the named scene. Only "default" is built in; the data
// model has no serialization format, so there is no file-based scene loader.
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	default:
		return nil, errors.Errorf("unknown scene type: %s", sceneType)
	}
}

func createOutputDir(sceneType string) string {
	outputDir := filepath.Join("output", sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	return outputDir
}

// renderProgressive drives config.Passes accumulating Render calls and
// returns the final displayed image.
func renderProgressive(config Config, sceneObj *scene.Scene) *image.RGBA {
	cam := camera.NewOrbit(
		core.NewVec3(0, 1, 3), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		45, 0.1, 100,
	)

	r := renderer.New(renderer.Settings{
		Accumulate:      true,
		SlowRandom:      config.SlowRandom,
		SamplesPerPixel: config.SamplesPerPixel,
	}, nil)
	r.Resize(config.Width, config.Height)
	cam.Resize(config.Width, config.Height)

	for pass := 0; pass < config.Passes; pass++ {
		if err := r.Render(sceneObj, cam); err != nil {
			fmt.Printf("Render error on pass %d: %v\n", pass, err)
			os.Exit(1)
		}
	}

	return imageFromPacked(r.GetFinalImage(), config.Width, config.Height)
}

// imageFromPacked unpacks the renderer's little-endian R|G<<8|B<<16|A<<24
// words into a standard image.RGBA.
func imageFromPacked(packed []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, word := range packed {
		x, y := i%width, i/width
		offset := img.PixOffset(x, y)
		img.Pix[offset+0] = byte(word)
		img.Pix[offset+1] = byte(word >> 8)
		img.Pix[offset+2] = byte(word >> 16)
		img.Pix[offset+3] = byte(word >> 24)
	}
	return img
}

func saveImageToFile(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "encoding PNG")
	}
	return nil
}
