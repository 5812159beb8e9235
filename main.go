package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-lighting-kernel/pkg/aov"
	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/lighting"
	"github.com/df07/go-lighting-kernel/pkg/scene"
	"github.com/df07/go-lighting-kernel/pkg/shader"
	"github.com/df07/go-lighting-kernel/pkg/shading"
)

// renderConfig bundles the per-run render settings
type renderConfig struct {
	width    int
	height   int
	samples  int
	workers  int
	channels []string
}

func main() {
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("samples", 16, "Samples per pixel")
	sceneType := flag.String("scene", "cornell", "Scene: 'cornell', 'furnace' or 'default'")
	configPath := flag.String("config", "", "Engine params YAML file (built-in defaults when empty)")
	aovList := flag.String("aovs", "", "Extra output channels, comma-separated: depth,normal,occlusion")
	outDir := flag.String("out", "output", "Output directory")
	workers := flag.Int("workers", 0, "Render workers (0 = number of CPUs)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	lighting.SetLogger(logger)

	params := lighting.DefaultParams()
	if *configPath != "" {
		loaded, err := lighting.LoadParams(*configPath)
		if err != nil {
			logger.Error("loading engine params", "error", err)
			os.Exit(1)
		}
		params = loaded
	}

	channels, err := parseAOVList(*aovList)
	if err != nil {
		logger.Error("parsing aov list", "error", err)
		os.Exit(1)
	}

	world, err := createScene(*sceneType, float64(*width)/float64(*height))
	if err != nil {
		logger.Error("creating scene", "error", err)
		os.Exit(1)
	}

	factory, err := lighting.NewEngineFactory(world.LightSampler(), params)
	if err != nil {
		logger.Error("building engine factory", "error", err)
		os.Exit(1)
	}

	config := renderConfig{
		width:    *width,
		height:   *height,
		samples:  *samples,
		workers:  *workers,
		channels: channels,
	}
	if config.workers <= 0 {
		config.workers = runtime.NumCPU()
	}

	logger.Info("rendering",
		"scene", *sceneType, "width", config.width, "height", config.height,
		"samples", config.samples, "workers", config.workers, "aovs", channels)

	start := time.Now()
	results, snapshots := renderFrame(world, factory, config)
	logger.Info("render complete", "elapsed", time.Since(start))

	for _, snapshot := range snapshots {
		logger.Info(snapshot.String(), "engine", snapshot.EngineID)
	}

	sceneDir := filepath.Join(*outDir, *sceneType)
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		logger.Error("creating output directory", "error", err)
		os.Exit(1)
	}

	if err := writeOutputs(sceneDir, config, results); err != nil {
		logger.Error("writing outputs", "error", err)
		os.Exit(1)
	}
	logger.Info("outputs written", "dir", sceneDir)
}

// createScene builds one of the demo scenes, fitting its camera to the
// requested aspect ratio
func createScene(sceneType string, aspectRatio float64) (*scene.Scene, error) {
	overrides := scene.CameraConfig{AspectRatio: aspectRatio}

	switch sceneType {
	case "cornell":
		return scene.NewCornellScene(overrides), nil
	case "furnace":
		return scene.NewFurnaceScene(overrides), nil
	case "default":
		return scene.NewDefaultScene(overrides), nil
	}
	return nil, fmt.Errorf("unknown scene type %q", sceneType)
}

// parseAOVList validates the -aovs flag into channel names
func parseAOVList(list string) ([]string, error) {
	if list == "" {
		return nil, nil
	}

	var channels []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "depth", "normal", "occlusion":
			channels = append(channels, name)
		case "":
		default:
			return nil, fmt.Errorf("unknown aov %q", name)
		}
	}
	return channels, nil
}

// newWorkerContainer builds one worker's accumulator set. Channel order
// matches the -aovs flag, so channel i flushes into AOV slot i; the beauty
// accumulator is auto-created after them.
func newWorkerContainer(world *scene.Scene, channels []string, seed int64) *aov.Container {
	accumulators := make([]aov.Accumulator, 0, len(channels))
	for _, name := range channels {
		switch name {
		case "depth":
			accumulators = append(accumulators, aov.NewDepth())
		case "normal":
			accumulators = append(accumulators, aov.NewNormal())
		case "occlusion":
			occlusionSampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
			accumulators = append(accumulators, aov.NewOcclusion(
				world.Intersector(), occlusionSampler,
				shader.DefaultAOSampleCount, shader.DefaultAOMaxDistance))
		}
	}
	return aov.NewContainer(accumulators...)
}

// renderFrame renders the scene into per-pixel shading results. Each worker
// owns an engine, a shading context and an accumulator container, and pulls
// rows until none remain.
func renderFrame(world *scene.Scene, factory *lighting.EngineFactory, config renderConfig) ([]shading.Result, []lighting.StatisticsSnapshot) {
	results := make([]shading.Result, config.width*config.height)

	rows := make(chan int, config.height)
	for y := 0; y < config.height; y++ {
		rows <- y
	}
	close(rows)

	snapshots := make([]lighting.StatisticsSnapshot, config.workers)
	var wg sync.WaitGroup
	for w := 0; w < config.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			engine := factory.Create()
			surface := shader.NewPhysicalSurfaceShader(engine)
			sctx := shading.NewContext(world.Intersector(), nil)
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(workerID) + 1)))
			container := newWorkerContainer(world, config.channels, int64(workerID)+1000)

			for y := range rows {
				renderRow(world, surface, sctx, sampler, container, config, y, results)
			}
			snapshots[workerID] = engine.Statistics()
		}(w)
	}
	wg.Wait()

	return results, snapshots
}

// renderRow shades every pixel of one image row. Rows are disjoint, so
// writing into the shared results slice needs no locking.
func renderRow(world *scene.Scene, surface shader.SurfaceShader, sctx *shading.Context, sampler core.Sampler, container *aov.Container, config renderConfig, y int, results []shading.Result) {
	for x := 0; x < config.width; x++ {
		container.Reset()

		for s := 0; s < config.samples; s++ {
			jitter := sampler.Get2D()
			u := (float64(x) + jitter.X) / float64(config.width)
			v := 1 - (float64(y)+jitter.Y)/float64(config.height)
			ray := world.Camera.GetRay(u, v)

			sp, found := sctx.Intersector().Trace(ray, shading.RayEpsilon, math.Inf(1))
			if !found {
				// The environment serves as the background; without one the
				// sample stays transparent black
				value := core.Spectrum{}
				alpha := 0.0
				if environment := world.EnvironmentEDF(); environment != nil {
					value = environment.Evaluate(ray.Direction.Normalize())
					alpha = 1.0
				}
				container.Accumulate(nil, value, alpha)
				continue
			}

			var sample shading.Result
			surface.Shade(sampler, sctx, &sp, &sample)
			container.Accumulate(&sp, sample.Color, sample.Alpha)
		}

		container.Flush(&results[y*config.width+x])
	}
}

// writeOutputs saves beauty.png plus one PNG per requested channel
func writeOutputs(dir string, config renderConfig, results []shading.Result) error {
	beauty := image.NewRGBA(image.Rect(0, 0, config.width, config.height))
	for i, result := range results {
		beauty.Set(i%config.width, i/config.width, toColor(result.Color, result.Alpha, true))
	}
	if err := writePNG(filepath.Join(dir, "beauty.png"), beauty); err != nil {
		return err
	}

	for slot, name := range config.channels {
		img := image.NewRGBA(image.Rect(0, 0, config.width, config.height))
		for i, result := range results {
			value := result.AOVs[slot]
			img.Set(i%config.width, i/config.width, toColor(value.Color, value.Alpha, false))
		}
		if err := writePNG(filepath.Join(dir, name+".png"), img); err != nil {
			return err
		}
	}
	return nil
}

// toColor converts a spectrum to RGBA with clamping, gamma-correcting the
// beauty output only; data channels stay linear
func toColor(spectrum core.Spectrum, alpha float64, gammaCorrect bool) color.RGBA {
	if gammaCorrect {
		spectrum = spectrum.GammaCorrect(2.0)
	}
	spectrum = spectrum.Clamp(0.0, 1.0)
	alpha = math.Max(0, math.Min(1, alpha))

	return color.RGBA{
		R: uint8(255 * spectrum[0]),
		G: uint8(255 * spectrum[1]),
		B: uint8(255 * spectrum[2]),
		A: uint8(255 * alpha),
	}
}

func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}
