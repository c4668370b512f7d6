package main

import (
	"fmt"
	"math"
	"os"

	flag "github.com/spf13/pflag"

	apppkg "github.com/kk-code-lab/binmap/internal/app"
	"github.com/kk-code-lab/binmap/internal/raster"
)

// defaultCutoff replaces out-of-range cutoff values: the comparison is
// a visual heuristic, not worth failing startup over.
const defaultCutoff = 0.9

var (
	wrap     = flag.BoolP("wrap", "W", false, "wrap around at EOF when sampling")
	width    = flag.IntP("width", "w", 128, "preview width in pixels")
	height   = flag.IntP("height", "H", 512, "preview height in pixels")
	pcomp    = flag.Float64P("pcomp", "p", math.NaN(), "histogram row-row comparison cutoff (0.0 - 1.0]")
	detailed = flag.BoolP("pdetail", "d", false, "compare the entire step span per pixel, not just the sample")
	help     = flag.BoolP("help", "h", false, "show this text")
)

func printUsage() {
	fmt.Print(`binmap - visual minimap for binary files

USAGE:
    binmap [OPTIONS] filename

OPTIONS:
    -W, --wrap         wrap around at EOF when sampling
    -w, --width x      preview width in pixels (default: 128)
    -H, --height x     preview height in pixels (default: 512)
    -p, --pcomp x      histogram row-row comparison in preview,
                       arg. val (0.0 - 1.0] sets cutoff level
    -d, --pdetail      use the entire data range for comparison
    -h, --help         this text

Click the preview to seek the sample cursor; q quits.
`)
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	if *width <= 0 || *width > raster.MaxWidth {
		fmt.Fprintf(os.Stderr, "invalid -w,--width argument, %d outside permitted 1..%d\n",
			*width, raster.MaxWidth)
		os.Exit(1)
	}
	if *height <= 0 || *height > raster.MaxHeight {
		fmt.Fprintf(os.Stderr, "invalid -H,--height argument, %d outside permitted 1..%d\n",
			*height, raster.MaxHeight)
		os.Exit(1)
	}

	// Absent means edge detection off; nonsense values clamp to the
	// default instead of failing.
	cutoff := math.NaN()
	if flag.CommandLine.Changed("pcomp") {
		cutoff = *pcomp
		if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) || cutoff <= 0 || cutoff > 1 {
			cutoff = defaultCutoff
		}
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: missing filename")
		printUsage()
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(apppkg.Options{
		Path:     flag.Arg(0),
		Width:    *width,
		Height:   *height,
		Cutoff:   cutoff,
		Detailed: *detailed,
		Wrap:     *wrap,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
