// Command grayscale converts a color image to grayscale using the gridmap
// partitioned map executor. Input and output paths can be given as
// arguments or entered interactively when omitted.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/FriedImage/gridmap/gridmap"
	"github.com/FriedImage/gridmap/internal/imageio"
)

const defaultOutputName = "grayscaled_image"

var (
	flagWorkers int
	flagTile    int
	flagKernel  string
	flagBench   bool
	flagPin     bool
)

var kernels = map[string]gridmap.TransformFn[gridmap.Sample3, gridmap.Sample1]{
	"average": gridmap.GrayAverage,
	"luma":    gridmap.GrayLuma,
}

var rootCmd = &cobra.Command{
	Use:   "grayscale [input] [output]",
	Short: "Convert an image to grayscale with a partitioned parallel map",
	Long: `grayscale reads a color image (.jpg, .jpeg, .png, .bmp, .tiff), averages
its channels per pixel across a pool of workers, and writes the result as a
single-channel image. Missing paths are prompted for interactively.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", runtime.GOMAXPROCS(0), "number of worker goroutines")
	rootCmd.Flags().IntVarP(&flagTile, "tile", "t", 128, "partition tile size (rows and cols)")
	rootCmd.Flags().StringVarP(&flagKernel, "kernel", "k", "average", "gray kernel: average or luma")
	rootCmd.Flags().BoolVar(&flagBench, "bench", false, "compare worker counts instead of writing output")
	rootCmd.Flags().BoolVar(&flagPin, "pin", false, "pin workers to CPU cores")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kernel, ok := kernels[flagKernel]
	if !ok {
		return fmt.Errorf("unknown kernel %q (expected average or luma)", flagKernel)
	}

	input := argOrPrompt(args, 0, "Image file to grayscale (including extension) --> ")
	if err := imageio.ValidatePath(input); err != nil {
		return err
	}
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input image %s: %w", input, err)
	}

	src, err := imageio.Decode(input)
	if err != nil {
		return err
	}
	color.Cyan("Loaded %s (%dx%d px)", input, src.Width(), src.Height())

	if flagBench {
		return runBench(ctx, src, kernel)
	}

	dst := gridmap.NewGrid[gridmap.Sample1](src.Width(), src.Height())
	bar := makeProgressBar(src.Width() * src.Height())

	opts := []gridmap.Option{
		gridmap.WithWorkerCount(flagWorkers),
		gridmap.WithTileSize(flagTile, flagTile),
		gridmap.WithOnTileDone(func(p gridmap.Partition) {
			_ = bar.Add(p.Size())
		}),
	}
	if flagPin {
		opts = append(opts, gridmap.WithCPUAffinity())
	}

	exec := gridmap.New[gridmap.Sample3, gridmap.Sample1](opts...)
	if err := exec.Apply(ctx, src, dst, kernel); err != nil {
		return err
	}
	_ = bar.Finish()
	fmt.Println()
	color.Green("Grayscale of %s done", input)

	output := outputPath(args, imageio.Extension(input))
	if err := imageio.EncodeGray(output, dst); err != nil {
		return err
	}
	color.Green("Saved %s", output)
	return nil
}

// argOrPrompt returns args[i] when present, otherwise reads one line from
// stdin after printing the prompt.
func argOrPrompt(args []string, i int, prompt string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

// outputPath resolves the destination file name. A name entered without an
// extension inherits the input's; an empty or overlong name falls back to
// the default.
func outputPath(args []string, inputExt string) string {
	name := argOrPrompt(args, 1, "Name for the result image --> ")
	if name == "" || len(name) > 255 {
		color.Yellow("Invalid name, using default %q instead", defaultOutputName)
		name = defaultOutputName
	}
	if imageio.Extension(name) == "" {
		name += inputExt
	}
	return name
}

func makeProgressBar(totalPixels int) *progressbar.ProgressBar {
	return progressbar.NewOptions(totalPixels,
		progressbar.OptionSetDescription("Converting"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("ERROR: %v", err)
		os.Exit(1)
	}
}
