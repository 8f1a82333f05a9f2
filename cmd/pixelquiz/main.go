package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/maps"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.afab.re/pixelquiz"
	"go.afab.re/pixelquiz/quiz"
	"go.afab.re/pixelquiz/sheet"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `%s [options] -quiz quizzes.xlsx < image

Turn the image (PNG/JPEG/GIF/BMP/TIFF/WebP) read from stdin into a pixel-art OX quiz sheet.
Cells of the silhouette get quizzes answered O, the others quizzes answered X.

`, os.Args[0])
		flag.PrintDefaults()
	}

	var (
		size      = flag.Int("size", pixelquiz.DefaultOptions().Size, "Number of cells along each side of the puzzle.")
		threshold = flag.Int("threshold", pixelquiz.DefaultOptions().Threshold, "Luminance (0-255) below which a cell is part of the picture, -1 to pick one automatically.")
		quizPath  = flag.String("quiz", "", "Quiz list workbook (.xlsx). Without it only -preview and -stats are produced.")
		quizSheet = flag.String("quiz-sheet", quiz.DefaultSheet, "Sheet of the quiz list: identifiers in column A, O or X in column B, one header row.")
		out       = flag.String("out", sheet.DefaultFilename, "Puzzle workbook to write.")
		outSheet  = flag.String("sheet", sheet.DefaultSheet, "Name of the puzzle sheet.")
		width     = flag.Float64("width", sheet.DefaultExportOptions().ColumnWidth, "Column width of the puzzle sheet.")
		preview   = flag.String("preview", "", "Write the pixelated image to filename (.png, .gif, .jpg, .bmp or .tiff).")
		render    = flag.String("render", "", "Write the puzzle as a printable PNG image to filename.")
		cell      = flag.Int("cell", pixelquiz.DefaultRenderOptions().CellSize, "Cell size in pixels of the -render image.")
		key       = flag.Bool("key", false, "Shade the picture in the -render image, to make an answer sheet.")
		fg        = flag.String("fg", "#000000", "Preview color of the picture.")
		bg        = flag.String("bg", "#ffffff", "Preview color of the background.")
		seed      = flag.Int64("seed", 0, "Seed for reproducible puzzles, 0 for a random one.")
		stats     = flag.Bool("stats", false, "Log coverage and luminance of the pixelated image.")
	)
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(-1)
	}

	if err := run(os.Stdin, flags{
		opts: pixelquiz.Options{
			Size:      *size,
			Threshold: *threshold,
		},
		quiz:      *quizPath,
		quizSheet: *quizSheet,
		out:       *out,
		export: sheet.ExportOptions{
			Sheet:       *outSheet,
			ColumnWidth: *width,
		},
		preview: *preview,
		render:  *render,
		cell:    *cell,
		key:     *key,
		fg:      *fg,
		bg:      *bg,
		seed:    *seed,
		stats:   *stats,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(-1)
	}
}

type flags struct {
	opts      pixelquiz.Options
	quiz      string
	quizSheet string
	out       string
	export    sheet.ExportOptions
	preview   string
	render    string
	cell      int
	key       bool
	fg        string
	bg        string
	seed      int64
	stats     bool
}

func run(in io.Reader, flags flags) error {
	img, format, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	log.Printf("decoded %s image: %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

	session := pixelquiz.NewSession()

	res, err := session.SetImage(img, flags.opts)
	if err != nil {
		return err
	}
	log.Printf("pixelated to %dx%d (threshold %d)", res.Grid.Cols(), res.Grid.Rows(), res.Threshold)

	if flags.stats {
		st := pixelquiz.Summarize(res)
		log.Printf("%d/%d cells in the picture (%.1f%%), luminance %.1f ± %.1f",
			st.Foreground, st.Cells, 100*st.Coverage, st.Mean, st.StdDev)
	}

	if flags.preview != "" {
		if err := writePreview(flags.preview, res, flags.fg, flags.bg); err != nil {
			return err
		}
	}

	if flags.quiz == "" {
		if flags.preview != "" || flags.stats {
			return nil
		}
		return fmt.Errorf("%w: -quiz is required", pixelquiz.ErrInputMissing)
	}

	report, err := readQuiz(flags.quiz, flags.quizSheet)
	if err != nil {
		return err
	}
	log.Printf("loaded %d quizzes (%d rows skipped)", len(report.Entries), report.Skipped)

	if err := session.SetQuiz(report.Entries); err != nil {
		return err
	}

	var rnd pixelquiz.Rand
	if flags.seed != 0 {
		rnd = pixelquiz.NewRand(flags.seed)
	}

	puzzle, err := session.Build(rnd)
	if err != nil {
		return err
	}

	// Render first, so a bad -cell doesn't leave a workbook behind.
	var sheetImg *image.Gray
	if flags.render != "" {
		opts := pixelquiz.DefaultRenderOptions()
		opts.CellSize = flags.cell
		if flags.key {
			opts.Key = res.Grid
		}

		sheetImg, err = pixelquiz.Render(puzzle, opts)
		if err != nil {
			return fmt.Errorf("-render: %w", err)
		}
	}

	if err := writeFile(flags.out, func(w io.Writer) error {
		return sheet.Export(w, puzzle, flags.export)
	}); err != nil {
		return err
	}
	log.Printf("wrote %s", flags.out)

	if sheetImg != nil {
		if err := writeFile(flags.render, func(w io.Writer) error {
			return png.Encode(w, sheetImg)
		}); err != nil {
			return err
		}
		log.Printf("wrote %s", flags.render)
	}

	return nil
}

func readQuiz(path, sheetName string) (quiz.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return quiz.Report{}, err
	}
	defer f.Close()

	opts := quiz.DefaultReadOptions()
	opts.Sheet = sheetName

	report, err := quiz.Read(f, opts)
	if err != nil {
		return quiz.Report{}, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}

var encoders = map[string]func(io.Writer, image.Image) error{
	".png": png.Encode,
	".gif": func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	},
	".jpg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, nil)
	},
	".jpeg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, nil)
	},
	".bmp": bmp.Encode,
	".tif": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, nil)
	},
	".tiff": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, nil)
	},
}

func writePreview(path string, res *pixelquiz.Result, fgHex, bgHex string) error {
	encode, ok := encoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		exts := maps.Keys(encoders)
		slices.Sort(exts)
		return fmt.Errorf("unsupported preview format %q, expected one of %v", filepath.Ext(path), exts)
	}

	fg, err := parseColor(fgHex)
	if err != nil {
		return fmt.Errorf("-fg: %w", err)
	}
	bg, err := parseColor(bgHex)
	if err != nil {
		return fmt.Errorf("-bg: %w", err)
	}

	preview := res.Preview.WithPalette(fg, bg)
	return writeFile(path, func(w io.Writer) error {
		return encode(w, preview)
	})
}

func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
