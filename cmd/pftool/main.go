package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vearutop/photoframe"
	"github.com/vearutop/photoframe/internal/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := LoadConfig()
	if err != nil {
		fail(err)
	}
	log.SetDebug(cfg.Debug)
	if cfg.LogFile != "" {
		c, err := log.SetFile(cfg.LogFile)
		if err != nil {
			fail(err)
		}
		defer c.Close()
	}

	switch os.Args[1] {
	case "apply":
		err = runApply(cfg, os.Args[2:])
	case "batch":
		err = runBatch(context.Background(), cfg, os.Args[2:])
	case "filters":
		err = runFilters(os.Stdout, os.Args[2:])
	case "frames":
		err = runFrames(os.Stdout, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pftool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  apply   -in photo.jpg -out framed.jpg [-recipe r.yaml] [-filter kodak_portra] [-frame polaroid] [-watermark shot-on] [-datestamp] [-q 95]")
	fmt.Fprintln(os.Stderr, "  batch   -out dir [-recipe r.yaml] [-workers 4] [-format jpg] photo1.jpg photo2.jpg ...")
	fmt.Fprintln(os.Stderr, "  filters [-category film]")
	fmt.Fprintln(os.Stderr, "  frames  [-category instant]")
	fmt.Fprintln(os.Stderr, "Environment: PFTOOL_WORKERS, PFTOOL_QUALITY, PFTOOL_LOG_FILE, PFTOOL_DEBUG")
}

// recipeFlags are the edit flags shared by apply and batch; set flags override the recipe file.
type recipeFlags struct {
	recipe     string
	filter     string
	frame      string
	watermark  string
	text       string
	position   string
	dateStamp  bool
	dateFormat string
	aspect     string
	smart      bool
	maxDim     int
	exifMake   string
	exifModel  string
	exifDate   string
}

func (f *recipeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.recipe, "recipe", "", "YAML recipe file")
	fs.StringVar(&f.filter, "filter", "", "filter preset id")
	fs.StringVar(&f.frame, "frame", "", "frame style id")
	fs.StringVar(&f.watermark, "watermark", "", "enable watermark: shot-on, exif-frame, date-stamp or custom")
	fs.StringVar(&f.text, "text", "", "custom watermark text")
	fs.StringVar(&f.position, "position", "", "watermark position, e.g. bottom-right")
	fs.BoolVar(&f.dateStamp, "datestamp", false, "enable date stamp")
	fs.StringVar(&f.dateFormat, "date-format", "", "date stamp format: film, standard, us, eu or long")
	fs.StringVar(&f.aspect, "aspect", "", "crop to aspect ratio, e.g. 3:2")
	fs.BoolVar(&f.smart, "smart", false, "content-aware crop")
	fs.IntVar(&f.maxDim, "max", 0, "bound the longest side in pixels")
	fs.StringVar(&f.exifMake, "make", "", "camera make")
	fs.StringVar(&f.exifModel, "model", "", "camera model")
	fs.StringVar(&f.exifDate, "date", "", "capture time as 2006:01:02 15:04:05")
}

func (f *recipeFlags) build() (photoframe.Recipe, error) {
	r := photoframe.DefaultRecipe()
	if f.recipe != "" {
		var err error
		if r, err = photoframe.LoadRecipe(f.recipe); err != nil {
			return r, err
		}
	}

	if f.filter != "" {
		r.Filter = f.filter
	}
	if f.frame != "" {
		r.Frame = f.frame
	}
	if f.maxDim > 0 {
		r.MaxDim = f.maxDim
	}

	if f.aspect != "" {
		var a photoframe.AspectRatio
		if err := a.UnmarshalText([]byte(f.aspect)); err != nil {
			return r, err
		}
		r.Crop = &photoframe.CropSpec{Aspect: a}
		if f.smart {
			r.Crop.Mode = photoframe.CropSmart
		}
	}

	if f.watermark != "" {
		wm := photoframe.DefaultWatermarkConfig()
		if r.Watermark != nil {
			wm = *r.Watermark
		}
		if err := wm.Mode.UnmarshalText([]byte(f.watermark)); err != nil {
			return r, err
		}
		wm.Enabled = true
		if f.text != "" {
			wm.CustomText = f.text
		}
		if f.position != "" {
			if err := wm.Position.UnmarshalText([]byte(f.position)); err != nil {
				return r, err
			}
		}
		r.Watermark = &wm
	}

	if f.dateStamp || f.dateFormat != "" {
		ds := photoframe.DefaultDateStampStyle()
		if r.DateStamp != nil {
			ds = *r.DateStamp
		}
		ds.Enabled = true
		if f.dateFormat != "" {
			if err := ds.Format.UnmarshalText([]byte(f.dateFormat)); err != nil {
				return r, err
			}
		}
		r.DateStamp = &ds
	}

	if f.exifMake != "" || f.exifModel != "" || f.exifDate != "" {
		e := photoframe.ExifData{}
		if r.Exif != nil {
			e = *r.Exif
		}
		if f.exifMake != "" {
			e.Make = f.exifMake
		}
		if f.exifModel != "" {
			e.Model = f.exifModel
		}
		if f.exifDate != "" {
			e.DateTime = f.exifDate
		}
		r.Exif = &e
	}

	return r, r.Validate()
}

func runApply(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image, format from extension")
	q := fs.Int("q", cfg.Quality, "JPEG quality")
	var rf recipeFlags
	rf.register(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	r, err := rf.build()
	if err != nil {
		return err
	}
	return processFile(r, filepath.Clean(*inPath), filepath.Clean(*outPath), *q)
}

func runBatch(ctx context.Context, cfg *Config, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	outDir := fs.String("out", "", "output directory")
	workers := fs.Int("workers", cfg.Workers, "concurrent images")
	format := fs.String("format", "", "output extension, default keeps the input one")
	q := fs.Int("q", cfg.Quality, "JPEG quality")
	var rf recipeFlags
	rf.register(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outDir == "" || fs.NArg() == 0 {
		return errors.New("missing required arguments")
	}

	r, err := rf.build()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*workers, 1))
	for _, in := range fs.Args() {
		in := in
		out := batchOutPath(*outDir, in, *format)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			id := uuid.NewString()
			log.Printf("job %s: %s -> %s", id, in, out)
			if err := processFile(r, filepath.Clean(in), out, *q); err != nil {
				return fmt.Errorf("job %s: %w", id, err)
			}
			log.Debugf("job %s: done", id)
			return nil
		})
	}
	return g.Wait()
}

func batchOutPath(dir, in, format string) string {
	base := filepath.Base(in)
	if format != "" {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + "." + strings.TrimPrefix(format, ".")
	}
	return filepath.Join(dir, base)
}

func processFile(r photoframe.Recipe, inPath, outPath string, quality int) error {
	img, err := photoframe.DecodeFile(inPath)
	if err != nil {
		return err
	}
	if log.DebugEnabled() {
		log.Debugf("%s: %dx%d, tone stages %v, filter %s, frame %s",
			inPath, img.Rect.Dx(), img.Rect.Dy(), photoframe.ToneStages(r.Tone), r.Filter, r.Frame)
	}

	res, err := photoframe.Process(img, r)
	if err != nil {
		return err
	}
	return photoframe.EncodeFile(outPath, res, quality)
}

func runFilters(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("filters", flag.ContinueOnError)
	category := fs.String("category", "", "only list one category")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := photoframe.FilterPresetList()
	if *category != "" {
		var c photoframe.FilterCategory
		if err := c.UnmarshalText([]byte(*category)); err != nil {
			return err
		}
		list = photoframe.FilterPresetsByCategory(c)
	}
	for _, p := range list {
		fmt.Fprintf(w, "%-18s %-10s %s\n", p.ID, p.Category, p.Name)
	}
	return nil
}

func runFrames(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("frames", flag.ContinueOnError)
	category := fs.String("category", "", "only list one category")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := photoframe.FrameStyleList()
	if *category != "" {
		var c photoframe.FrameCategory
		if err := c.UnmarshalText([]byte(*category)); err != nil {
			return err
		}
		list = photoframe.FrameStylesByCategory(c)
	}
	for _, f := range list {
		fmt.Fprintf(w, "%-18s %-10s %s\n", f.ID, f.Category, f.Name)
	}
	return nil
}

func fail(err error) {
	log.Fatalf("error: %v", err)
}
