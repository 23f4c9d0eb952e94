// Command fxmerge composites two image files with a named merge operator.
//
// Usage:
//
//	fxmerge --a fg.png --b bg.png --op screen --mix 0.8 --out result.png
//
// The output covers the bounds of B. A, B and the optional mask are read
// through the --boundary mode where they do not cover the output.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	supportext "github.com/NatronGitHub/openfx-supportext-sub000"
)

func main() {
	if err := run(context.Background(), os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "fxmerge:", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	a, b, out    string
	op           string
	mix          float32
	mask         string
	maskInvert   bool
	alphaMasking bool
	boundary     string
	fit          bool
	workers      int
	list         bool
	verbose      bool
}

var boundaries = lo.KeyBy(
	[]supportext.BoundaryMode{supportext.BoundaryBlack, supportext.BoundaryClamp, supportext.BoundaryPeriodic},
	supportext.BoundaryMode.String,
)

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	c := &config{}
	fs := flag.NewFlagSet("fxmerge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.a, "a", "", "foreground image (A)")
	fs.StringVar(&c.b, "b", "", "background image (B)")
	fs.StringVarP(&c.out, "out", "o", "", "output file (.png, .bmp, .tif)")
	fs.StringVar(&c.op, "op", supportext.OpOver.String(), "merge operator, see --list")
	fs.Float32Var(&c.mix, "mix", 1, "weight of the merged result over B")
	fs.StringVar(&c.mask, "mask", "", "mask image; its alpha limits the effect")
	fs.BoolVar(&c.maskInvert, "mask-invert", false, "use 1 - mask")
	fs.BoolVar(&c.alphaMasking, "alpha-masking", false, "keep the union alpha for maskable operators")
	fs.StringVar(&c.boundary, "boundary", "black", "reads outside an input: black, clamp or periodic")
	fs.BoolVar(&c.fit, "fit", false, "resample A to the size of B")
	fs.IntVarP(&c.workers, "workers", "j", 0, "bands per call (0 = automatic)")
	fs.BoolVar(&c.list, "list", false, "list merge operators and exit")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func run(ctx context.Context, args []string, fsys afero.Fs, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	supportext.SetLogger(logger)
	defer supportext.SetLogger(nil)

	if c.list {
		return listOps(stdout)
	}

	op, ok := supportext.ParseOp(c.op)
	if !ok {
		return fmt.Errorf("unknown operator %q", c.op)
	}
	boundary, ok := boundaries[c.boundary]
	if !ok {
		return fmt.Errorf("unknown boundary %q (want black, clamp or periodic)", c.boundary)
	}
	if c.b == "" || c.out == "" {
		return errors.New("--b and --out are required")
	}
	encode, err := encoderFor(c.out)
	if err != nil {
		return err
	}

	bImg, err := decode(fsys, c.b)
	if err != nil {
		return err
	}
	b, err := supportext.FromImage(bImg, supportext.FormatRGBA, supportext.DepthUShort)
	if err != nil {
		return err
	}
	b.Boundary = boundary

	var a *supportext.Buffer
	if c.a != "" {
		aImg, err := decode(fsys, c.a)
		if err != nil {
			return err
		}
		if c.fit {
			r := bImg.Bounds()
			aImg = supportext.Scale(aImg, r.Dx(), r.Dy())
		}
		if a, err = supportext.FromImage(aImg, supportext.FormatRGBA, supportext.DepthUShort); err != nil {
			return err
		}
		a.Boundary = boundary
	}

	opts := []supportext.RenderOption{
		supportext.WithMix(c.mix),
		supportext.WithAlphaMasking(c.alphaMasking),
		supportext.WithWorkers(c.workers),
	}
	if c.mask != "" {
		mImg, err := decode(fsys, c.mask)
		if err != nil {
			return err
		}
		mask, err := supportext.FromImage(mImg, supportext.FormatAlpha, supportext.DepthUShort)
		if err != nil {
			return err
		}
		mask.Boundary = boundary
		opts = append(opts, supportext.WithMask(mask, c.maskInvert))
	}

	e := supportext.NewEngine()
	defer e.Close()

	dst := supportext.NewBuffer(b.Bounds, supportext.FormatRGBA, supportext.DepthUShort)
	if err := e.Merge(ctx, dst, a, b, dst.Bounds, op, opts...); err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	img, err := supportext.ToImage(dst)
	if err != nil {
		return err
	}
	if err := write(fsys, c.out, img, encode); err != nil {
		return err
	}
	logger.Info("wrote", "path", c.out, "op", op, "size", fmt.Sprintf("%dx%d", dst.Bounds.Width(), dst.Bounds.Height()))
	return nil
}

// listOps prints one operator per line with its properties.
func listOps(w io.Writer) error {
	lines := lo.Map(supportext.Ops(), func(op supportext.Op, _ int) string {
		tags := lo.Compact([]string{
			lo.Ternary(op.Separable(), "", "non-separable"),
			lo.Ternary(op.Maskable(), "maskable", ""),
		})
		if len(tags) == 0 {
			return op.String()
		}
		return fmt.Sprintf("%-14s %s", op, strings.Join(tags, ", "))
	})
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}

func decode(fsys afero.Fs, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	supportext.Logger().Debug("decoded", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}

func write(fsys afero.Fs, path string, img image.Image, encode encodeFunc) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
