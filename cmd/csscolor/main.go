package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/BeatGlow/csscolor"
	"github.com/BeatGlow/csscolor/framebuffer"
	"github.com/BeatGlow/csscolor/internal/logger"
	"github.com/BeatGlow/csscolor/palette"
	"github.com/BeatGlow/csscolor/pixel"
	"github.com/BeatGlow/csscolor/swatch"
)

var errParse = errors.New("one or more colours failed to parse")

func main() {
	strictFlag := flag.Bool("strict", false, "Reject out of range components and trailing hex digits")
	formatFlag := flag.String("format", "", "Also print packed pixel bytes (mono, gray4, rgb555, rgb565)")
	pngFlag := flag.String("png", "", "Write a swatch PNG to this path")
	fbFlag := flag.String("fb", "", "Show the colours on a Linux framebuffer device, e.g. /dev/fb0")
	sizeFlag := flag.Int("size", 0, "Swatch cell size in pixels (default: 160x96)")
	paletteFlag := flag.String("palette", "", "Load palette files matching this glob, ** is supported")
	watchFlag := flag.Bool("watch", false, "With -palette, keep running and reprint palettes on change")
	logLevelFlag := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFileFlag := flag.String("log-file", "", "Log to a rotated file instead of stderr")
	flag.Parse()

	level := logger.ParseLevel(*logLevelFlag)
	if os.Getenv("CSSCOLOR_DEBUG") != "" {
		level = slog.LevelDebug
	}
	if *logFileFlag != "" {
		log, closer := logger.NewFile(*logFileFlag, level, 10)
		defer closer.Close()
		slog.SetDefault(log)
	} else {
		slog.SetDefault(logger.New(os.Stderr, level))
	}

	if flag.NArg() == 0 && *paletteFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <colour>...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var format *pixel.Format
	if *formatFlag != "" {
		f, err := pixel.ParseFormat(*formatFlag)
		if err != nil {
			fatal(err)
		}
		format = &f
	}

	p := &printer{
		w:      os.Stdout,
		parser: csscolor.NewParser(&csscolor.Config{Strict: *strictFlag}),
		format: format,
	}

	colors, labels, err := p.printColors(flag.Args())
	if *pngFlag != "" && len(colors) > 0 {
		if err := writeSwatch(*pngFlag, colors, labels, *sizeFlag); err != nil {
			fatal(err)
		}
		slog.Info("wrote swatch", "path", *pngFlag, "colors", len(colors))
	}

	if *fbFlag != "" && len(colors) > 0 {
		if err := showFramebuffer(*fbFlag, colors, labels, *sizeFlag); err != nil {
			fatal(err)
		}
	}

	if *paletteFlag != "" {
		palettes, perr := palette.Glob(*paletteFlag)
		if perr != nil {
			fatal(perr)
		}
		for _, pal := range palettes {
			p.printPalette(pal)
		}
		if *watchFlag {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if werr := watch(ctx, p, palettes); werr != nil {
				fatal(werr)
			}
		}
	}

	if err != nil {
		fatal(err)
	}
}

// printer writes one report line per colour.
type printer struct {
	w      io.Writer
	parser *csscolor.Parser
	format *pixel.Format // nil prints no packed bytes
}

// printColors parses and prints every argument. Failures are logged and
// reported as errParse once all arguments have been handled.
func (p *printer) printColors(args []string) (colors []color.NRGBA, labels []string, err error) {
	for _, arg := range args {
		c, perr := p.parser.Parse(arg)
		if perr != nil {
			slog.Error("parse failed", "input", arg, "error", perr)
			err = errParse
			continue
		}
		slog.Debug("parsed", "input", arg, "r", c.R, "g", c.G, "b", c.B, "a", c.A)
		p.printColor(arg, c)
		colors = append(colors, c)
		labels = append(labels, arg)
	}
	return
}

func (p *printer) printColor(label string, c color.NRGBA) {
	fmt.Fprintf(p.w, "%-24s rgba(%d, %d, %d, %d) #%02x%02x%02x%02x", label, c.R, c.G, c.B, c.A, c.R, c.G, c.B, c.A)
	if p.format != nil {
		fmt.Fprintf(p.w, " %s:%x", *p.format, p.format.Pack(c))
	}
	fmt.Fprintln(p.w)
}

func (p *printer) printPalette(pal *palette.Palette) {
	fmt.Fprintf(p.w, "# %s (%s)\n", pal.Name, pal.Path)
	for _, e := range pal.Entries {
		p.printColor(e.Name, e.Color)
	}
}

func watch(ctx context.Context, p *printer, palettes []*palette.Palette) error {
	updates := make(chan palette.Update)
	for _, pal := range palettes {
		ch, err := palette.Watch(ctx, pal.Path)
		if err != nil {
			return err
		}
		go func() {
			for u := range ch {
				select {
				case updates <- u:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	slog.Info("watching palettes", "count", len(palettes))
	for {
		select {
		case <-ctx.Done():
			return nil
		case u := <-updates:
			if u.Err != nil {
				slog.Warn("palette reload failed", "error", u.Err)
				continue
			}
			p.printPalette(u.Palette)
		}
	}
}

func swatchOptions(size int) *swatch.Options {
	if size <= 0 {
		return nil
	}
	return &swatch.Options{
		Width:   size,
		Height:  size,
		Radius:  size / 12,
		Checker: max(size/16, 2),
	}
}

func writeSwatch(path string, colors []color.NRGBA, labels []string, size int) error {
	img, err := swatch.Strip(colors, labels, swatchOptions(size))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = swatch.EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// showFramebuffer fills the framebuffer with a single colour, or shows a
// swatch strip for more than one.
func showFramebuffer(name string, colors []color.NRGBA, labels []string, size int) error {
	fb, err := framebuffer.Open(name)
	if err != nil {
		return err
	}
	defer fb.Close()
	slog.Debug("opened framebuffer", "display", fb.String())

	if len(colors) == 1 {
		return swatch.Show(fb, colors[0])
	}
	img, err := swatch.Strip(colors, labels, swatchOptions(size))
	if err != nil {
		return err
	}
	return swatch.ShowImage(fb, img)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
