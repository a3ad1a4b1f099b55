package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gompdf/invoicepdf/internal/config"
	"github.com/gompdf/invoicepdf/internal/encoding"
	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/logger"
	"github.com/gompdf/invoicepdf/pkg/api"
)

func main() {
	var (
		inputFile  string
		outputFile string
		share      string
		languages  string
		template   string
		fontDir    string
		pageSize   string
		landscape  bool
		layoutOnly bool
		verbose    bool
	)

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&inputFile, "input", "", "Input invoice JSON file path")
	flag.StringVar(&outputFile, "output", "", "Output PDF (or ZIP with -languages) file path")
	flag.StringVar(&share, "share", "", "Render a share-link payload instead of an input file")
	flag.StringVar(&languages, "languages", "", "Comma separated languages, e.g. en,pl; writes a ZIP")
	flag.StringVar(&template, "template", "", "Override the template: default or stripe")
	flag.StringVar(&fontDir, "font-dir", cfg.FontDir, "Directory with <family>-Regular.ttf and -Bold.ttf")
	flag.StringVar(&pageSize, "page-size", cfg.PageSize, "Page size: A3, A4, A5, Letter or Legal")
	flag.BoolVar(&landscape, "landscape", cfg.Landscape, "Landscape orientation")
	flag.BoolVar(&layoutOnly, "layout", false, "Write the layout tree as JSON instead of a PDF")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" && share == "" {
		fmt.Println("Error: input file or share payload is required")
		flag.Usage()
		os.Exit(1)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, err := logger.New(level, true)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	d, err := readInvoice(inputFile, share)
	if err != nil {
		log.Fatal("failed to read invoice", zap.Error(err))
	}
	if template != "" {
		d.Template = invoice.ParseTemplate(template)
	}

	w, h, ok := api.PageSizeByName(pageSize)
	if !ok {
		log.Fatal("unknown page size", zap.String("page_size", pageSize))
	}
	opts := api.DefaultOptions()
	opts.Logger = log
	opts.Debug = verbose
	opts.PageWidth, opts.PageHeight = w, h
	if landscape {
		opts.PageOrientation = api.PageOrientationLandscape
	}
	opts.MarginTop, opts.MarginRight, opts.MarginBottom, opts.MarginLeft = cfg.MarginTop, cfg.MarginRight, cfg.MarginBottom, cfg.MarginLeft
	opts.AttributionURL = cfg.AttributionURL
	opts.FontFamily = cfg.FontFamily
	opts.LocalFiles = true
	if fontDir != "" {
		opts.FontDirectories = append(opts.FontDirectories, fontDir)
	}
	if inputFile != "" {
		opts.ResourcePaths = append(opts.ResourcePaths, filepath.Dir(inputFile))
	}
	gen := api.NewWithOptions(opts)

	if outputFile == "" {
		outputFile = defaultOutput(inputFile, d, languages != "", layoutOnly)
	}

	ctx := context.Background()
	switch {
	case layoutOnly:
		err = writeLayout(ctx, gen, d, outputFile)
	case languages != "":
		err = writeZip(ctx, gen, d, languages, outputFile)
	default:
		err = gen.RenderFile(ctx, d, outputFile)
	}
	if err != nil {
		log.Fatal("failed to write output", zap.Error(err), zap.String("output", outputFile))
	}

	log.Debug("wrote invoice", zap.String("output", outputFile))
}

func readInvoice(path, share string) (*invoice.Data, error) {
	if share != "" {
		return invoice.DecodeShareLink(share)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	b, err := encoding.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return invoice.DecodeBytes(b)
}

func defaultOutput(input string, d *invoice.Data, archive, layoutOnly bool) string {
	base := strings.TrimSuffix(api.FileName(d.InvoiceNumber.Value, d.Language), ".pdf")
	if input != "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	switch {
	case layoutOnly:
		return base + ".layout.json"
	case archive:
		return base + ".zip"
	}
	return base + ".pdf"
}

func writeLayout(ctx context.Context, gen *api.Generator, d *invoice.Data, path string) error {
	doc, err := gen.Layout(ctx, d)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

func writeZip(ctx context.Context, gen *api.Generator, d *invoice.Data, languages, path string) error {
	langs, err := i18n.ParseLanguages(languages)
	if err != nil {
		return err
	}
	results, err := gen.RenderLanguages(ctx, d, langs)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := api.WriteZip(&buf, d.InvoiceNumber.Value, d.DateOfIssue.Time, results); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
