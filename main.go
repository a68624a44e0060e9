package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/baltfin/csv2ofx/internal/api"
	"github.com/baltfin/csv2ofx/internal/models"
	"github.com/baltfin/csv2ofx/internal/ofx"
	"github.com/baltfin/csv2ofx/internal/parser"
)

const version = "1.0.0"

func main() {
	formatFlag := flag.String("format", "", "Bank format: swedbank, revolut, n26, citadele (auto-detected if omitted)")
	outputFlag := flag.String("output", "", "Output OFX file path (defaults to statement-<format>.ofx next to input)")
	serveFlag := flag.Bool("serve", false, "Run the HTTP conversion API instead of converting files")
	portFlag := flag.String("port", "", "Port for -serve (defaults to PORT env or 8080)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank Statement CSV to OFX Converter

Converts CSV statement exports from Swedbank LT, Revolut, N26 and
Citadele into OFX/QFX files for personal-finance software.

Usage:
  csv2ofx [flags] <input.csv> [input2.csv ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Auto-detect bank and convert
  csv2ofx statement.csv

  # Specify format explicitly
  csv2ofx --format=swedbank statement.csv

  # Custom output path
  csv2ofx --format=revolut --output=transactions.ofx statement.csv

  # Run the HTTP API
  csv2ofx --serve --port=8080

Supported Formats:
  swedbank  - Swedbank LT (quoted CSV with D/K flags)
  revolut   - Revolut (Type,Product,Started Date header)
  n26       - N26 (quoted Date/Payee header)
  citadele  - Citadele (bank name banner row)
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("csv2ofx v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag {
		serve(*portFlag)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	var format models.BankFormat
	if *formatFlag != "" {
		f := models.BankFormat(strings.ToLower(*formatFlag))
		if _, ok := models.FormatLabel[f]; !ok {
			log.Fatalf("unknown format %q; supported: swedbank, revolut, n26, citadele", *formatFlag)
		}
		format = f
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, format, *outputFlag); err != nil {
			log.Fatal("conversion failed", "file", inputPath, "err", err)
		}
	}
}

func processFile(inputPath string, format models.BankFormat, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	content := string(raw)

	fmt.Printf("Processing: %s\n", inputPath)

	effective := format
	if effective == "" {
		effective = parser.DetectFormat(content)
		if effective == "" {
			return fmt.Errorf("could not detect bank format; supported: Swedbank LT, Revolut, N26, Citadele")
		}
		fmt.Printf("  Detected format: %s\n", models.FormatLabel[effective])
	}

	p, err := parser.New(effective)
	if err != nil {
		return err
	}

	stmt, err := p.Parse(content)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	fmt.Printf("  Found %d transaction(s)\n", len(stmt.Trx))
	if len(stmt.Trx) == 0 {
		fmt.Println("  Warning: no transactions found in this file.")
	} else {
		fmt.Printf("  Period: %s to %s\n", stmt.From, stmt.To)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(inputPath), fmt.Sprintf("statement-%s.ofx", effective))
	}

	w := &ofx.Writer{}
	if err := w.WriteToFile(outPath, stmt); err != nil {
		return fmt.Errorf("OFX write failed: %w", err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	fmt.Println("  Done.")
	return nil
}

func serve(port string) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", "err", err)
	}

	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	app := fiber.New(fiber.Config{
		AppName: "csv2ofx v" + version,
	})
	api.RegisterRoutes(app)

	log.Info("starting conversion API", "port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
