package api

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/baltfin/csv2ofx/internal/models"
	"github.com/baltfin/csv2ofx/internal/ofx"
	"github.com/baltfin/csv2ofx/internal/parser"
)

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Format       string               `json:"format,omitempty"`
	FormatLabel  string               `json:"formatLabel,omitempty"`
	From         string               `json:"from,omitempty"`
	To           string               `json:"to,omitempty"`
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
	OFX          string               `json:"ofx,omitempty"`
}

// RegisterRoutes sets up the HTTP routes.
func RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Get("/api/formats", HandleFormats)
	app.Post("/api/convert", HandleConvert)
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// HandleFormats lists the supported bank formats.
func HandleFormats(c *fiber.Ctx) error {
	formats := make([]fiber.Map, 0, len(models.SupportedFormats))
	for _, f := range models.SupportedFormats {
		formats = append(formats, fiber.Map{
			"format": string(f),
			"label":  models.FormatLabel[f],
		})
	}
	return c.JSON(fiber.Map{"formats": formats})
}

// HandleConvert accepts a bank CSV export as a multipart upload and
// returns the normalized transactions together with the rendered OFX.
// An optional "format" form value skips auto-detection.
func HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to open upload: %v", err))
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to read upload: %v", err))
	}
	content := string(raw)

	format := models.BankFormat(c.FormValue("format"))
	if format != "" {
		if _, ok := models.FormatLabel[format]; !ok {
			return writeError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Unknown format: %q. Supported: %s.", format, supportedList()))
		}
	} else {
		format = parser.DetectFormat(content)
		if format == "" {
			return writeError(c, fiber.StatusUnprocessableEntity,
				"Could not detect bank format. Supported: "+supportedList()+".")
		}
	}

	stmt, err := parser.Parse(format, content)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("Parsing failed: %v", err))
	}

	// nil marshals to JSON null, not []
	txns := stmt.Trx
	if txns == nil {
		txns = []models.Transaction{}
	}

	w := &ofx.Writer{Now: time.Now}
	return c.JSON(ConvertResponse{
		Success:      true,
		Format:       string(format),
		FormatLabel:  models.FormatLabel[format],
		From:         stmt.From,
		To:           stmt.To,
		Count:        len(txns),
		Transactions: txns,
		OFX:          w.Render(stmt),
	})
}

func supportedList() string {
	labels := make([]string, 0, len(models.SupportedFormats))
	for _, f := range models.SupportedFormats {
		labels = append(labels, models.FormatLabel[f])
	}
	return strings.Join(labels, ", ")
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
	})
}
