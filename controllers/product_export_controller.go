package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/Sheras-art/fashionArt/config"
	"github.com/Sheras-art/fashionArt/models"
	"github.com/Sheras-art/fashionArt/utils"
)

// ExportCatalog streams the full catalog as a PDF or Excel download
func ExportCatalog(c *gin.Context) {
	utils.LogInfo("ExportCatalog called")

	format := c.DefaultQuery("format", "pdf")
	if format != "pdf" && format != "excel" {
		utils.BadRequest(c, "Invalid format", "format must be pdf or excel")
		return
	}

	var products []models.Product
	if err := config.DB.Order("category ASC, title ASC").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch catalog for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch catalog", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d products for %s export", len(products), format)

	if format == "excel" {
		exportCatalogExcel(c, products)
		return
	}
	exportCatalogPDF(c, products)
}

func exportCatalogExcel(c *gin.Context, products []models.Product) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Catalog")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(utils.AppName + " - Catalog Export")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"ID", "Title", "Category", "Price", "Stock", "Purchases", "Rating", "Active", "Created"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Title)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetFloat(p.Price)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetInt(p.BuyCount)
		row.AddCell().SetFloat(p.Rating)
		row.AddCell().SetBool(p.IsActive)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02"))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=catalog_export.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Catalog Excel export generated with %d products", len(products))
}

func exportCatalogPDF(c *gin.Context, products []models.Product) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, utils.AppName+" - Catalog Export")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"ID", "Title", "Category", "Price", "Stock", "Purchases", "Rating", "Active", "Created"}
	colWidths := []float64{15, 70, 45, 25, 20, 25, 20, 20, 30}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, p := range products {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		active := "no"
		if p.IsActive {
			active = "yes"
		}
		pdf.CellFormat(colWidths[0], 8, fmt.Sprintf("%d", p.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, p.Title, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, p.Category, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%.2f", p.Price), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%d", p.Stock), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, fmt.Sprintf("%d", p.BuyCount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, fmt.Sprintf("%.1f", p.Rating), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, active, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[8], 8, p.CreatedAt.Format("2006-01-02"), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=catalog_export.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Catalog PDF export generated with %d products", len(products))
}
