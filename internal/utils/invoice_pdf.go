package utils

import (
	"bytes"
	"fmt"
	"time"

	"omnio_back_end/internal/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GenerateInvoicePDF génère la facture PDF d'une commande, avec un QR
// code contenant le numéro de commande pour le suivi
func GenerateInvoicePDF(order models.Order, userEmail string) ([]byte, error) {
	qrData := fmt.Sprintf("order=%s&total=%.2f", order.OrderNumber, order.Total)
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// En-tête
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(0, 12, "Facture Omnio", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Commande : %s", order.OrderNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Date : %s", order.CreatedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Client : %s", userEmail), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Paiement : %s", order.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Tableau des articles
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 9, "Article", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 9, "Qté", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 9, "Prix", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 9, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		pdf.CellFormat(90, 9, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 9, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 9, fmt.Sprintf("%.2f EUR", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 9, fmt.Sprintf("%.2f EUR", item.Price*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 10, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f EUR", order.Total), "1", 1, "R", false, 0, "")

	// QR de suivi
	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 35, 35, false, imgOpts, 0, "")

	// Pied de page
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 8, fmt.Sprintf("Omnio — facture générée le %s", time.Now().Format("02/01/2006")), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
