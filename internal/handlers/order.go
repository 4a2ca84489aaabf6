package handlers

import (
	"context"
	"log"
	"net/http"

	"omnio_back_end/internal/commerce"
	"omnio_back_end/internal/models"
	"omnio_back_end/internal/services"
	"omnio_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders *commerce.OrderService
}

func NewOrderHandler(orders *commerce.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

// POST /api/orders/place — transforme le panier en commande payée
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	order, err := h.Orders.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Confirmation + facture en arrière-plan, la commande est déjà
	// enregistrée
	if email := c.GetString("email"); email != "" {
		go sendOrderConfirmation(*order, email)
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}

func sendOrderConfirmation(order models.Order, email string) {
	pdf, err := utils.GenerateInvoicePDF(order, email)
	if err != nil {
		log.Println("⚠️ Génération facture échouée pour", order.OrderNumber, ":", err)
		pdf = nil
	}

	// Archivage MinIO : le lien signé complète la pièce jointe, son échec
	// n'empêche pas l'envoi
	invoiceURL := ""
	if pdf != nil {
		url, err := services.ArchiveInvoice(context.Background(), order.OrderNumber, pdf)
		if err != nil {
			log.Println("⚠️ Archivage facture échoué pour", order.OrderNumber, ":", err)
		} else {
			invoiceURL = url
		}
	}

	html := utils.GenerateOrderConfirmationHTML(order, email, invoiceURL)
	subject := "Confirmation de commande " + order.OrderNumber

	if err := utils.SendOrderConfirmationEmail(email, subject, html, pdf); err != nil {
		log.Println("⚠️ Envoi e-mail échoué pour", order.OrderNumber, ":", err)
	}
}

// GET /api/orders/me — historique, plus récentes d'abord
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	orders, err := h.Orders.MyOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// GET /api/orders/me/:id — une commande, introuvable si elle appartient
// à quelqu'un d'autre
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		respondError(c, commerce.ErrUnauthorized)
		return
	}

	orderID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	order, err := h.Orders.OrderByID(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}
