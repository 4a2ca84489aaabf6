package utils

import (
	"testing"
	"time"

	"omnio_back_end/internal/models"

	"github.com/stretchr/testify/require"
)

func TestGenerateInvoicePDF(t *testing.T) {
	order := models.Order{
		OrderNumber:   "ORD-1700000000000-42",
		PaymentMethod: "Credit Card",
		Total:         25.00,
		CreatedAt:     time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{Name: "Nimbus ANC Headphones", Price: 10.00, Quantity: 2},
			{Name: "Orbit Wireless Mouse", Price: 5.00, Quantity: 1},
		},
	}

	pdf, err := GenerateInvoicePDF(order, "jo@omnio.shop")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	require.Equal(t, "%PDF", string(pdf[:4]))
}
