package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"omnio_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmationEmail envoie l'e-mail de confirmation de commande,
// avec la facture PDF en pièce jointe si fournie
func SendOrderConfirmationEmail(to, subject, htmlBody string, pdfAttachment []byte) error {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@omnio.shop"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("facture_omnio.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande.
// invoiceURL, si non vide, ajoute un lien de téléchargement de la facture.
func GenerateOrderConfirmationHTML(order models.Order, userEmail, invoiceURL string) string {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, `
			<tr>
				<td style="padding:8px;border-bottom:1px solid #eee;">%s</td>
				<td style="padding:8px;border-bottom:1px solid #eee;text-align:center;">%d</td>
				<td style="padding:8px;border-bottom:1px solid #eee;text-align:right;">%.2f€</td>
				<td style="padding:8px;border-bottom:1px solid #eee;text-align:right;">%.2f€</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family:Arial,sans-serif;background:#f6f6f6;margin:0;padding:24px;">
	<div style="max-width:600px;margin:auto;background:#fff;border-radius:8px;padding:32px;">
		<h1 style="color:#111;">Merci pour votre commande !</h1>
		<p>Bonjour,</p>
		<p>Votre commande <strong>%s</strong> a bien été enregistrée et payée.</p>
		<table style="width:100%%;border-collapse:collapse;margin:24px 0;">
			<thead>
				<tr style="background:#f0f0f0;">
					<th style="padding:8px;text-align:left;">Article</th>
					<th style="padding:8px;">Qté</th>
					<th style="padding:8px;text-align:right;">Prix</th>
					<th style="padding:8px;text-align:right;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		<p style="font-size:18px;text-align:right;"><strong>Total : %.2f€</strong></p>
		%s
		<p style="color:#888;font-size:12px;">Cet e-mail a été envoyé à %s. Vous trouverez votre facture en pièce jointe.</p>
	</div>
</body>
</html>`, order.OrderNumber, items.String(), order.Total, invoiceLink(invoiceURL), userEmail)
}

func invoiceLink(invoiceURL string) string {
	if invoiceURL == "" {
		return ""
	}
	return fmt.Sprintf(`<p><a href="%s" style="color:#0a66c2;">Télécharger votre facture</a> (lien valable 7 jours)</p>`, invoiceURL)
}
