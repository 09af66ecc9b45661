package worker

// invoice_worker.go
// Renders invoice PDFs from QueueInvoicePDF. Rendering happens off the
// request path so a slow disk never delays the API response.

import (
	"context"
	"encoding/json"

	"github.com/mturke1996/al-fahed/internal/infra"
	"github.com/mturke1996/al-fahed/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InvoicePDFPayload is the job envelope sent to QueueInvoicePDF.
type InvoicePDFPayload struct {
	InvoiceID string `json:"invoice_id"`
}

// InvoicePDFWorker fetches the invoice with its sale and customer and writes
// the printable PDF to disk.
type InvoicePDFWorker struct {
	invoiceRepo    repository.InvoiceRepository
	pdfStoragePath string
}

func NewInvoicePDFWorker(invoiceRepo repository.InvoiceRepository, pdfStoragePath string) *InvoicePDFWorker {
	return &InvoicePDFWorker{invoiceRepo: invoiceRepo, pdfStoragePath: pdfStoragePath}
}

func (w *InvoicePDFWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload InvoicePDFPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("invoice_worker: invalid payload")
		return
	}

	invoiceID, err := uuid.Parse(payload.InvoiceID)
	if err != nil {
		log.Error().Str("invoice_id", payload.InvoiceID).Msg("invoice_worker: invalid invoice_id")
		return
	}

	inv, err := w.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		log.Error().Err(err).Str("invoice_id", payload.InvoiceID).Msg("invoice_worker: fetch failed")
		return
	}

	path, err := infra.GenerateInvoicePDF(inv, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("invoice_worker: pdf generation failed")
		return
	}

	log.Info().Str("invoice", inv.InvoiceNumber).Str("path", path).Msg("invoice pdf generated")
}
