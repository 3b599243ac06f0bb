package worker

// documento_worker.go
// Renders the receipt of a committed sale and the voucher of a return, then
// hands them to the e-mail queue when the customer has an address on file.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pdvmercado/internal/infra"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EmailEnqueuer is satisfied by *Dispatcher.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, payload EmailJobPayload) error
}

type DocumentoWorker struct {
	vendaRepo     repository.VendaRepository
	devolucaoRepo repository.DevolucaoRepository
	clienteRepo   repository.ClienteRepository
	cupomRepo     repository.CupomRepository
	emails        EmailEnqueuer
	loja          string
	pdfDir        string
}

func NewDocumentoWorker(
	vendaRepo repository.VendaRepository,
	devolucaoRepo repository.DevolucaoRepository,
	clienteRepo repository.ClienteRepository,
	cupomRepo repository.CupomRepository,
	emails EmailEnqueuer,
	loja, pdfDir string,
) *DocumentoWorker {
	return &DocumentoWorker{
		vendaRepo:     vendaRepo,
		devolucaoRepo: devolucaoRepo,
		clienteRepo:   clienteRepo,
		cupomRepo:     cupomRepo,
		emails:        emails,
		loja:          loja,
		pdfDir:        pdfDir,
	}
}

// ProcessCupom handles a JobCupom payload:
//  1. load the sale with items and payments
//  2. render the PDF
//  3. upsert the cupom row as "emitido"
//  4. enqueue the e-mail when the sale has a customer with an address
func (w *DocumentoWorker) ProcessCupom(ctx context.Context, raw json.RawMessage) error {
	var payload CupomJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("documento_worker: payload inválido: %w", err)
	}
	vendaID, err := uuid.Parse(payload.VendaID)
	if err != nil {
		return fmt.Errorf("documento_worker: venda_id inválido %q", payload.VendaID)
	}

	venda, err := w.vendaRepo.FindByID(ctx, vendaID)
	if err != nil {
		return err
	}
	if venda == nil {
		return fmt.Errorf("documento_worker: venda %s não encontrada", vendaID)
	}

	path, err := infra.GerarCupomPDF(venda, w.loja, w.pdfDir)
	if err != nil {
		return err
	}

	cupom := &model.Cupom{
		ID:      uuid.New(),
		VendaID: venda.ID,
		Estado:  "emitido",
		PDFPath: &path,
	}
	if venda.Cliente != nil && venda.Cliente.Email != nil && *venda.Cliente.Email != "" {
		cupom.EmailDestino = venda.Cliente.Email
	}
	if err := w.cupomRepo.Upsert(ctx, cupom); err != nil {
		return err
	}
	log.Info().Str("venda_id", venda.ID.String()).Str("pdf", path).Msg("documento_worker: cupom emitido")

	if cupom.EmailDestino == nil || w.emails == nil {
		return nil
	}
	vid := venda.ID.String()
	job := EmailJobPayload{
		VendaID: &vid,
		ToEmail: *cupom.EmailDestino,
		Subject: fmt.Sprintf("%s: cupom da venda #%d", w.loja, venda.Numero),
		Body:    fmt.Sprintf("Segue em anexo o cupom da sua compra.\nTotal: R$ %s", venda.ValorTotal.StringFixed(2)),
		PDFPath: path,
	}
	if err := w.emails.EnqueueEmail(ctx, job); err != nil {
		// The cupom stays "emitido" with a due retry, so the cron picks it up.
		log.Warn().Err(err).Str("venda_id", vid).Msg("documento_worker: falha ao enfileirar e-mail")
		atual, ferr := w.cupomRepo.FindByVendaID(ctx, venda.ID)
		if ferr != nil || atual == nil {
			return ferr
		}
		agora := time.Now()
		atual.ProximaTentativaEm = &agora
		return w.cupomRepo.Update(ctx, atual)
	}
	return nil
}

// ProcessVale handles a JobValeCredito payload.
func (w *DocumentoWorker) ProcessVale(ctx context.Context, raw json.RawMessage) error {
	var payload ValeJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("documento_worker: payload inválido: %w", err)
	}
	if payload.CodigoVale == "" {
		return errors.New("documento_worker: codigo_vale vazio")
	}

	credito, err := w.devolucaoRepo.FindCreditoByCodigo(ctx, payload.CodigoVale)
	if err != nil {
		return err
	}
	if credito == nil {
		return fmt.Errorf("documento_worker: vale %s não encontrado", payload.CodigoVale)
	}

	path, err := infra.GerarValePDF(credito, w.loja, w.pdfDir)
	if err != nil {
		return err
	}
	log.Info().Str("codigo_vale", credito.CodigoVale).Str("pdf", path).Msg("documento_worker: vale emitido")

	if w.emails == nil || w.clienteRepo == nil {
		return nil
	}
	cliente, err := w.clienteRepo.FindByCPFCNPJ(ctx, credito.CPFCliente)
	if err != nil {
		return fmt.Errorf("documento_worker: cliente do vale %s: %w", credito.CodigoVale, err)
	}
	if cliente == nil || cliente.Email == nil || *cliente.Email == "" {
		return nil
	}
	return w.emails.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail: *cliente.Email,
		Subject: fmt.Sprintf("%s: vale-crédito %s", w.loja, credito.CodigoVale),
		Body: fmt.Sprintf("Seu vale-crédito de R$ %s é válido até %s.",
			credito.ValorCredito.StringFixed(2), credito.DataValidade.Format("02/01/2006")),
		PDFPath: path,
	})
}
