package infra

// pdf.go renders thermal-receipt sized documents (74mm × 105mm) with go-pdf/fpdf:
// the sale receipt (cupom) and the store-credit voucher issued by a return.

import (
	"fmt"
	"os"
	"path/filepath"

	"pdvmercado/internal/model"

	"github.com/go-pdf/fpdf"
)

const (
	larguraCupom = 74
	alturaCupom  = 105
	margemCupom  = 4
)

func novoDocumento() (*fpdf.Fpdf, float64) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: larguraCupom, Ht: alturaCupom},
	})
	pdf.SetMargins(margemCupom, margemCupom, margemCupom)
	pdf.SetAutoPageBreak(true, margemCupom)
	pdf.AddPage()
	return pdf, larguraCupom - 2*margemCupom
}

func cabecalho(pdf *fpdf.Fpdf, w float64, loja, titulo string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(w, 7, tr(loja), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(w, 5, tr(titulo), "", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func separador(pdf *fpdf.Fpdf) {
	pdf.Ln(1)
	pdf.Line(margemCupom, pdf.GetY(), larguraCupom-margemCupom, pdf.GetY())
	pdf.Ln(2)
}

func salvar(pdf *fpdf.Fpdf, dir, nome string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: criar diretório: %w", err)
	}
	path := filepath.Join(dir, nome)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf: gravar arquivo: %w", err)
	}
	return path, nil
}

// GerarCupomPDF writes cupom_<numero>.pdf into dir and returns its path.
// Item names come from VendaItem.Produto when preloaded.
func GerarCupomPDF(venda *model.Venda, loja, dir string) (string, error) {
	pdf, w := novoDocumento()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	cabecalho(pdf, w, loja, "Cupom não fiscal")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(w, 5, tr(fmt.Sprintf("Venda Nº %d", venda.Numero)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(w, 4, venda.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if venda.CPFCliente != nil {
		pdf.CellFormat(w, 4, "CPF/CNPJ: "+*venda.CPFCliente, "", 1, "L", false, 0, "")
	}
	separador(pdf)

	col1 := w * 0.52
	col2 := w * 0.16
	col3 := w * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venda.Itens {
		nome := item.ProdutoID.String()[:8]
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		if r := []rune(nome); len(r) > 22 {
			nome = string(r[:21]) + "."
		}
		pdf.CellFormat(col1, 5, tr(nome), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantidade), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "R$ "+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	separador(pdf)

	if !venda.Desconto.IsZero() {
		pdf.CellFormat(col1+col2, 5, "Desconto:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "-R$ "+venda.Desconto.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "R$ "+venda.ValorTotal.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 7)
	for _, p := range venda.Pagamentos {
		label := fmt.Sprintf("Pagamento %d:", p.TipoPagamentoID)
		if p.TipoPagamento != nil {
			label = p.TipoPagamento.Descricao + ":"
		}
		pdf.CellFormat(col1+col2, 4, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "R$ "+p.ValorPago.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if venda.Troco.IsPositive() {
		pdf.CellFormat(col1+col2, 4, "Troco:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, "R$ "+venda.Troco.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(w, 4, tr("Obrigado pela preferência!"), "", 1, "C", false, 0, "")

	return salvar(pdf, dir, fmt.Sprintf("cupom_%d.pdf", venda.Numero))
}

// GerarValePDF writes vale_<codigo>.pdf for a store-credit voucher.
func GerarValePDF(c *model.DevolucaoCredito, loja, dir string) (string, error) {
	pdf, w := novoDocumento()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	cabecalho(pdf, w, loja, "Vale-crédito")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(w, 7, c.CodigoVale, "", 1, "C", false, 0, "")
	separador(pdf)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(w, 5, "CPF/CNPJ: "+c.CPFCliente, "", 1, "L", false, 0, "")
	pdf.CellFormat(w, 5, tr("Emissão: "+c.CreatedAt.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(w, 5, "Validade: "+c.DataValidade.Format("02/01/2006"), "", 1, "L", false, 0, "")
	separador(pdf)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(w, 8, "R$ "+c.ValorCredito.StringFixed(2), "", 1, "C", false, 0, "")

	return salvar(pdf, dir, "vale_"+c.CodigoVale+".pdf")
}
