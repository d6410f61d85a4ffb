// Package nfe lee el XML de una NF-e 4.0 (modelo 55/65) y arma la entrada de la
// simulación: ítems, tributos del régimen actual y vTotTrib.
package nfe

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/simulador-rtc/internal/domain"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/pkg/rtc"
)

// MaxDocumentSize tamaño máximo aceptado del XML.
const MaxDocumentSize = 5 << 20

// Parser convierte XML de NF-e en CalculationInput. No valida el esquema XSD.
type Parser struct{}

// NewParser construye el parser.
func NewParser() *Parser { return &Parser{} }

// Parse lee el documento (con o sin envoltorio nfeProc). Acepta UTF-8 e ISO-8859-1.
func (p *Parser) Parse(r io.Reader) (*entity.CalculationInput, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("nfe: leer XML: %w", err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: XML supera %d bytes", domain.ErrInvalidFiscalDocument, MaxDocumentSize)
	}
	return p.ParseBytes(data)
}

// ParseBytes igual que Parse sobre un buffer.
func (p *Parser) ParseBytes(data []byte) (*entity.CalculationInput, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: XML mal formado: %v", domain.ErrInvalidFiscalDocument, err)
	}

	inf := doc.FindElement("//infNFe")
	if inf == nil {
		return nil, fmt.Errorf("%w: no se encontró infNFe", domain.ErrInvalidFiscalDocument)
	}

	in := &entity.CalculationInput{
		Document: entity.FiscalDocument{
			ID:      strings.TrimPrefix(inf.SelectAttrValue("Id", ""), "NFe"),
			Version: rtc.DefaultVersion,
			UF:      text(inf, "emit/enderEmit/UF"),
		},
	}

	var errs []string
	if mun := text(inf, "ide/cMunFG"); mun != "" {
		n, err := strconv.Atoi(mun)
		if err != nil {
			errs = append(errs, fmt.Sprintf("cMunFG inválido: %q", mun))
		}
		in.Document.Municipality = n
	}

	// ── Ítems ────────────────────────────────────────────────────────────────
	for i, det := range inf.SelectElements("det") {
		item, err := parseItem(i, det)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		in.Document.Items = append(in.Document.Items, item)
	}
	if len(inf.SelectElements("det")) == 0 {
		errs = append(errs, "la nota no tiene ítems (det)")
	}

	// ── Totales ──────────────────────────────────────────────────────────────
	tot := inf.FindElement("total/ICMSTot")
	fields := []struct {
		path string
		dst  *decimal.Decimal
	}{
		{"vICMS", &in.Legacy.ICMS},
		{"vST", &in.Legacy.ST},
		{"vIPI", &in.Legacy.IPI},
		{"vPIS", &in.Legacy.PIS},
		{"vCOFINS", &in.Legacy.COFINS},
		{"vTotTrib", &in.VTotTrib},
	}
	if tot != nil {
		for _, f := range fields {
			v, err := amount(tot, f.path)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			*f.dst = v
		}
	}
	if iss := inf.FindElement("total/ISSQNtot"); iss != nil {
		v, err := amount(iss, "vISS")
		if err != nil {
			errs = append(errs, err.Error())
		}
		in.Legacy.ISS = v
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFiscalDocument, strings.Join(errs, "; "))
	}
	return in, nil
}

// parseItem lee det/prod y el grupo IBSCBS opcional (NF-e posterior a la reforma).
// Sin grupo IBSCBS se usa la clasificación de tributación integral.
func parseItem(idx int, det *etree.Element) (entity.FiscalItem, error) {
	number := idx + 1
	if n, err := strconv.Atoi(det.SelectAttrValue("nItem", "")); err == nil {
		number = n
	}
	prod := det.SelectElement("prod")
	if prod == nil {
		return entity.FiscalItem{}, fmt.Errorf("ítem %d sin prod", number)
	}

	qty, err := amount(prod, "qCom")
	if err != nil {
		return entity.FiscalItem{}, fmt.Errorf("ítem %d: %w", number, err)
	}
	vProd, err := amount(prod, "vProd")
	if err != nil {
		return entity.FiscalItem{}, fmt.Errorf("ítem %d: %w", number, err)
	}
	vDesc, err := amount(prod, "vDesc")
	if err != nil {
		return entity.FiscalItem{}, fmt.Errorf("ítem %d: %w", number, err)
	}

	item := entity.FiscalItem{
		Number:      number,
		NCM:         rtc.NormalizeNCM(text(prod, "NCM")),
		Quantity:    qty,
		Unit:        text(prod, "uCom"),
		CST:         rtc.DefaultCST,
		CClassTrib:  rtc.DefaultCClassTrib,
		BaseCalculo: vProd.Sub(vDesc),
		Description: text(prod, "xProd"),
	}
	if g := det.FindElement("imposto/IBSCBS"); g != nil {
		if cst := text(g, "CST"); cst != "" {
			item.CST = cst
		}
		if cls := text(g, "cClassTrib"); cls != "" {
			item.CClassTrib = cls
		}
	}
	return item, nil
}

func text(el *etree.Element, path string) string {
	if e := el.FindElement(path); e != nil {
		return strings.TrimSpace(e.Text())
	}
	return ""
}

// amount lee un valor monetario; ausente = cero.
func amount(el *etree.Element, path string) (decimal.Decimal, error) {
	s := text(el, path)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s inválido: %q", path, s)
	}
	return d, nil
}

// charsetReader las SEFAZ aún emiten XML en ISO-8859-1; el resto se asume UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1", "LATIN-1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	}
	return input, nil
}
