package calculadora

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// ── Protocolo de la Calculadora RTC (POST /api/calculadora/regime-geral) ──────

type regimeGeralRequest struct {
	ID              string            `json:"id"`
	Versao          string            `json:"versao"`
	DataHoraEmissao string            `json:"dataHoraEmissao"`
	Municipio       int               `json:"municipio"`
	UF              string            `json:"uf"`
	Itens           []regimeGeralItem `json:"itens"`
}

type regimeGeralItem struct {
	Numero            int                `json:"numero"`
	NCM               string             `json:"ncm"`
	NBS               string             `json:"nbs,omitempty"`
	Quantidade        number             `json:"quantidade"`
	Unidade           string             `json:"unidade"`
	CST               string             `json:"cst"`
	BaseCalculo       number             `json:"baseCalculo"`
	CClassTrib        string             `json:"cClassTrib"`
	TributacaoRegular *tributacaoRegular `json:"tributacaoRegular,omitempty"`
	ImpostoSeletivo   *impostoSeletivo   `json:"impostoSeletivo,omitempty"`
}

type tributacaoRegular struct {
	CST        string `json:"cst"`
	CClassTrib string `json:"cClassTrib"`
}

type impostoSeletivo struct {
	CST              string `json:"cst"`
	BaseCalculo      number `json:"baseCalculo"`
	CClassTrib       string `json:"cClassTrib"`
	Unidade          string `json:"unidade"`
	Quantidade       number `json:"quantidade"`
	ImpostoInformado number `json:"impostoInformado"`
}

type regimeGeralResponse struct {
	Objetos []objeto `json:"objetos"`
}

type objeto struct {
	NObj     int `json:"nObj"`
	TribCalc struct {
		IBSCBS *struct {
			CST        string `json:"CST"`
			CClassTrib string `json:"cClassTrib"`
			GIBSCBS    struct {
				VBC  number `json:"vBC"`
				VIBS number `json:"vIBS"`
				GCBS struct {
					VCBS number `json:"vCBS"`
					PCBS number `json:"pCBS"`
				} `json:"gCBS"`
				GIBSUF struct {
					PIBSUF number `json:"pIBSUF"`
				} `json:"gIBSUF"`
				GIBSMun struct {
					PIBSMun number `json:"pIBSMun"`
				} `json:"gIBSMun"`
			} `json:"gIBSCBS"`
		} `json:"IBSCBS"`
		IS *struct {
			VIS number `json:"vIS"`
		} `json:"IS"`
	} `json:"tribCalc"`
}

// number decimal que la calculadora puede enviar como número JSON o como string.
// Se serializa siempre como número.
type number struct {
	decimal.Decimal
}

func num(d decimal.Decimal) number { return number{Decimal: d} }

// MarshalJSON escribe el valor sin comillas.
func (n number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// UnmarshalJSON acepta 12.5, "12.5", "" y null (los dos últimos como cero).
func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	n.Decimal = d
	return nil
}

// ── Mapeo dominio ↔ protocolo ────────────────────────────────────────────────

const emissionLayout = "2006-01-02T15:04:05-07:00"

func toRequest(doc *entity.FiscalDocument, emission string) regimeGeralRequest {
	req := regimeGeralRequest{
		ID:              doc.ID,
		Versao:          doc.Version,
		DataHoraEmissao: emission,
		Municipio:       doc.Municipality,
		UF:              doc.UF,
		Itens:           make([]regimeGeralItem, 0, len(doc.Items)),
	}
	for _, it := range doc.Items {
		item := regimeGeralItem{
			Numero:      it.Number,
			NCM:         it.NCM,
			NBS:         it.NBS,
			Quantidade:  num(it.Quantity),
			Unidade:     it.Unit,
			CST:         it.CST,
			BaseCalculo: num(it.BaseCalculo),
			CClassTrib:  it.CClassTrib,
		}
		if it.Regular != nil {
			item.TributacaoRegular = &tributacaoRegular{CST: it.Regular.CST, CClassTrib: it.Regular.CClassTrib}
		}
		if s := it.Selective; s != nil {
			item.ImpostoSeletivo = &impostoSeletivo{
				CST:              s.CST,
				BaseCalculo:      num(s.BaseCalculo),
				CClassTrib:       s.CClassTrib,
				Unidade:          s.Unit,
				Quantidade:       num(s.Quantity),
				ImpostoInformado: num(s.InformedTax),
			}
		}
		req.Itens = append(req.Itens, item)
	}
	return req
}

func (o objeto) toEntity() entity.OfficialObject {
	out := entity.OfficialObject{Number: o.NObj}
	if g := o.TribCalc.IBSCBS; g != nil {
		out.CST = g.CST
		out.CClassTrib = g.CClassTrib
		out.BaseCalculo = g.GIBSCBS.VBC.Decimal
		out.IBS = g.GIBSCBS.VIBS.Decimal
		out.CBS = g.GIBSCBS.GCBS.VCBS.Decimal
		out.CBSRate = g.GIBSCBS.GCBS.PCBS.Decimal
		out.IBSUFRate = g.GIBSCBS.GIBSUF.PIBSUF.Decimal
		out.IBSMunRate = g.GIBSCBS.GIBSMun.PIBSMun.Decimal
	}
	if o.TribCalc.IS != nil {
		out.IS = o.TribCalc.IS.VIS.Decimal
	}
	return out
}
