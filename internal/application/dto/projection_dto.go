package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// ── Request: nota fiscal en el formato de la Calculadora RTC ─────────────────

// CalculationRequest body de POST /api/calcular, /api/calcular-rtc y /api/projecao/pdf.
// dataHoraEmissao se acepta por compatibilidad pero se ignora: cada año usa su propia fecha de referencia.
type CalculationRequest struct {
	ID              string                 `json:"id"`
	Versao          string                 `json:"versao"`
	DataHoraEmissao string                 `json:"dataHoraEmissao,omitempty"`
	Municipio       int                    `json:"municipio"`
	UF              string                 `json:"uf"`
	Itens           []ItemRequest          `json:"itens"`
	TributosAtuais  *TributosAtuaisRequest `json:"tributosAtuais,omitempty"` // no se envía a la calculadora
	VTotTrib        decimal.Decimal        `json:"vTotTrib"`
}

// ItemRequest ítem de la nota.
type ItemRequest struct {
	Numero            int                       `json:"numero"`
	NCM               string                    `json:"ncm"`
	NBS               string                    `json:"nbs,omitempty"`
	Quantidade        decimal.Decimal           `json:"quantidade"`
	Unidade           string                    `json:"unidade"`
	CST               string                    `json:"cst"`
	BaseCalculo       decimal.Decimal           `json:"baseCalculo"`
	CClassTrib        string                    `json:"cClassTrib"`
	Descricao         string                    `json:"descricao,omitempty"`
	TributacaoRegular *TributacaoRegularRequest `json:"tributacaoRegular,omitempty"`
	ImpostoSeletivo   *ImpostoSeletivoRequest   `json:"impostoSeletivo,omitempty"`
}

// TributacaoRegularRequest grupo gTribRegular.
type TributacaoRegularRequest struct {
	CST        string `json:"cst"`
	CClassTrib string `json:"cClassTrib"`
}

// ImpostoSeletivoRequest grupo del Imposto Seletivo del ítem.
type ImpostoSeletivoRequest struct {
	CST              string          `json:"cst"`
	BaseCalculo      decimal.Decimal `json:"baseCalculo"`
	CClassTrib       string          `json:"cClassTrib"`
	Unidade          string          `json:"unidade"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	ImpostoInformado decimal.Decimal `json:"impostoInformado"`
}

// TributosAtuaisRequest tributos del régimen actual extraídos de la NF-e.
type TributosAtuaisRequest struct {
	VICMS   decimal.Decimal `json:"vICMS"`
	VST     decimal.Decimal `json:"vST"`
	VIPI    decimal.Decimal `json:"vIPI"`
	VPIS    decimal.Decimal `json:"vPIS"`
	VCOFINS decimal.Decimal `json:"vCOFINS"`
	VISS    decimal.Decimal `json:"vISS"`
}

// ToInput convierte el request en la entrada del dominio.
func (r *CalculationRequest) ToInput() *entity.CalculationInput {
	in := &entity.CalculationInput{
		Document: entity.FiscalDocument{
			ID:           r.ID,
			Version:      r.Versao,
			Municipality: r.Municipio,
			UF:           r.UF,
			Items:        make([]entity.FiscalItem, 0, len(r.Itens)),
		},
		VTotTrib: r.VTotTrib,
	}
	for _, it := range r.Itens {
		item := entity.FiscalItem{
			Number:      it.Numero,
			NCM:         it.NCM,
			NBS:         it.NBS,
			Quantity:    it.Quantidade,
			Unit:        it.Unidade,
			CST:         it.CST,
			CClassTrib:  it.CClassTrib,
			BaseCalculo: it.BaseCalculo,
			Description: it.Descricao,
		}
		if it.TributacaoRegular != nil {
			item.Regular = &entity.RegularTaxation{CST: it.TributacaoRegular.CST, CClassTrib: it.TributacaoRegular.CClassTrib}
		}
		if s := it.ImpostoSeletivo; s != nil {
			item.Selective = &entity.SelectiveTax{
				CST:         s.CST,
				CClassTrib:  s.CClassTrib,
				BaseCalculo: s.BaseCalculo,
				Unit:        s.Unidade,
				Quantity:    s.Quantidade,
				InformedTax: s.ImpostoInformado,
			}
		}
		in.Document.Items = append(in.Document.Items, item)
	}
	if t := r.TributosAtuais; t != nil {
		in.Legacy = entity.LegacyTaxes{
			ICMS: t.VICMS, ST: t.VST, IPI: t.VIPI, PIS: t.VPIS, COFINS: t.VCOFINS, ISS: t.VISS,
		}
	}
	return in
}

// FromInput arma el request a partir de una entrada del dominio (ej. NF-e importada).
func FromInput(in *entity.CalculationInput) CalculationRequest {
	r := CalculationRequest{
		ID:        in.Document.ID,
		Versao:    in.Document.Version,
		Municipio: in.Document.Municipality,
		UF:        in.Document.UF,
		Itens:     make([]ItemRequest, 0, len(in.Document.Items)),
		TributosAtuais: &TributosAtuaisRequest{
			VICMS:   in.Legacy.ICMS,
			VST:     in.Legacy.ST,
			VIPI:    in.Legacy.IPI,
			VPIS:    in.Legacy.PIS,
			VCOFINS: in.Legacy.COFINS,
			VISS:    in.Legacy.ISS,
		},
		VTotTrib: in.VTotTrib,
	}
	for _, it := range in.Document.Items {
		item := ItemRequest{
			Numero:      it.Number,
			NCM:         it.NCM,
			NBS:         it.NBS,
			Quantidade:  it.Quantity,
			Unidade:     it.Unit,
			CST:         it.CST,
			BaseCalculo: it.BaseCalculo,
			CClassTrib:  it.CClassTrib,
			Descricao:   it.Description,
		}
		if it.Regular != nil {
			item.TributacaoRegular = &TributacaoRegularRequest{CST: it.Regular.CST, CClassTrib: it.Regular.CClassTrib}
		}
		if s := it.Selective; s != nil {
			item.ImpostoSeletivo = &ImpostoSeletivoRequest{
				CST: s.CST, BaseCalculo: s.BaseCalculo, CClassTrib: s.CClassTrib,
				Unidade: s.Unit, Quantidade: s.Quantity, ImpostoInformado: s.InformedTax,
			}
		}
		r.Itens = append(r.Itens, item)
	}
	return r
}

// ── Response ─────────────────────────────────────────────────────────────────

// ProjectionResponse proyección 2026-2033. Los montos van redondeados a 2 decimales
// (el núcleo calcula sin redondear).
type ProjectionResponse struct {
	ID          string         `json:"id"`
	GeneratedAt string         `json:"generated_at"`
	Method      string         `json:"method"` // instantanea | rtc
	Source      string         `json:"source"` // online | local
	Years       []YearResponse `json:"years"`
}

// YearResponse resultado de un año.
type YearResponse struct {
	Year             int                    `json:"year"`
	Phase            string                 `json:"phase"`
	Description      string                 `json:"description"`
	Source           string                 `json:"source"` // api | simulado | api-rtc
	SelectiveApplies bool                   `json:"selective_applies"`
	BaseCalculo      decimal.Decimal        `json:"base_calculo"`
	Lines            []TaxLineResponse      `json:"lines"`
	NewRegimeTotal   decimal.Decimal        `json:"new_regime_total"`
	SelectiveTotal   decimal.Decimal        `json:"selective_total"`
	LegacyTotal      decimal.Decimal        `json:"legacy_total"`
	Total            decimal.Decimal        `json:"total"`
	CBSRate          decimal.Decimal        `json:"cbs_rate"` // % efectivo sobre base_calculo
	IBSRate          decimal.Decimal        `json:"ibs_rate"`
	Items            []ItemTaxResponse      `json:"items"`
	Reconciliation   ReconciliationResponse `json:"reconciliation"`

	ClassificationCodes []string `json:"classification_codes"`
}

// TaxLineResponse línea de tributo.
type TaxLineResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ItemTaxResponse desglose por ítem.
type ItemTaxResponse struct {
	Number                int              `json:"number"`
	NCM                   string           `json:"ncm"`
	Description           string           `json:"description,omitempty"`
	BaseCalculo           decimal.Decimal  `json:"base_calculo"`
	CBS                   decimal.Decimal  `json:"cbs"`
	IBS                   decimal.Decimal  `json:"ibs"`
	IS                    decimal.Decimal  `json:"is"`
	Total                 decimal.Decimal  `json:"total"`
	CBSRate               decimal.Decimal  `json:"cbs_rate"`
	IBSRate               decimal.Decimal  `json:"ibs_rate"`
	SelectiveCategory     string           `json:"selective_category,omitempty"`
	SelectiveCategoryRate *decimal.Decimal `json:"selective_category_rate,omitempty"`
}

// ReconciliationResponse resultado de conciliar el legado con vTotTrib.
type ReconciliationResponse struct {
	Applied  bool            `json:"applied"`
	Residual decimal.Decimal `json:"residual"`
}

const moneyPlaces = 2

// NewProjectionResponse mapea el reporte redondeando solo en este punto.
func NewProjectionResponse(report *entity.ProjectionReport, id string, generatedAt time.Time) ProjectionResponse {
	resp := ProjectionResponse{
		ID:          id,
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Method:      report.Method,
		Source:      report.Source,
		Years:       make([]YearResponse, 0, len(report.Years)),
	}
	for i := range report.Years {
		resp.Years = append(resp.Years, newYearResponse(&report.Years[i]))
	}
	return resp
}

func newYearResponse(y *entity.YearlyTaxResult) YearResponse {
	out := YearResponse{
		Year:             y.Year,
		Phase:            y.Phase,
		Description:      y.Description,
		Source:           y.Source,
		SelectiveApplies: y.SelectiveApplies,
		BaseCalculo:      y.BaseCalculo.Round(moneyPlaces),
		Lines:            make([]TaxLineResponse, 0, len(y.Lines)),
		NewRegimeTotal:   y.NewRegimeTotal.Round(moneyPlaces),
		SelectiveTotal:   y.SelectiveTotal.Round(moneyPlaces),
		LegacyTotal:      y.LegacyTotal.Round(moneyPlaces),
		Total:            y.Total().Round(moneyPlaces),
		CBSRate:          y.CBSRate.Round(4),
		IBSRate:          y.IBSRate.Round(4),
		Items:            make([]ItemTaxResponse, 0, len(y.Items)),
		Reconciliation: ReconciliationResponse{
			Applied:  y.Reconciliation.Applied,
			Residual: y.Reconciliation.Residual.Round(moneyPlaces),
		},
		ClassificationCodes: y.ClassificationCodes,
	}
	if out.ClassificationCodes == nil {
		out.ClassificationCodes = []string{}
	}
	for _, l := range y.Lines {
		out.Lines = append(out.Lines, TaxLineResponse{Name: l.Name, Amount: l.Amount.Round(moneyPlaces)})
	}
	for _, it := range y.Items {
		item := ItemTaxResponse{
			Number:      it.Number,
			NCM:         it.NCM,
			Description: it.Description,
			BaseCalculo: it.BaseCalculo.Round(moneyPlaces),
			CBS:         it.CBS.Round(moneyPlaces),
			IBS:         it.IBS.Round(moneyPlaces),
			IS:          it.IS.Round(moneyPlaces),
			Total:       it.Total().Round(moneyPlaces),
			CBSRate:     it.CBSRate.Round(4),
			IBSRate:     it.IBSRate.Round(4),
		}
		if it.Selective != nil {
			rate := it.Selective.Rate
			item.SelectiveCategory = it.Selective.Description
			item.SelectiveCategoryRate = &rate
		}
		out.Items = append(out.Items, item)
	}
	return out
}
