package projection_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/internal/domain/transition"
)

// fakeGateway calculadora en memoria: vCBS/vIBS = (base + IS informado) × alícuota del año.
// Registra cada payload recibido por año para verificar lo enviado.
type fakeGateway struct {
	mu       sync.Mutex
	payloads map[int]entity.FiscalDocument
	calls    int

	failYears map[int]bool // años que responden ErrRateServiceUnavailable
	reportIS  bool         // si true, la API devuelve vIS = impostoInformado
	source    string
	delay     time.Duration
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		payloads:  make(map[int]entity.FiscalDocument),
		failYears: make(map[int]bool),
		source:    entity.SourceOnline,
	}
}

func (f *fakeGateway) FetchOfficialRates(ctx context.Context, ref time.Time, doc *entity.FiscalDocument) (*entity.OfficialRates, error) {
	year := ref.Year()
	f.mu.Lock()
	f.calls++
	f.payloads[year] = doc.Clone()
	fail := f.failYears[year]
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if fail {
		return nil, fmt.Errorf("%w: primaria y local sin respuesta", domain.ErrRateServiceUnavailable)
	}

	schedule, err := transition.ScheduleFor(year)
	if err != nil {
		return nil, err
	}
	hundred := decimal.NewFromInt(100)
	half := schedule.IBSRate.Div(decimal.NewFromInt(2))

	rates := &entity.OfficialRates{ReferenceDate: ref, Source: f.source}
	for _, it := range doc.Items {
		vbc := it.BaseCalculo
		is := decimal.Zero
		if it.Selective != nil {
			vbc = vbc.Add(it.Selective.InformedTax)
			if f.reportIS {
				is = it.Selective.InformedTax
			}
		}
		rates.Objects = append(rates.Objects, entity.OfficialObject{
			Number:      it.Number,
			CST:         it.CST,
			CClassTrib:  it.CClassTrib,
			BaseCalculo: vbc,
			CBS:         vbc.Mul(schedule.CBSRate),
			IBS:         vbc.Mul(schedule.IBSRate),
			CBSRate:     schedule.CBSRate.Mul(hundred),
			IBSUFRate:   half.Mul(hundred),
			IBSMunRate:  half.Mul(hundred),
			IS:          is,
		})
	}
	return rates, nil
}

func (f *fakeGateway) payload(year int) (entity.FiscalDocument, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payloads[year]
	return p, ok
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// sampleInput dos ítems: cerveza con grupo IS (base 1000) y computador sin grupo (base 500).
// Desde 2027 ambos llevan IS sobre su valor.
// Legado explícito suma 100; vTotTrib 120 (escenario A).
func sampleInput() *entity.CalculationInput {
	return &entity.CalculationInput{
		Document: entity.FiscalDocument{
			ID:           "NFe-TESTE",
			Municipality: 3550308,
			UF:           "sp",
			Items: []entity.FiscalItem{
				{
					Number: 7, NCM: "2203.00.00", Quantity: dec("10"), Unit: "UN",
					CST: "000", CClassTrib: "000001", BaseCalculo: dec("1000"), Description: "Cerveja",
					Selective: &entity.SelectiveTax{CST: "000", CClassTrib: "000001"},
				},
				{
					Number: 9, NCM: "84713012", Quantity: dec("1"), Unit: "UN",
					CST: "000", CClassTrib: "000001", BaseCalculo: dec("500"), Description: "Notebook",
				},
			},
		},
		Legacy: entity.LegacyTaxes{
			ICMS: dec("60"), ST: dec("10"), IPI: dec("5"), PIS: dec("4.5"), COFINS: dec("20.5"),
		},
		VTotTrib: dec("120"),
	}
}
