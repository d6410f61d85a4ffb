package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas de la fuente que respondió la consulta a la calculadora.
const (
	SourceOnline = "online"
	SourceLocal  = "local"
)

// OfficialRates resultado normalizado de la Calculadora RTC para una fecha de referencia.
type OfficialRates struct {
	ReferenceDate time.Time
	Source        string // SourceOnline | SourceLocal
	Objects       []OfficialObject
}

// OfficialObject tributos calculados por la API para un ítem (nObj).
type OfficialObject struct {
	Number      int
	CST         string
	CClassTrib  string
	BaseCalculo decimal.Decimal // vBC
	IBS         decimal.Decimal // vIBS (UF + municipio)
	CBS         decimal.Decimal // vCBS
	CBSRate     decimal.Decimal // pCBS en %
	IBSUFRate   decimal.Decimal // pIBSUF en %
	IBSMunRate  decimal.Decimal // pIBSMun en %
	IS          decimal.Decimal // vIS
}

// Object busca el objeto con el número de ítem dado.
func (r *OfficialRates) Object(number int) (OfficialObject, bool) {
	for _, o := range r.Objects {
		if o.Number == number {
			return o, true
		}
	}
	return OfficialObject{}, false
}

// ClassificationCodes conjunto ordenado de cClassTrib aplicables devueltos por la API.
func (r *OfficialRates) ClassificationCodes() []string {
	seen := make(map[string]struct{}, len(r.Objects))
	codes := make([]string, 0, len(r.Objects))
	for _, o := range r.Objects {
		if o.CClassTrib == "" {
			continue
		}
		if _, ok := seen[o.CClassTrib]; ok {
			continue
		}
		seen[o.CClassTrib] = struct{}{}
		codes = append(codes, o.CClassTrib)
	}
	sort.Strings(codes)
	return codes
}
