// Package rtc contiene las validaciones de frontera de una simulación antes de
// entrar al núcleo de proyección. Usa los catálogos y reglas de formato de pkg/rtc.
package rtc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/pkg/rtc"
)

// FieldError error de un campo concreto (ruta estilo JSON, ej: "itens[0].ncm").
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrupa todos los errores de campo detectados.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", domain.ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// ValidateCalculationInput valida el documento, los tributos legados y vTotTrib.
// Devuelve *ValidationError con todos los campos inválidos, o nil.
func ValidateCalculationInput(in *entity.CalculationInput) error {
	if in == nil {
		return &ValidationError{Fields: []FieldError{{Field: "input", Message: "entrada nula"}}}
	}
	v := &ValidationError{}
	doc := in.Document

	if doc.Municipality <= 0 {
		v.add("municipio", "código IBGE del municipio requerido")
	}
	if !rtc.ValidUFs[strings.ToUpper(doc.UF)] {
		v.add("uf", "UF desconocida: %q", doc.UF)
	}
	if len(doc.Items) == 0 {
		v.add("itens", "el documento debe tener al menos un ítem")
	}

	for i, it := range doc.Items {
		p := fmt.Sprintf("itens[%d]", i)
		if !rtc.ValidNCM(it.NCM) {
			v.add(p+".ncm", "NCM debe tener 8 dígitos: %q", it.NCM)
		}
		if !rtc.ValidCST(it.CST) {
			v.add(p+".cst", "CST debe tener 3 dígitos: %q", it.CST)
		}
		if !rtc.ValidCClassTrib(it.CClassTrib) {
			v.add(p+".cClassTrib", "cClassTrib debe tener 6 dígitos: %q", it.CClassTrib)
		}
		if !it.Quantity.IsPositive() {
			v.add(p+".quantidade", "la cantidad debe ser mayor que cero")
		}
		if strings.TrimSpace(it.Unit) == "" {
			v.add(p+".unidade", "unidad requerida")
		}
		if it.BaseCalculo.IsNegative() {
			v.add(p+".baseCalculo", "no puede ser negativa")
		}
		if it.Regular != nil {
			if !rtc.ValidCST(it.Regular.CST) {
				v.add(p+".tributacaoRegular.cst", "CST debe tener 3 dígitos: %q", it.Regular.CST)
			}
			if !rtc.ValidCClassTrib(it.Regular.CClassTrib) {
				v.add(p+".tributacaoRegular.cClassTrib", "cClassTrib debe tener 6 dígitos: %q", it.Regular.CClassTrib)
			}
		}
		if s := it.Selective; s != nil {
			if !rtc.ValidCST(s.CST) {
				v.add(p+".impostoSeletivo.cst", "CST debe tener 3 dígitos: %q", s.CST)
			}
			if !rtc.ValidCClassTrib(s.CClassTrib) {
				v.add(p+".impostoSeletivo.cClassTrib", "cClassTrib debe tener 6 dígitos: %q", s.CClassTrib)
			}
			if s.BaseCalculo.IsNegative() {
				v.add(p+".impostoSeletivo.baseCalculo", "no puede ser negativa")
			}
			if s.InformedTax.IsNegative() {
				v.add(p+".impostoSeletivo.impostoInformado", "no puede ser negativo")
			}
		}
	}

	nonNegative(v, "tributosAtuais.vICMS", in.Legacy.ICMS)
	nonNegative(v, "tributosAtuais.vST", in.Legacy.ST)
	nonNegative(v, "tributosAtuais.vIPI", in.Legacy.IPI)
	nonNegative(v, "tributosAtuais.vPIS", in.Legacy.PIS)
	nonNegative(v, "tributosAtuais.vCOFINS", in.Legacy.COFINS)
	nonNegative(v, "tributosAtuais.vISS", in.Legacy.ISS)
	nonNegative(v, "vTotTrib", in.VTotTrib)

	if len(v.Fields) > 0 {
		return v
	}
	return nil
}

func nonNegative(v *ValidationError, field string, d decimal.Decimal) {
	if d.IsNegative() {
		v.add(field, "no puede ser negativo")
	}
}
