package reconcile_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/internal/domain/reconcile"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// legacy100 líneas explícitas que suman 100.
func legacy100() entity.TaxLines {
	return reconcile.LegacyLines(entity.LegacyTaxes{
		ICMS:   dec("60"),
		ST:     dec("10"),
		IPI:    dec("5"),
		PIS:    dec("4.5"),
		COFINS: dec("20.5"),
	})
}

// Escenario A: vTotTrib 120, legado explícito 100 → residuo 20, legado total 120.
func TestReconcile_ResiduoPositivo(t *testing.T) {
	lines, outcome := reconcile.Reconcile(legacy100(), dec("120"))

	require.True(t, outcome.Applied, "con residuo positivo se debe conciliar")
	assert.True(t, dec("20").Equal(outcome.Residual))
	assert.True(t, dec("20").Equal(lines.Amount(entity.TaxImplicit)), "línea residual = 20")
	assert.True(t, dec("120").Equal(lines.LegacySum()), "legado total = vTotTrib")

	// El bucket queda tras ICMS-ST.
	require.Len(t, lines, 7)
	assert.Equal(t, entity.TaxICMSST, lines[1].Name)
	assert.Equal(t, entity.TaxImplicit, lines[2].Name)
}

// Escenario B: vTotTrib 80 < legado 100 → sin cambios.
func TestReconcile_ResiduoNegativo_NoOp(t *testing.T) {
	input := legacy100()
	lines, outcome := reconcile.Reconcile(input, dec("80"))

	assert.False(t, outcome.Applied, "ReconciliationSkipped: no se corrige a la baja")
	assert.True(t, dec("-20").Equal(outcome.Residual))
	assert.Equal(t, input, lines, "las líneas deben quedar intactas")
	assert.True(t, dec("100").Equal(lines.LegacySum()))
	assert.False(t, lines.Has(entity.TaxImplicit))
}

func TestReconcile_IgualAVTotTrib_NoOp(t *testing.T) {
	lines, outcome := reconcile.Reconcile(legacy100(), dec("100"))
	assert.False(t, outcome.Applied)
	assert.True(t, outcome.Residual.IsZero())
	assert.True(t, dec("100").Equal(lines.LegacySum()))
}

// Ruido menor a medio centavo no se atribuye.
func TestReconcile_DentroDeEpsilon(t *testing.T) {
	_, outcome := reconcile.Reconcile(legacy100(), dec("100.004"))
	assert.False(t, outcome.Applied)

	lines, outcome := reconcile.Reconcile(legacy100(), dec("100.01"))
	assert.True(t, outcome.Applied, "un centavo sí se atribuye")
	assert.True(t, dec("100.01").Equal(lines.LegacySum()))
}

// Propiedad: con vTotTrib >= legado, Σ(legado conciliado) == vTotTrib (tolerancia 0,01).
func TestReconcile_PropiedadSumaIgualVTotTrib(t *testing.T) {
	cases := []string{"100", "100.01", "101.37", "150", "999.99", "12345.678"}
	for _, v := range cases {
		lines, _ := reconcile.Reconcile(legacy100(), dec(v))
		diff := lines.LegacySum().Sub(dec(v)).Abs()
		assert.True(t, diff.LessThanOrEqual(dec("0.01")), "vTotTrib %s: suma %s", v, lines.LegacySum())
	}
}

// Propiedad: con vTotTrib < legado, la conciliación es no-op.
func TestReconcile_PropiedadNoOpSiMenor(t *testing.T) {
	for _, v := range []string{"0", "1", "50", "99.99"} {
		input := legacy100()
		lines, outcome := reconcile.Reconcile(input, dec(v))
		assert.False(t, outcome.Applied, "vTotTrib %s", v)
		assert.Equal(t, input, lines)
	}
}

// No muta el slice de entrada y conserva líneas del régimen nuevo.
func TestReconcile_NoMutaEntradaYConservaIBSCBS(t *testing.T) {
	input := append(entity.TaxLines{
		{Name: entity.TaxIBS, Amount: dec("1")},
		{Name: entity.TaxCBS, Amount: dec("9")},
	}, legacy100()...)
	snapshot := input.Clone()

	lines, outcome := reconcile.Reconcile(input, dec("130"))
	require.True(t, outcome.Applied)

	assert.Equal(t, snapshot, input, "la entrada no se modifica")
	assert.True(t, dec("1").Equal(lines.Amount(entity.TaxIBS)))
	assert.True(t, dec("9").Equal(lines.Amount(entity.TaxCBS)))
	assert.True(t, dec("130").Equal(lines.LegacySum()), "IBS/CBS no cuentan como legado")
}

// Un bucket implícito existente se incrementa en lugar de duplicarse.
func TestReconcile_BucketExistente(t *testing.T) {
	first, _ := reconcile.Reconcile(legacy100(), dec("110"))
	second, outcome := reconcile.Reconcile(first, dec("125"))

	require.True(t, outcome.Applied)
	assert.True(t, dec("25").Equal(second.Amount(entity.TaxImplicit)))
	assert.Len(t, second, len(first))
}

// Documentos sin tributos explícitos (ej. NFC-e de Simples Nacional) también se concilian.
func TestReconcile_SinLineasExplicitas(t *testing.T) {
	lines, outcome := reconcile.Reconcile(nil, dec("37.5"))
	require.True(t, outcome.Applied)
	require.Len(t, lines, 1)
	assert.Equal(t, entity.TaxImplicit, lines[0].Name)
	assert.True(t, dec("37.5").Equal(lines.LegacySum()))
}
