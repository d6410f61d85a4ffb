package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-rtc/internal/application/dto"
	"github.com/jhoicas/simulador-rtc/internal/domain"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/internal/infrastructure/nfe"
	apphttp "github.com/jhoicas/simulador-rtc/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProjection struct {
	err        error
	lastMethod string
	lastInput  *entity.CalculationInput
}

func (f *fakeProjection) report(method string) *entity.ProjectionReport {
	years := make([]entity.YearlyTaxResult, 0, 8)
	for y := 2026; y <= 2033; y++ {
		years = append(years, entity.YearlyTaxResult{
			Year:   y,
			Source: entity.YearSourceSimulated,
			Lines: entity.TaxLines{
				{Name: entity.TaxIBS, Amount: decimal.RequireFromString("1.005")},
				{Name: entity.TaxCBS, Amount: decimal.NewFromInt(9)},
			},
			NewRegimeTotal: decimal.RequireFromString("10.005"),
		})
	}
	return &entity.ProjectionReport{Method: method, Source: entity.SourceLocal, Years: years}
}

func (f *fakeProjection) ComputeInstant(_ context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error) {
	f.lastMethod, f.lastInput = entity.MethodInstant, in
	if f.err != nil {
		return nil, f.err
	}
	return f.report(entity.MethodInstant), nil
}

func (f *fakeProjection) ComputeOfficial(_ context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error) {
	f.lastMethod, f.lastInput = entity.MethodOfficial, in
	if f.err != nil {
		return nil, f.err
	}
	return f.report(entity.MethodOfficial), nil
}

func (f *fakeProjection) ExportPDF(_ context.Context, in *entity.CalculationInput, method string) ([]byte, string, error) {
	f.lastMethod, f.lastInput = method, in
	if f.err != nil {
		return nil, "", f.err
	}
	return []byte("%PDF-1.3 fake"), "projecao-rtc-" + method + ".pdf", nil
}

type fakeCatalog struct{}

func (fakeCatalog) Situations(_ context.Context, date string) ([]byte, error) {
	if date == "ayer" {
		return nil, fmt.Errorf("%w: fecha inválida", domain.ErrInvalidInput)
	}
	return []byte(`[{"codigo":"000"}]`), nil
}

func (fakeCatalog) Classifications(_ context.Context, cstID int, _ string) ([]byte, error) {
	return []byte(fmt.Sprintf(`[{"cst":%d}]`, cstID)), nil
}

type fixedSource string

func (s fixedSource) LastSource() string { return string(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(svc *fakeProjection) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:       "simulador-rtc-test",
		CalculatorURL: "http://calc.test",
		Projection:    svc,
		Catalog:       fakeCatalog{},
		NFe:           nfe.NewParser(),
		Sources:       fixedSource(entity.SourceOnline),
	})
	return app
}

const validBody = `{
  "id": "NFe-1", "versao": "1.0.0", "municipio": 3550308, "uf": "SP",
  "itens": [{"numero": 1, "ncm": "22030000", "quantidade": 10, "unidade": "UN",
             "cst": "000", "baseCalculo": 1000, "cClassTrib": "000001"}],
  "tributosAtuais": {"vICMS": 180},
  "vTotTrib": 200
}`

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_OK(t *testing.T) {
	svc := &fakeProjection{}
	resp := doJSON(t, buildTestApp(svc), http.MethodPost, "/api/calcular", validBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.MethodInstant, svc.lastMethod)
	require.NotNil(t, svc.lastInput)
	assert.True(t, decimal.NewFromInt(180).Equal(svc.lastInput.Legacy.ICMS))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "instantanea", body["method"])
	assert.Equal(t, "local", body["source"])
	years := body["years"].([]any)
	assert.Len(t, years, 8)
}

func TestCalculateOfficial_UsaEstrategiaOficial(t *testing.T) {
	svc := &fakeProjection{}
	resp := doJSON(t, buildTestApp(svc), http.MethodPost, "/api/calcular-rtc", validBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.MethodOfficial, svc.lastMethod)
}

func TestCalculate_ErroresDeValidacion(t *testing.T) {
	svc := &fakeProjection{}
	body := `{"municipio": 0, "uf": "XX", "itens": [], "vTotTrib": -1}`
	resp := doJSON(t, buildTestApp(svc), http.MethodPost, "/api/calcular", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", e.Code)

	fields := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"municipio", "uf", "itens", "vTotTrib"}, fields)
	assert.Nil(t, svc.lastInput, "el núcleo no debe invocarse con entrada inválida")
}

func TestCalculate_BodyInvalido(t *testing.T) {
	resp := doJSON(t, buildTestApp(&fakeProjection{}), http.MethodPost, "/api/calcular", `{"itens": `)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestCalculate_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"calculadora caída", fmt.Errorf("%w: primaria y local", domain.ErrRateServiceUnavailable), http.StatusServiceUnavailable, "CALCULATOR_UNAVAILABLE"},
		{"año inválido", fmt.Errorf("%w: 2034", domain.ErrInvalidYear), http.StatusBadRequest, "INVALID_YEAR"},
		{"interno", fmt.Errorf("algo inesperado"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, buildTestApp(&fakeProjection{err: tc.err}), http.MethodPost, "/api/calcular-rtc", validBody)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp).Code)
		})
	}
}

func TestExportPDF(t *testing.T) {
	svc := &fakeProjection{}
	resp := doJSON(t, buildTestApp(svc), http.MethodPost, "/api/projecao/pdf?metodo=rtc", validBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "projecao-rtc-rtc.pdf")
	assert.Equal(t, "rtc", svc.lastMethod)

	data, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportPDF_MetodoDesconocido(t *testing.T) {
	svc := &fakeProjection{err: fmt.Errorf("%w: \"mensual\"", domain.ErrUnsupportedMethod)}
	resp := doJSON(t, buildTestApp(svc), http.MethodPost, "/api/projecao/pdf?metodo=mensual", validBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED_METHOD", decodeError(t, resp).Code)
}

func TestImportNFe(t *testing.T) {
	xml := `<NFe><infNFe Id="NFe123">
	  <ide><cMunFG>3550308</cMunFG></ide><emit><enderEmit><UF>SP</UF></enderEmit></emit>
	  <det nItem="1"><prod><NCM>22030000</NCM><uCom>UN</uCom><qCom>1</qCom><vProd>10.00</vProd></prod></det>
	  <total><ICMSTot><vICMS>1.80</vICMS><vTotTrib>3.00</vTotTrib></ICMSTot></total>
	</infNFe></NFe>`
	req := httptest.NewRequest(http.MethodPost, "/api/nfe/importar", strings.NewReader(xml))
	req.Header.Set("Content-Type", "application/xml")
	resp, err := buildTestApp(&fakeProjection{}).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.CalculationRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "123", body.ID)
	assert.Equal(t, 3550308, body.Municipio)
	require.Len(t, body.Itens, 1)
	assert.Equal(t, "000", body.Itens[0].CST)
	require.NotNil(t, body.TributosAtuais)
	assert.True(t, decimal.RequireFromString("1.8").Equal(body.TributosAtuais.VICMS))
}

func TestImportNFe_XMLInvalido(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/nfe/importar", strings.NewReader(`<CTe/>`))
	resp, err := buildTestApp(&fakeProjection{}).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_NFE", decodeError(t, resp).Code)
}

func TestCatalogos(t *testing.T) {
	app := buildTestApp(&fakeProjection{})

	resp := doJSON(t, app, http.MethodGet, "/api/situacoes-tributarias", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[{"codigo":"000"}]`, string(data))

	resp2 := doJSON(t, app, http.MethodGet, "/api/classificacoes-tributarias/200", "")
	defer resp2.Body.Close()
	data2, _ := io.ReadAll(resp2.Body)
	assert.JSONEq(t, `[{"cst":200}]`, string(data2))

	resp3 := doJSON(t, app, http.MethodGet, "/api/classificacoes-tributarias/abc", "")
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp3.StatusCode)

	resp4 := doJSON(t, app, http.MethodGet, "/api/situacoes-tributarias?data=ayer", "")
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp4.StatusCode)
}

func TestHealth(t *testing.T) {
	resp := doJSON(t, buildTestApp(&fakeProjection{}), http.MethodGet, "/health", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "online", body.LastSource)
	assert.Equal(t, "http://calc.test", body.Calculator)
}
