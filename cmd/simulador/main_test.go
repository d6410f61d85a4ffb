package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-rtc/internal/domain"
)

const calcResponse = `{"objetos": [{"nObj": 1, "tribCalc": {"IBSCBS": {"CST": "000", "cClassTrib": "000001",
  "gIBSCBS": {"vBC": 1000, "vIBS": 1, "gIBSUF": {"pIBSUF": 0.1}, "gIBSMun": {"pIBSMun": 0},
  "gCBS": {"pCBS": 0.9, "vCBS": 9}}}}}]}`

const inputJSON = `{
  "id": "NFe-CLI", "versao": "1.0.0", "municipio": 3550308, "uf": "SP",
  "itens": [{"numero": 1, "ncm": "84713012", "quantidade": 1, "unidade": "UN",
             "cst": "000", "baseCalculo": 1000, "cClassTrib": "000001"}],
  "tributosAtuais": {"vICMS": 180, "vPIS": 16.5, "vCOFINS": 76},
  "vTotTrib": 300
}`

func calculator(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(calcResponse))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestInstantanea_Tabla(t *testing.T) {
	var hits int32
	srv := calculator(t, &hits)
	file := writeFile(t, "nota.json", inputJSON)
	pdfPath := filepath.Join(t.TempDir(), "saida.pdf")

	out, err := execute(t, "instantanea", "--arquivo", file, "--url", srv.URL, "--local-url", srv.URL, "--pdf", pdfPath)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "una sola consulta en modo instantáneo")
	assert.Contains(t, out, "Método: instantanea")
	assert.Contains(t, out, "2026")
	assert.Contains(t, out, "2033")
	assert.Contains(t, out, "9.00", "CBS 2026 de la calculadora")
	assert.Contains(t, out, "simulado")
	assert.Contains(t, out, "ST implícito", "vTotTrib 300 > 272,50 destacados")
	assert.Equal(t, 7, strings.Count(out, "simulado"), "2027-2033 extrapolados")

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRTC_OchoConsultas(t *testing.T) {
	var hits int32
	srv := calculator(t, &hits)
	file := writeFile(t, "nota.json", inputJSON)

	out, err := execute(t, "rtc", "-a", file, "--url", srv.URL, "--local-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(8), atomic.LoadInt32(&hits))
	assert.Contains(t, out, "api-rtc")
}

func TestEntradaInvalida(t *testing.T) {
	file := writeFile(t, "nota.json", `{"municipio": 0, "uf": "SP", "itens": []}`)
	_, err := execute(t, "instantanea", "-a", file, "--url", "http://127.0.0.1:1", "--local-url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculadoraCaida(t *testing.T) {
	file := writeFile(t, "nota.json", inputJSON)
	_, err := execute(t, "instantanea", "-a", file, "--url", "http://127.0.0.1:1", "--local-url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateServiceUnavailable)
}

func TestArquivoObligatorio(t *testing.T) {
	_, err := execute(t, "instantanea")
	assert.Error(t, err)
}

func TestLoadInput_NFeXML(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?><NFe><infNFe Id="NFe9">
	  <ide><cMunFG>3304557</cMunFG></ide><emit><enderEmit><UF>RJ</UF></enderEmit></emit>
	  <det nItem="1"><prod><NCM>17019900</NCM><uCom>KG</uCom><qCom>5</qCom><vProd>20.00</vProd></prod></det>
	</infNFe></NFe>`
	in, err := loadInput(writeFile(t, "nota.xml", xml))
	require.NoError(t, err)
	assert.Equal(t, "RJ", in.Document.UF)
	assert.Equal(t, 3304557, in.Document.Municipality)
	require.Len(t, in.Document.Items, 1)
}
