// Package calculadora implementa el acceso HTTP a la Calculadora RTC oficial
// (Receita Federal / SEFAZ) con respaldo en una instancia local.
package calculadora

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/jhoicas/simulador-rtc/internal/application/catalog"
	"github.com/jhoicas/simulador-rtc/internal/application/projection"
	"github.com/jhoicas/simulador-rtc/internal/domain"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ projection.RateGateway  = (*Client)(nil)
	_ catalog.CatalogGateway = (*Client)(nil)
)

const (
	// OnlineURL API oficial.
	OnlineURL = "https://consumo.tributos.gov.br/servico/calcular-tributos-consumo"
	// LocalURL instancia local de la calculadora (respaldo).
	LocalURL = "http://localhost:8080"

	DefaultTimeout = 10 * time.Second

	regimeGeralPath     = "/api/calculadora/regime-geral"
	situacoesPath       = "/api/calculadora/dados-abertos/situacoes-tributarias/cbs-ibs"
	classificacoesPath  = "/api/calculadora/dados-abertos/classificacoes-tributarias/"
	maxResponseBytes    = 4 << 20
	catalogueDateLayout = "2006-01-02"
)

// Config endpoints y timeout por intento.
type Config struct {
	PrimaryEndpoint  string
	FallbackEndpoint string
	Timeout          time.Duration
	Logger           *zerolog.Logger // nil = sin logs
}

// Client adaptador HTTP de la calculadora. Seguro para uso concurrente:
// el único estado mutable es la etiqueta de la última fuente que respondió.
type Client struct {
	endpoints  []endpoint
	timeout    time.Duration
	httpClient *http.Client
	lastSource atomic.Value // string
	log        zerolog.Logger
}

type endpoint struct {
	baseURL string
	label   string
}

// NewClient construye el cliente. Si primario y respaldo coinciden, se hace un solo intento.
func NewClient(cfg Config) *Client {
	primary := strings.TrimRight(cfg.PrimaryEndpoint, "/")
	fallback := strings.TrimRight(cfg.FallbackEndpoint, "/")
	if primary == "" {
		primary = OnlineURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		endpoints:  []endpoint{{baseURL: primary, label: labelFor(primary)}},
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
	if cfg.Logger != nil {
		c.log = *cfg.Logger
	}
	if fallback != "" && fallback != primary {
		c.endpoints = append(c.endpoints, endpoint{baseURL: fallback, label: entity.SourceLocal})
	}
	c.lastSource.Store("")
	return c
}

// labelFor el primario es "online" salvo que apunte a la instancia local.
func labelFor(baseURL string) string {
	if strings.Contains(baseURL, "localhost") || strings.Contains(baseURL, "127.0.0.1") {
		return entity.SourceLocal
	}
	return entity.SourceOnline
}

// LastSource etiqueta ("online" | "local") del último endpoint que respondió; "" si aún no hubo éxito.
func (c *Client) LastSource() string {
	s, _ := c.lastSource.Load().(string)
	return s
}

// FetchOfficialRates calcula IBS/CBS/IS del documento para la fecha de referencia.
func (c *Client) FetchOfficialRates(ctx context.Context, referenceDate time.Time, doc *entity.FiscalDocument) (*entity.OfficialRates, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: documento nulo", domain.ErrInvalidInput)
	}
	body, err := json.Marshal(toRequest(doc, referenceDate.Format(emissionLayout)))
	if err != nil {
		return nil, fmt.Errorf("calculadora: serializar request: %w", err)
	}

	var resp regimeGeralResponse
	label, err := c.do(ctx, http.MethodPost, regimeGeralPath, body, func(raw []byte) error {
		resp = regimeGeralResponse{}
		if err := json.Unmarshal(raw, &resp); err != nil {
			return fmt.Errorf("deserializar respuesta: %w", err)
		}
		if len(resp.Objetos) == 0 && len(doc.Items) > 0 {
			return errors.New("respuesta sin objetos")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rates := &entity.OfficialRates{
		ReferenceDate: referenceDate,
		Source:        label,
		Objects:       make([]entity.OfficialObject, 0, len(resp.Objetos)),
	}
	for _, o := range resp.Objetos {
		rates.Objects = append(rates.Objects, o.toEntity())
	}
	return rates, nil
}

// TaxSituations lista de CST de IBS/CBS vigentes en la fecha (JSON de la API tal cual).
func (c *Client) TaxSituations(ctx context.Context, date time.Time) ([]byte, error) {
	path := situacoesPath + "?data=" + url.QueryEscape(date.Format(catalogueDateLayout))
	return c.getJSON(ctx, path)
}

// TaxClassifications cClassTrib del CST indicado vigentes en la fecha.
func (c *Client) TaxClassifications(ctx context.Context, cstID int, date time.Time) ([]byte, error) {
	path := fmt.Sprintf("%s%d?data=%s", classificacoesPath, cstID, url.QueryEscape(date.Format(catalogueDateLayout)))
	return c.getJSON(ctx, path)
}

func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	var out []byte
	_, err := c.do(ctx, http.MethodGet, path, nil, func(raw []byte) error {
		if !json.Valid(raw) {
			return errors.New("respuesta no es JSON válido")
		}
		out = raw
		return nil
	})
	return out, err
}

// do intenta cada endpoint en orden (primario → respaldo). Un intento falla por error
// de conexión, timeout, status no-2xx o cuerpo que decode no acepta. Devuelve la
// etiqueta del endpoint que respondió o ErrRateServiceUnavailable con todas las causas.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body []byte,
	decode func(raw []byte) error,
) (string, error) {
	causes := make([]error, 0, len(c.endpoints))
	for i, ep := range c.endpoints {
		raw, err := c.attempt(ctx, method, ep.baseURL+path, body)
		if err == nil {
			err = decode(raw)
		}
		if err != nil {
			causes = append(causes, fmt.Errorf("%s (%s): %w", ep.label, ep.baseURL, err))
			if ctx.Err() != nil {
				break
			}
			if i+1 < len(c.endpoints) {
				c.log.Warn().Err(err).
					Str("fuente", ep.label).
					Str("ruta", path).
					Msg("calculadora primaria falló, usando respaldo")
			}
			continue
		}
		c.lastSource.Store(ep.label)
		return ep.label, nil
	}
	return "", errors.Join(append([]error{domain.ErrRateServiceUnavailable}, causes...)...)
}

func (c *Client) attempt(ctx context.Context, method, target string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}
	return raw, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
