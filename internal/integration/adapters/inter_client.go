// Package adapters provides implementations for external service integrations.
package adapters

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
)

const (
	scopeWrite = "boleto-cobranca.write"
	scopeRead  = "boleto-cobranca.read"

	// cancelReason is the fixed motive sent on charge cancellation.
	cancelReason = "APEDIDODOCLIENTE"

	// tokenSafety is subtracted from the token TTL so a token is never used
	// right at its expiry.
	tokenSafety = 30 * time.Second
)

// InterConfig carries the Banco Inter API credentials and endpoints.
type InterConfig struct {
	BaseURL       string
	ClientID      string
	ClientSecret  string
	AccountNumber string
	CertPath      string
	KeyPath       string
}

// InterClient implements the BankChargeService against the Banco Inter
// cobrança v3 API. All calls go over mTLS with the account certificate.
type InterClient struct {
	config     InterConfig
	httpClient *http.Client

	mu     sync.Mutex
	tokens map[string]cachedToken
}

type cachedToken struct {
	value     string
	expiresAt time.Time
}

// NewInterClient creates a new Inter API client. The certificate pair is
// loaded eagerly so misconfiguration surfaces at startup.
func NewInterClient(config InterConfig) (*InterClient, error) {
	cert, err := tls.LoadX509KeyPair(config.CertPath, config.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load inter certificate pair: %w", err)
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
	}

	return &InterClient{
		config: config,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		tokens: make(map[string]cachedToken),
	}, nil
}

// token returns a cached OAuth token for the scope, fetching a new one when
// the cached value is missing or about to expire.
func (c *InterClient) token(ctx context.Context, scope string) (string, error) {
	c.mu.Lock()
	cached, ok := c.tokens[scope]
	c.mu.Unlock()
	if ok && time.Now().Before(cached.expiresAt) {
		return cached.value, nil
	}

	form := url.Values{
		"client_id":     {c.config.ClientID},
		"client_secret": {c.config.ClientSecret},
		"grant_type":    {"client_credentials"},
		"scope":         {scope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/oauth/v2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request inter token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("inter token request returned %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode inter token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("inter token response has no access_token")
	}

	ttl := time.Duration(payload.ExpiresIn) * time.Second
	if ttl > tokenSafety {
		ttl -= tokenSafety
	}

	c.mu.Lock()
	c.tokens[scope] = cachedToken{value: payload.AccessToken, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()

	return payload.AccessToken, nil
}

// chargePayload is the cobrança v3 issuance body.
type chargePayload struct {
	SeuNumero     string       `json:"seuNumero"`
	ValorNominal  float64      `json:"valorNominal"`
	DataVenc      string       `json:"dataVencimento"`
	NumDiasAgenda int          `json:"numDiasAgenda"`
	Pagador       payerPayload `json:"pagador"`
	Multa         feePayload   `json:"multa"`
	Mora          feePayload   `json:"mora"`
	Mensagem      msgPayload   `json:"mensagem"`
	FormasReceb   []string     `json:"formasRecebimento"`
}

type payerPayload struct {
	CpfCnpj    string `json:"cpfCnpj"`
	TipoPessoa string `json:"tipoPessoa"`
	Nome       string `json:"nome"`
	Endereco   string `json:"endereco"`
	Numero     string `json:"numero"`
	Complement string `json:"complemento"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
	Email      string `json:"email"`
	DDD        string `json:"ddd"`
	Telefone   string `json:"telefone"`
}

type feePayload struct {
	Codigo string   `json:"codigo"`
	Valor  *float64 `json:"valor,omitempty"`
	Taxa   *float64 `json:"taxa,omitempty"`
}

type msgPayload struct {
	Linha1 string `json:"linha1"`
	Linha2 string `json:"linha2"`
	Linha3 string `json:"linha3"`
	Linha4 string `json:"linha4"`
	Linha5 string `json:"linha5"`
}

// IssueCharge issues a boleto for the client and returns the identifiers the
// bank assigned to it.
func (c *InterClient) IssueCharge(ctx context.Context, client *entity.Client, dueDate time.Time, amount decimal.Decimal) (*adapter.IssueChargeResult, error) {
	token, err := c.token(ctx, scopeWrite)
	if err != nil {
		return nil, err
	}

	amountValue, _ := amount.Round(2).Float64()
	lateFee := 1.08
	monthlyRate := 5.0

	payload := chargePayload{
		SeuNumero:     seuNumero(client.TaxID, dueDate),
		ValorNominal:  amountValue,
		DataVenc:      dueDate.Format("2006-01-02"),
		NumDiasAgenda: 30,
		Pagador: payerPayload{
			CpfCnpj:    onlyTaxDigits(client.TaxID),
			TipoPessoa: personType(client.TaxID),
			Nome:       client.Name,
			Endereco:   client.Street,
			Numero:     client.Number,
			Complement: client.Complement,
			Bairro:     client.District,
			Cidade:     client.City,
			UF:         client.State,
			CEP:        client.PostalCode,
			Email:      client.Email,
			DDD:        client.AreaCode,
			Telefone:   client.Phone,
		},
		Multa:       feePayload{Codigo: "VALORFIXO", Valor: &lateFee},
		Mora:        feePayload{Codigo: "TAXAMENSAL", Taxa: &monthlyRate},
		Mensagem:    msgPayload{Linha1: "Serviços contábeis."},
		FormasReceb: []string{"BOLETO", "PIX"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/cobranca/v3/cobrancas", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-conta-corrente", c.config.AccountNumber)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to issue charge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("inter charge issuance returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		NossoNumero       string `json:"nossoNumero"`
		LinhaDigitavel    string `json:"linhaDigitavel"`
		CodigoBarras      string `json:"codigoBarras"`
		TxID              string `json:"txId"`
		CodigoSolicitacao string `json:"codigoSolicitacao"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode charge response: %w", err)
	}

	txID := result.TxID
	if txID == "" {
		txID = result.CodigoSolicitacao
	}

	return &adapter.IssueChargeResult{
		OurNumber:     result.NossoNumero,
		DigitableLine: result.LinhaDigitavel,
		Barcode:       result.CodigoBarras,
		TxID:          txID,
		RequestCode:   result.CodigoSolicitacao,
	}, nil
}

// CancelCharge requests a baixa for the charge. The request code is preferred
// as identifier, falling back to the bank's nosso número.
func (c *InterClient) CancelCharge(ctx context.Context, requestCode, ourNumber string) error {
	token, err := c.token(ctx, scopeWrite)
	if err != nil {
		return err
	}

	identifier := requestCode
	if identifier == "" {
		identifier = ourNumber
	}

	body, err := json.Marshal(map[string]string{"motivoCancelamento": cancelReason})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/cobranca/v3/cobrancas/%s/cancelar", c.config.BaseURL, url.PathEscape(identifier)),
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-conta-corrente", c.config.AccountNumber)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to cancel charge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent &&
		resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("inter charge cancellation returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// FetchPDF downloads the boleto PDF. The bank may answer with raw bytes or a
// JSON envelope carrying the document base64-encoded.
func (c *InterClient) FetchPDF(ctx context.Context, requestCode, ourNumber string) ([]byte, error) {
	token, err := c.token(ctx, scopeRead)
	if err != nil {
		return nil, err
	}

	identifier := requestCode
	if identifier == "" {
		identifier = ourNumber
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/cobranca/v3/cobrancas/%s/pdf", c.config.BaseURL, url.PathEscape(identifier)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-conta-corrente", c.config.AccountNumber)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pdf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("inter pdf download returned %d: %s", resp.StatusCode, string(respBody))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		PDF string `json:"pdf"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.PDF != "" {
		decoded, err := base64.StdEncoding.DecodeString(envelope.PDF)
		if err != nil {
			return nil, fmt.Errorf("failed to decode pdf payload: %w", err)
		}
		return decoded, nil
	}

	return raw, nil
}

// seuNumero derives the merchant-side charge identifier, capped at 20 chars.
func seuNumero(taxID string, dueDate time.Time) string {
	base := onlyTaxDigits(taxID)
	if base == "" {
		base = uuid.NewString()[:8]
	}
	number := base + "-" + dueDate.Format("200601")
	if len(number) > 20 {
		number = number[:20]
	}
	return number
}

// personType classifies the payer by tax id length (CNPJ has 14 digits).
func personType(taxID string) string {
	if len(onlyTaxDigits(taxID)) > 11 {
		return "JURIDICA"
	}
	return "FISICA"
}

func onlyTaxDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var _ adapter.BankChargeService = (*InterClient)(nil)
