// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/receber-inter/backend/config"
	"github.com/receber-inter/backend/internal/domain/valueobject"
	"github.com/receber-inter/backend/internal/infra/dependency"
	"github.com/receber-inter/backend/internal/integration/persistence/model"
	"github.com/receber-inter/backend/test/integration/mock"
)

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	response *response
	headers  map[string]string

	db    *mock.Db
	bank  *mock.BankService
	relay *mock.MessageRelay

	currentClientID  uint
	currentInvoiceID uint
	currentEntryID   uint
}

type response struct {
	status int
	body   any
}

var testBank = mock.NewBankService()
var testRelay *mock.MessageRelay

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		testRelay = mock.NewMessageRelay()
	})

	ctx.AfterSuite(func() {
		if testRelay != nil {
			testRelay.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		bank:   testBank,
		db: mock.NewDb(map[string]any{
			"clients":             &model.ClientModel{},
			"invoices":            &model.InvoiceModel{},
			"statement_entries":   &model.StatementEntryModel{},
			"description_aliases": &model.DescriptionAliasModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.before(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding steps
	ctx.Given(`^a client "([^"]*)" exists billing "([^"]*)" with due day (\d+)$`, test.aClientExists)
	ctx.Given(`^an issued invoice exists for "([^"]*)" of "([^"]*)" due "([^"]*)"$`, test.anIssuedInvoiceExists)
	ctx.Given(`^a description alias "([^"]*)" points to "([^"]*)"$`, test.aDescriptionAliasPointsTo)
	ctx.Given(`^an unlinked statement entry of "([^"]*)" dated "([^"]*)" described "([^"]*)" exists$`, test.anUnlinkedStatementEntryExists)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I import a statement file to "([^"]*)" with content:$`, test.iImportAStatementFile)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the raw response should contain "([^"]*)"$`, test.theRawResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// External service assertion steps
	ctx.Then(`^(\d+) messages should have been relayed$`, test.messagesShouldHaveBeenRelayed)
	ctx.Then(`^relayed message (\d+) should contain "([^"]*)"$`, test.relayedMessageShouldContain)
	ctx.Then(`^(\d+) charges should have been issued by the bank$`, test.chargesShouldHaveBeenIssued)
	ctx.Then(`^(\d+) charges should have been canceled at the bank$`, test.chargesShouldHaveBeenCanceled)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentClientID = 0
	t.currentInvoiceID = 0
	t.currentEntryID = 0

	t.bank.Reset()
	testRelay.Reset()
	t.relay = testRelay

	if err := t.db.Reset(); err != nil {
		return err
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.WhatsApp.MessageURL = t.relay.URL() + "/send/message"
	cfg.WhatsApp.PixKey = "12.345.678/0001-90"

	injector := dependency.NewInjector(cfg, t.db.DbConn, t.bank, t.db.HealthCheck)
	engine := injector.Router.Setup("test")
	t.server = httptest.NewServer(engine)

	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) aClientExists(name, amount string, dueDay int) error {
	nominal, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	now := time.Now().UTC()
	client := &model.ClientModel{
		Name:          name,
		TaxID:         "12.345.678/0001-90",
		Email:         "financeiro@example.com.br",
		AreaCode:      "11",
		Phone:         "98765-4321",
		City:          "Sao Paulo",
		State:         "SP",
		NominalAmount: nominal,
		DueDay:        dueDay,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := t.db.DbConn.Create(client).Error; err != nil {
		return err
	}
	t.currentClientID = client.ID
	return nil
}

func (t *testContext) anIssuedInvoiceExists(clientName, amount, dueDate string) error {
	clientID, err := t.findClientID(clientName)
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}

	now := time.Now().UTC()
	invoice := &model.InvoiceModel{
		ClientID:       clientID,
		ReferenceYear:  due.Year(),
		ReferenceMonth: int(due.Month()),
		DueDate:        due,
		Amount:         value,
		Status:         "issued",
		OurNumber:      "00000000001",
		DigitableLine:  "00190.00009 01234.567890 12345.678901 1 00000000000001",
		Barcode:        "0019100000000000001",
		TxID:           "txid-0001",
		RequestCode:    "req-0001",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := t.db.DbConn.Create(invoice).Error; err != nil {
		return err
	}
	t.currentInvoiceID = invoice.ID
	return nil
}

func (t *testContext) aDescriptionAliasPointsTo(aliasText, clientName string) error {
	clientID, err := t.findClientID(clientName)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	alias := &model.DescriptionAliasModel{
		DescriptionKey: valueobject.NormalizeKey(aliasText),
		ClientID:       clientID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return t.db.DbConn.Create(alias).Error
}

func (t *testContext) anUnlinkedStatementEntryExists(amount, date, description string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	key := valueobject.NormalizeKey(description)
	now := time.Now().UTC()
	entry := &model.StatementEntryModel{
		ContentHash:    valueobject.ContentHash(day, key, value),
		Date:           day,
		Description:    description,
		DescriptionKey: key,
		Amount:         value,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := t.db.DbConn.Create(entry).Error; err != nil {
		return err
	}
	t.currentEntryID = entry.ID
	return nil
}

func (t *testContext) findClientID(name string) (uint, error) {
	var client model.ClientModel
	if err := t.db.DbConn.Where("name = ?", name).First(&client).Error; err != nil {
		return 0, fmt.Errorf("client %q not found: %w", name, err)
	}
	return client.ID, nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), "", nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), "application/json", payload)
}

func (t *testContext) iImportAStatementFile(path string, content *godog.DocString) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "extrato.csv")
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(content.Content)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return t.executeRequest(http.MethodPost, t.replacePlaceholders(path), writer.FormDataContentType(), buf.Bytes())
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{client_id}}", strconv.FormatUint(uint64(t.currentClientID), 10))
	content = strings.ReplaceAll(content, "{{invoice_id}}", strconv.FormatUint(uint64(t.currentInvoiceID), 10))
	content = strings.ReplaceAll(content, "{{entry_id}}", strconv.FormatUint(uint64(t.currentEntryID), 10))
	return content
}

func (t *testContext) executeRequest(method, path, contentType string, payload []byte) error {
	url := t.server.URL + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.response.body = string(raw)
	} else {
		t.response.body = parsed
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expected, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theRawResponseShouldContain(text string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	raw, ok := t.response.body.(string)
	if !ok {
		return fmt.Errorf("response is not a raw body: %v", t.response.body)
	}
	if !strings.Contains(raw, text) {
		return fmt.Errorf("raw response does not contain %q: %q", text, raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	expected = t.replacePlaceholders(expected)
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return nil, fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return value, nil
}

// getFieldValue walks a decoded JSON document by a dot-separated path.
// Numeric path segments index into arrays.
func getFieldValue(object any, path string) any {
	current := object
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]any:
			value, ok := v[part]
			if !ok {
				return nil
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil
			}
			current = v[idx]
		default:
			return nil
		}
	}
	return current
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Model(entity)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) messagesShouldHaveBeenRelayed(quantity int) error {
	messages := t.relay.Messages()
	if len(messages) != quantity {
		return fmt.Errorf("expected %d relayed messages, got %d", quantity, len(messages))
	}
	return nil
}

func (t *testContext) relayedMessageShouldContain(index int, text string) error {
	messages := t.relay.Messages()
	if index < 1 || index > len(messages) {
		return fmt.Errorf("relayed message %d does not exist, got %d messages", index, len(messages))
	}
	if !strings.Contains(messages[index-1].Message, text) {
		return fmt.Errorf("relayed message %d does not contain %q: %q", index, text, messages[index-1].Message)
	}
	return nil
}

func (t *testContext) chargesShouldHaveBeenIssued(quantity int) error {
	if got := t.bank.IssuedCount(); got != quantity {
		return fmt.Errorf("expected %d issued charges, got %d", quantity, got)
	}
	return nil
}

func (t *testContext) chargesShouldHaveBeenCanceled(quantity int) error {
	if got := t.bank.CanceledCount(); got != quantity {
		return fmt.Errorf("expected %d canceled charges, got %d", quantity, got)
	}
	return nil
}
