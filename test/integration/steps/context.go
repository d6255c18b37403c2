// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-finance/backend/config"
	"github.com/household-finance/backend/internal/application/usecase/asset"
	"github.com/household-finance/backend/internal/application/usecase/category"
	"github.com/household-finance/backend/internal/application/usecase/paymentmethod"
	"github.com/household-finance/backend/internal/application/usecase/report"
	"github.com/household-finance/backend/internal/application/usecase/summary"
	"github.com/household-finance/backend/internal/application/usecase/transaction"
	"github.com/household-finance/backend/internal/application/usecase/user"
	"github.com/household-finance/backend/internal/domain/entity"
	"github.com/household-finance/backend/internal/infra/server/router"
	"github.com/household-finance/backend/internal/integration/entrypoint/controller"
	"github.com/household-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/household-finance/backend/internal/integration/persistence"
	"github.com/household-finance/backend/internal/integration/persistence/model"
	"github.com/household-finance/backend/test/integration/mock"
)

const dateLayout = "2006-01-02"

type testContext struct {
	uri      string
	client   *http.Client
	response *response
	db       *mock.Db

	currentUserID          uuid.UUID
	currentCategoryID      uuid.UUID
	currentPaymentMethodID uuid.UUID
	lastTransactionID      uuid.UUID
	lastGroupID            uuid.UUID
}

type response struct {
	status  int
	body    any
	raw     string
	headers http.Header
}

var serverInit sync.Once
var portInit sync.Once
var testDB *mock.Db
var testServerPort int

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":           &model.UserModel{},
			"categories":      &model.CategoryModel{},
			"payment_methods": &model.PaymentMethodModel{},
			"assets":          &model.AssetModel{},
			"transactions":    &model.TransactionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^a user exists with name "([^"]*)"$`, test.aUserExistsWithName)
	ctx.Given(`^a user exists with name "([^"]*)" and color "([^"]*)"$`, test.aUserExistsWithNameAndColor)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a payment method exists with name "([^"]*)"$`, test.aPaymentMethodExistsWithName)
	ctx.Given(`^a transaction exists with description "([^"]*)", amount "([^"]*)", type "([^"]*)" and date "([^"]*)"$`, test.aTransactionExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should have (\d+) items$`, test.theResponseShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.response = nil
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentPaymentMethodID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.lastGroupID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()

			userRepo := persistence.NewUserRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			paymentMethodRepo := persistence.NewPaymentMethodRepository(testDB.DbConn)
			assetRepo := persistence.NewAssetRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)

			userController := controller.NewUserController(
				user.NewCreateUserUseCase(userRepo),
				user.NewListUsersUseCase(userRepo),
				user.NewUpdateUserUseCase(userRepo),
				user.NewDeactivateUserUseCase(userRepo),
			)
			categoryController := controller.NewCategoryController(
				category.NewCreateCategoryUseCase(categoryRepo),
				category.NewListCategoriesUseCase(categoryRepo),
				category.NewUpdateCategoryUseCase(categoryRepo),
				category.NewDeactivateCategoryUseCase(categoryRepo),
			)
			paymentMethodController := controller.NewPaymentMethodController(
				paymentmethod.NewListPaymentMethodsUseCase(paymentMethodRepo))
			assetController := controller.NewAssetController(
				asset.NewListAssetsUseCase(assetRepo))
			transactionController := controller.NewTransactionController(
				transaction.NewCreateTransactionUseCase(transactionRepo),
				transaction.NewListTransactionsUseCase(transactionRepo),
				transaction.NewUpdateTransactionUseCase(transactionRepo),
				transaction.NewDeleteTransactionUseCase(transactionRepo),
				transaction.NewDeleteInstallmentGroupUseCase(transactionRepo),
			)
			summaryController := controller.NewSummaryController(
				summary.NewGetSummaryUseCase(transactionRepo))
			reportController := controller.NewReportController(
				report.NewGetOverviewUseCase(transactionRepo),
				report.NewGetTrendsUseCase(transactionRepo),
				report.NewGetEvolutionUseCase(transactionRepo),
				report.NewGetProjectionUseCase(transactionRepo),
				report.NewGetInvestmentsUseCase(transactionRepo),
				report.NewGetBudgetsUseCase(transactionRepo, cfg.Budget.Limits),
			)
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			writeRateLimiter := middleware.NewRateLimiter(
				mock.NewRedis(), cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)

			r := router.NewRouter(
				healthController,
				userController,
				categoryController,
				paymentMethodController,
				assetController,
				transactionController,
				summaryController,
				reportController,
				writeRateLimiter,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithName(name string) error {
	return t.aUserExistsWithNameAndColor(name, entity.DefaultUserColor)
}

func (t *testContext) aUserExistsWithNameAndColor(name, color string) error {
	userEntity := entity.NewUser(name, color)
	t.currentUserID = userEntity.ID
	return t.db.DbConn.Create(model.UserFromEntity(userEntity)).Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryEntity := entity.NewCategory(name, entity.CategoryType(categoryType), "")
	t.currentCategoryID = categoryEntity.ID
	return t.db.DbConn.Create(model.CategoryFromEntity(categoryEntity)).Error
}

func (t *testContext) aPaymentMethodExistsWithName(name string) error {
	methodEntity := entity.NewPaymentMethod(name)
	t.currentPaymentMethodID = methodEntity.ID
	return t.db.DbConn.Create(model.PaymentMethodFromEntity(methodEntity)).Error
}

func (t *testContext) aTransactionExists(description, amount, transactionType, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	transactionEntity := entity.NewTransaction(
		description,
		value,
		entity.TransactionType(transactionType),
		parsedDate,
		t.currentUserID,
		t.currentCategoryID,
		t.currentPaymentMethodID,
	)
	t.lastTransactionID = transactionEntity.ID
	return t.db.DbConn.Create(model.TransactionFromEntity(transactionEntity)).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{payment_method_id}}", t.currentPaymentMethodID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{group_id}}", t.lastGroupID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		raw:     string(bodyBytes),
		headers: resp.Header,
	}

	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = parsed

	// Capture ids so later steps can reference the created resource.
	if object, ok := parsed.(map[string]any); ok {
		if idStr, ok := object["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastTransactionID = id
			}
		}
		if groupStr, ok := object["installment_group_id"].(string); ok {
			if id, err := uuid.Parse(groupStr); err == nil {
				t.lastGroupID = id
			}
		}
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)",
			expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	}
	return fmt.Errorf("response is not JSON: %v", t.response.body)
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("response does not contain field %q: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := t.response.headers.Get(header)
	if !strings.Contains(value, expected) {
		return fmt.Errorf("header %q expected to contain %q, got %q", header, expected, value)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(t.response.raw, expected) {
		return fmt.Errorf("response body does not contain %q: %s", expected, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldHaveItems(quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	items, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not an array: %v", t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items, got %d", quantity, len(items))
	}
	return nil
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
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(slicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d",
			quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	fields := strings.Split(dotSeparatedField, ".")
	field := object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if index, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || index >= len(arr) {
				return nil
			}
			field = arr[index]
			continue
		}

		objectMap, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = objectMap[currentField]
	}

	return field
}
