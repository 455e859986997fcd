package server

import (
  "encoding/json"
  "fmt"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/fairwork/contracts-backend/internal/handlers"
  "github.com/fairwork/contracts-backend/internal/logger"
  "github.com/fairwork/contracts-backend/internal/middleware"
  "github.com/fairwork/contracts-backend/internal/repos"
  "github.com/fairwork/contracts-backend/internal/services"
  "github.com/fairwork/contracts-backend/internal/types"
)

type testEnv struct {
  db     *gorm.DB
  router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
  t.Helper()
  gin.SetMode(gin.TestMode)

  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }
  sqlDB, err := db.DB()
  if err != nil {
    t.Fatalf("sql db: %v", err)
  }
  sqlDB.SetMaxOpenConns(1)
  if err := db.AutoMigrate(&types.Profile{}, &types.Contract{}, &types.Job{}); err != nil {
    t.Fatalf("automigrate: %v", err)
  }

  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger: %v", err)
  }

  profileRepo := repos.NewProfileRepo(db, log)
  contractRepo := repos.NewContractRepo(db, log)
  jobRepo := repos.NewJobRepo(db, log)
  reportRepo := repos.NewReportRepo(db, log)

  router := NewRouter(RouterConfig{
    ProfileMiddleware: middleware.NewProfileMiddleware(log, profileRepo),
    ContractHandler:   handlers.NewContractHandler(services.NewContractService(db, log, contractRepo)),
    JobHandler:        handlers.NewJobHandler(services.NewJobService(db, log, jobRepo, profileRepo)),
    BalanceHandler:    handlers.NewBalanceHandler(services.NewBalanceService(db, log, jobRepo, profileRepo, 0.25)),
    AdminHandler:      handlers.NewAdminHandler(services.NewReportService(db, log, reportRepo)),
  })

  return &testEnv{db: db, router: router}
}

func (e *testEnv) create(t *testing.T, value interface{}) {
  t.Helper()
  if err := e.db.Create(value).Error; err != nil {
    t.Fatalf("create %T: %v", value, err)
  }
}

func (e *testEnv) do(t *testing.T, method, path string, profileID string) *httptest.ResponseRecorder {
  t.Helper()
  req := httptest.NewRequest(method, path, nil)
  if profileID != "" {
    req.Header.Set("profile_id", profileID)
  }
  w := httptest.NewRecorder()
  e.router.ServeHTTP(w, req)
  return w
}

func profileFixture(profileType, profession string, balance float64) *types.Profile {
  return &types.Profile{
    ID:         uuid.New(),
    FirstName:  "Ayrton",
    LastName:   "Senna",
    Profession: profession,
    Balance:    balance,
    Type:       profileType,
  }
}

func TestMissingProfileHeaderIsUnauthorized(t *testing.T) {
  e := newTestEnv(t)

  w := e.do(t, http.MethodGet, "/contracts", "")
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("expected 401, got %d", w.Code)
  }

  w = e.do(t, http.MethodGet, "/contracts", uuid.NewString())
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("expected 401 for unknown profile, got %d", w.Code)
  }
}

func TestHealthcheckIsPublic(t *testing.T) {
  e := newTestEnv(t)
  w := e.do(t, http.MethodGet, "/healthcheck", "")
  if w.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d", w.Code)
  }
}

func TestGetContractScopedToParty(t *testing.T) {
  e := newTestEnv(t)

  client := profileFixture(types.ProfileTypeClient, "manager", 100)
  contractor := profileFixture(types.ProfileTypeContractor, "programmer", 0)
  stranger := profileFixture(types.ProfileTypeClient, "manager", 100)
  e.create(t, client)
  e.create(t, contractor)
  e.create(t, stranger)
  contract := &types.Contract{
    ID:           uuid.New(),
    Terms:        "terms",
    Status:       types.ContractStatusInProgress,
    ClientID:     client.ID,
    ContractorID: contractor.ID,
  }
  e.create(t, contract)

  w := e.do(t, http.MethodGet, "/contracts/"+contract.ID.String(), client.ID.String())
  if w.Code != http.StatusOK {
    t.Fatalf("expected 200 for party, got %d (%s)", w.Code, w.Body.String())
  }

  w = e.do(t, http.MethodGet, "/contracts/"+contract.ID.String(), stranger.ID.String())
  if w.Code != http.StatusNotFound {
    t.Fatalf("expected 404 for non-party, got %d", w.Code)
  }
  var body map[string]string
  if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
    t.Fatalf("decode error body: %v", err)
  }
  if body["error"] == "" {
    t.Fatalf("expected error message in body, got %s", w.Body.String())
  }
}

func TestPayJobEndpoint(t *testing.T) {
  e := newTestEnv(t)

  client := profileFixture(types.ProfileTypeClient, "manager", 35)
  contractor := profileFixture(types.ProfileTypeContractor, "programmer", 10)
  e.create(t, client)
  e.create(t, contractor)
  contract := &types.Contract{
    ID:           uuid.New(),
    Terms:        "terms",
    Status:       types.ContractStatusInProgress,
    ClientID:     client.ID,
    ContractorID: contractor.ID,
  }
  e.create(t, contract)
  job := &types.Job{
    ID:          uuid.New(),
    ContractID:  contract.ID,
    Description: "work",
    Price:       32,
  }
  e.create(t, job)

  w := e.do(t, http.MethodPost, "/jobs/"+job.ID.String()+"/pay", client.ID.String())
  if w.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
  }

  var gotClient types.Profile
  if err := e.db.First(&gotClient, "id = ?", client.ID).Error; err != nil {
    t.Fatalf("reload client: %v", err)
  }
  if gotClient.Balance != 3 {
    t.Fatalf("expected client balance 3, got %v", gotClient.Balance)
  }

  // Second submission: the job is already paid.
  w = e.do(t, http.MethodPost, "/jobs/"+job.ID.String()+"/pay", client.ID.String())
  if w.Code != http.StatusNotFound {
    t.Fatalf("expected 404 on repeat payment, got %d", w.Code)
  }
}

func TestPayJobInsufficientBalanceEndpoint(t *testing.T) {
  e := newTestEnv(t)

  client := profileFixture(types.ProfileTypeClient, "manager", 25.3)
  contractor := profileFixture(types.ProfileTypeContractor, "programmer", 0)
  e.create(t, client)
  e.create(t, contractor)
  contract := &types.Contract{
    ID:           uuid.New(),
    Terms:        "terms",
    Status:       types.ContractStatusInProgress,
    ClientID:     client.ID,
    ContractorID: contractor.ID,
  }
  e.create(t, contract)
  job := &types.Job{
    ID:          uuid.New(),
    ContractID:  contract.ID,
    Description: "work",
    Price:       32,
  }
  e.create(t, job)

  w := e.do(t, http.MethodPost, "/jobs/"+job.ID.String()+"/pay", client.ID.String())
  if w.Code != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
  }
}

func TestDepositEndpoint(t *testing.T) {
  e := newTestEnv(t)

  client := profileFixture(types.ProfileTypeClient, "manager", 0)
  contractor := profileFixture(types.ProfileTypeContractor, "programmer", 0)
  other := profileFixture(types.ProfileTypeClient, "manager", 0)
  e.create(t, client)
  e.create(t, contractor)
  e.create(t, other)
  contract := &types.Contract{
    ID:           uuid.New(),
    Terms:        "terms",
    Status:       types.ContractStatusInProgress,
    ClientID:     client.ID,
    ContractorID: contractor.ID,
  }
  e.create(t, contract)
  job := &types.Job{
    ID:          uuid.New(),
    ContractID:  contract.ID,
    Description: "work",
    Price:       1000,
  }
  e.create(t, job)

  path := "/balances/deposit/" + client.ID.String() + "/amount/100"
  w := e.do(t, http.MethodPost, path, client.ID.String())
  if w.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
  }

  // Depositing into someone else's balance.
  path = "/balances/deposit/" + other.ID.String() + "/amount/100"
  w = e.do(t, http.MethodPost, path, client.ID.String())
  if w.Code != http.StatusBadRequest {
    t.Fatalf("expected 400 for foreign deposit, got %d", w.Code)
  }

  // Over the 25% cap.
  path = "/balances/deposit/" + client.ID.String() + "/amount/900"
  w = e.do(t, http.MethodPost, path, client.ID.String())
  if w.Code != http.StatusBadRequest {
    t.Fatalf("expected 400 over cap, got %d", w.Code)
  }

  // Not a number.
  path = "/balances/deposit/" + client.ID.String() + "/amount/lots"
  w = e.do(t, http.MethodPost, path, client.ID.String())
  if w.Code != http.StatusBadRequest {
    t.Fatalf("expected 400 for malformed amount, got %d", w.Code)
  }
}

func TestAdminEndpoints(t *testing.T) {
  e := newTestEnv(t)

  admin := profileFixture(types.ProfileTypeClient, "manager", 0)
  client := profileFixture(types.ProfileTypeClient, "manager", 0)
  contractor := profileFixture(types.ProfileTypeContractor, "programmer", 0)
  e.create(t, admin)
  e.create(t, client)
  e.create(t, contractor)
  contract := &types.Contract{
    ID:           uuid.New(),
    Terms:        "terms",
    Status:       types.ContractStatusInProgress,
    ClientID:     client.ID,
    ContractorID: contractor.ID,
  }
  e.create(t, contract)
  paidAt := time.Date(2020, 8, 14, 12, 0, 0, 0, time.UTC)
  job := &types.Job{
    ID:          uuid.New(),
    ContractID:  contract.ID,
    Description: "work",
    Price:       121,
    Paid:        true,
    PaymentDate: &paidAt,
  }
  e.create(t, job)

  w := e.do(t, http.MethodGet, "/admin/best-profession?start=2020-08-01&end=2020-08-31", admin.ID.String())
  if w.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
  }
  var profBody map[string]string
  if err := json.Unmarshal(w.Body.Bytes(), &profBody); err != nil {
    t.Fatalf("decode best-profession: %v", err)
  }
  if profBody["bestProfession"] != "programmer" {
    t.Fatalf("expected programmer, got %s", w.Body.String())
  }

  // Empty window is a 404 for best-profession.
  w = e.do(t, http.MethodGet, "/admin/best-profession?start=2021-01-01&end=2021-01-31", admin.ID.String())
  if w.Code != http.StatusNotFound {
    t.Fatalf("expected 404 for empty window, got %d", w.Code)
  }

  // Missing parameters are a 400.
  w = e.do(t, http.MethodGet, "/admin/best-profession", admin.ID.String())
  if w.Code != http.StatusBadRequest {
    t.Fatalf("expected 400 for missing params, got %d", w.Code)
  }

  w = e.do(t, http.MethodGet, "/admin/best-clients?start=2020-08-01&end=2020-08-31", admin.ID.String())
  if w.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
  }
  var clients []map[string]interface{}
  if err := json.Unmarshal(w.Body.Bytes(), &clients); err != nil {
    t.Fatalf("decode best-clients: %v", err)
  }
  if len(clients) != 1 {
    t.Fatalf("expected 1 client, got %d", len(clients))
  }
  if clients[0]["fullName"] != "Ayrton Senna" {
    t.Fatalf("unexpected fullName %v", clients[0]["fullName"])
  }
}
