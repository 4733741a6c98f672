package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/verve-admin/internal/api/http"
	"github.com/spec-kit/verve-admin/internal/api/http/handlers"
	"github.com/spec-kit/verve-admin/internal/auth"
	"github.com/spec-kit/verve-admin/internal/config"
	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/observability"
	"github.com/spec-kit/verve-admin/internal/persistence"
	"github.com/spec-kit/verve-admin/internal/service"
)

type memUserRepo struct {
	users []domain.AppUser
}

func (r *memUserRepo) List(context.Context) ([]domain.AppUser, error) {
	return append([]domain.AppUser(nil), r.users...), nil
}

func (r *memUserRepo) ListByUserType(_ context.Context, userType domain.UserType) ([]domain.AppUser, error) {
	out := []domain.AppUser{}
	for _, u := range r.users {
		if u.UserType == userType {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.AppUser, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.AppUser, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memUserRepo) Insert(_ context.Context, user *domain.AppUser) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) Update(_ context.Context, id primitive.ObjectID, update domain.AppUserUpdate) error {
	for i := range r.users {
		if r.users[i].ID == id {
			if update.Name != nil {
				r.users[i].Name = *update.Name
			}
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *memUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type memReclamationRepo struct {
	recs []domain.Reclamation
}

func (r *memReclamationRepo) List(context.Context) ([]domain.Reclamation, error) {
	return append([]domain.Reclamation(nil), r.recs...), nil
}

func (r *memReclamationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Reclamation, error) {
	for i := range r.recs {
		if r.recs[i].ID == id {
			rec := r.recs[i]
			return &rec, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memReclamationRepo) UpdateTreatment(_ context.Context, id primitive.ObjectID, treatment domain.ReclamationTreatment) error {
	for i := range r.recs {
		if r.recs[i].ID == id {
			r.recs[i].SyndicComment = treatment.SyndicComment
			r.recs[i].Status = treatment.Status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *memReclamationRepo) AssignSyndic(_ context.Context, id, syndicID primitive.ObjectID) error {
	for i := range r.recs {
		if r.recs[i].ID == id {
			r.recs[i].SyndicID = &syndicID
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type memNotificationRepo struct {
	notifications []domain.AppNotification
}

func (r *memNotificationRepo) List(context.Context) ([]domain.AppNotification, error) {
	return append([]domain.AppNotification(nil), r.notifications...), nil
}

func (r *memNotificationRepo) InsertMany(_ context.Context, batch []domain.AppNotification) error {
	r.notifications = append(r.notifications, batch...)
	return nil
}

func (r *memNotificationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type memSponsorshipRepo struct {
	sponsorships []domain.Sponsorship
}

func (r *memSponsorshipRepo) List(context.Context) ([]domain.Sponsorship, error) {
	return append([]domain.Sponsorship(nil), r.sponsorships...), nil
}

func (r *memSponsorshipRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range r.sponsorships {
		if r.sponsorships[i].ID == id {
			r.sponsorships = append(r.sponsorships[:i], r.sponsorships[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type memAccessRequestRepo struct {
	requests []domain.AccessRequest
}

func (r *memAccessRequestRepo) List(context.Context) ([]domain.AccessRequest, error) {
	return append([]domain.AccessRequest(nil), r.requests...), nil
}

func (r *memAccessRequestRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *memAccessRequestRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type testEnv struct {
	app   *fiber.App
	users *memUserRepo
	recs  *memReclamationRepo
	auth  *service.AuthService
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	authCfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
		AdminEmail:            "admin@example.com",
		AdminPasswordHash:     string(hash),
	}

	users := &memUserRepo{}
	recs := &memReclamationRepo{}

	authService := service.NewAuthService(authCfg)
	userService := service.NewUserService(users, nil, authCfg.BcryptCost)
	reclamationService := service.NewReclamationService(recs, nil)
	notificationService := service.NewNotificationService(&memNotificationRepo{}, users, nil)
	sponsorshipService := service.NewSponsorshipService(&memSponsorshipRepo{}, users, nil)
	accessRequestService := service.NewAccessRequestService(&memAccessRequestRepo{}, nil)

	logger := zap.NewNop()
	app := fiber.New(fiber.Config{
		ErrorHandler: httptransport.ErrorHandler(),
	})
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", &persistence.Mongo{}, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Reclamations:   handlers.NewReclamationsHandler(reclamationService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Sponsorships:   handlers.NewSponsorshipsHandler(sponsorshipService),
		AccessRequests: handlers.NewAccessRequestsHandler(accessRequestService),
		SessionGate:    auth.NewSessionGate(authService.TokenManager()),
	})

	return &testEnv{app: app, users: users, recs: recs, auth: authService}
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, _, err := e.auth.Login("admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestAPIRequiresSession(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodGet, "/api/appuser_api", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] == "" {
		t.Fatalf("body = %v, want an error field", body)
	}
}

func TestAPIRejectsGarbageToken(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodGet, "/api/appuser_api", "not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginThenListUsers(t *testing.T) {
	env := newTestApp(t)
	env.users.users = []domain.AppUser{{ID: primitive.NewObjectID(), Email: "a@example.com", UserType: domain.UserTypeResident}}

	resp := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "s3cret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var login map[string]any
	decodeBody(t, resp, &login)
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatalf("login body = %v, want a token", login)
	}

	resp = env.do(t, http.MethodGet, "/api/appuser_api", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var users []map[string]any
	decodeBody(t, resp, &users)
	if len(users) != 1 || users[0]["email"] != "a@example.com" {
		t.Fatalf("users = %v", users)
	}
	if _, leaked := users[0]["passwordHash"]; leaked {
		t.Fatal("credential hash leaked in list response")
	}
}

func TestWrongVerbIsJSON405(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodGet, "/api/create_user", env.token(t), nil)
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] == "" {
		t.Fatalf("body = %v, want JSON error", body)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodGet, "/api/nope", env.token(t), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] == "" {
		t.Fatalf("body = %v, want JSON error", body)
	}
}

func TestDeleteMissingUserIs404(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodDelete, "/api/delete_user", env.token(t), map[string]string{
		"_id": primitive.NewObjectID().Hex(),
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] != "Utilisateur non trouvé" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestUpdateReclamationMalformedID(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/update_reclamation", env.token(t), map[string]string{
		"reclamationId": "zz",
		"status":        "Prise en charge",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdateReclamationSuccessBody(t *testing.T) {
	env := newTestApp(t)
	id := primitive.NewObjectID()
	env.recs.recs = []domain.Reclamation{{ID: id, Status: domain.ReclamationStatusOpen}}

	resp := env.do(t, http.MethodPost, "/api/update_reclamation", env.token(t), map[string]string{
		"reclamationId": id.Hex(),
		"syndicComment": "pris en charge",
		"status":        "Prise en charge",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]any
	decodeBody(t, resp, &body)
	if body["success"] != true {
		t.Fatalf("body = %v, want {success: true}", body)
	}
}

func TestAssignSyndicReturnsRecord(t *testing.T) {
	env := newTestApp(t)
	id := primitive.NewObjectID()
	syndicID := primitive.NewObjectID()
	env.recs.recs = []domain.Reclamation{{ID: id, Problem: "Fuite", Status: domain.ReclamationStatusOpen}}

	resp := env.do(t, http.MethodPost, "/api/assign_syndic", env.token(t), map[string]string{
		"reclamationId": id.Hex(),
		"syndicId":      syndicID.Hex(),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]any
	decodeBody(t, resp, &body)
	if body["syndicId"] != syndicID.Hex() {
		t.Fatalf("body = %v, want the updated record", body)
	}
}

func TestSendNotificationEmptySelection(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/send_notification", env.token(t), map[string]any{
		"title":         "Hello",
		"content":       "World",
		"recipientType": "specific",
		"selectedUsers": []string{},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] != "No recipients found for the selected type" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestHealthLive(t *testing.T) {
	env := newTestApp(t)

	resp := env.do(t, http.MethodGet, "/health/live", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]any
	decodeBody(t, resp, &body)
	if body["status"] != "alive" {
		t.Fatalf("body = %v", body)
	}
}
