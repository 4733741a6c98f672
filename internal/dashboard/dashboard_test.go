package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/dashboard"
	"github.com/spec-kit/verve-admin/internal/domain"
)

// fakeAPI is an in-memory stand-in for the admin service, serving the same
// transport shapes and error bodies.
type fakeAPI struct {
	mu           sync.Mutex
	users        []dto.AppUserRecord
	reclamations []dto.ReclamationRecord
	requests     []dto.AccessRequestRecord
	calls        map[string]int

	failDeleteAccessRequest bool
	lastToken               string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeAPI) lastAuth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastToken
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	key := r.Method + " " + r.URL.Path
	f.calls[key]++
	f.lastToken = r.Header.Get("Authorization")
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch key {
	case "GET /api/appuser_api":
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.users)
	case "GET /api/reclamation_api":
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.reclamations)
	case "GET /api/access_request_api":
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.requests)
	case "POST /api/create_user":
		var req dto.CreateUserRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Le mot de passe est requis"})
			return
		}
		f.mu.Lock()
		f.users = append(f.users, dto.AppUserRecord{
			ID:       primitive.NewObjectID().Hex(),
			Email:    req.Email,
			Name:     req.Name,
			Surname:  req.Surname,
			UserType: req.UserType,
		})
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "User created successfully"})
	case "POST /api/assign_syndic":
		var req dto.AssignSyndicRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.reclamations {
			if f.reclamations[i].ID == req.ReclamationID {
				f.reclamations[i].SyndicID = req.SyndicID
				_ = json.NewEncoder(w).Encode(f.reclamations[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Réclamation non trouvée"})
	case "DELETE /api/delete_access_request":
		if f.failDeleteAccessRequest {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "erreur interne"})
			return
		}
		var req dto.DeleteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		for i := range f.requests {
			if f.requests[i].ID == req.ID {
				f.requests = append(f.requests[:i], f.requests[i+1:]...)
				break
			}
		}
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "AccessRequest supprimé de la base de données avec succès."})
	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "not found"})
	}
}

func newTestDashboard(t *testing.T, api *fakeAPI) (*dashboard.Dashboard, func()) {
	t.Helper()
	server := httptest.NewServer(api)
	client := dashboard.NewClient(server.URL, nil)
	return dashboard.New(client, time.Minute, nil), server.Close
}

func TestFetchUsersNormalizesRecords(t *testing.T) {
	api := newFakeAPI()
	id := primitive.NewObjectID()
	api.users = []dto.AppUserRecord{{ID: id.Hex(), Email: "a@example.com", Name: "Amine", UserType: "user"}}

	d, stop := newTestDashboard(t, api)
	defer stop()

	if err := d.FetchUsers(context.Background()); err != nil {
		t.Fatalf("FetchUsers() error = %v", err)
	}

	snap := d.Users.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("items = %v", snap.Items)
	}
	if snap.Items[0].ID != id {
		t.Fatalf("id = %s, want typed %s", snap.Items[0].ID.Hex(), id.Hex())
	}
	if snap.Items[0].UserType != domain.UserTypeResident {
		t.Fatalf("userType = %q", snap.Items[0].UserType)
	}
	if snap.Loading {
		t.Fatal("loading still set after fetch")
	}
}

func TestFetchUsersMalformedIDFailsFetch(t *testing.T) {
	api := newFakeAPI()
	api.users = []dto.AppUserRecord{{ID: "not-hex", Email: "a@example.com"}}

	d, stop := newTestDashboard(t, api)
	defer stop()

	if err := d.FetchUsers(context.Background()); err == nil {
		t.Fatal("FetchUsers() with malformed id succeeded")
	}
	if d.Users.Snapshot().Err == nil {
		t.Fatal("store error not recorded")
	}
}

func TestFetchReclamationsJoinsNames(t *testing.T) {
	api := newFakeAPI()
	reporter := primitive.NewObjectID()
	syndic := primitive.NewObjectID()
	api.users = []dto.AppUserRecord{
		{ID: reporter.Hex(), Email: "a@example.com", Name: "Amine", Surname: "Berrada", UserType: "user"},
		{ID: syndic.Hex(), Email: "s@example.com", Name: "Samira", Surname: "El Fassi", UserType: "syndic"},
	}
	api.reclamations = []dto.ReclamationRecord{
		{ID: primitive.NewObjectID().Hex(), Problem: "Fuite", Status: "Ouverte", UserID: reporter.Hex(), SyndicID: syndic.Hex()},
		{ID: primitive.NewObjectID().Hex(), Problem: "Bruit", Status: "Ouverte", UserID: primitive.NewObjectID().Hex()},
		{ID: primitive.NewObjectID().Hex(), Problem: "Autre", Status: "Ouverte"},
	}

	d, stop := newTestDashboard(t, api)
	defer stop()

	if err := d.FetchReclamations(context.Background()); err != nil {
		t.Fatalf("FetchReclamations() error = %v", err)
	}

	items := d.Reclamations.Snapshot().Items
	if items[0].ReporterName != "Amine Berrada" || items[0].SyndicName != "Samira El Fassi" {
		t.Fatalf("joined names = %q / %q", items[0].ReporterName, items[0].SyndicName)
	}
	if items[1].ReporterName != "Inconnu" {
		t.Fatalf("missing user join = %q, want Inconnu", items[1].ReporterName)
	}
	if items[2].ReporterName != "" || items[2].SyndicName != "" {
		t.Fatalf("unset references should have empty names, got %q / %q", items[2].ReporterName, items[2].SyndicName)
	}
}

func TestAssignSyndicRefusedLocallyWhenTreated(t *testing.T) {
	api := newFakeAPI()
	recID := primitive.NewObjectID()
	api.reclamations = []dto.ReclamationRecord{{ID: recID.Hex(), Problem: "Fuite", Status: "Traité"}}

	d, stop := newTestDashboard(t, api)
	defer stop()

	if err := d.FetchReclamations(context.Background()); err != nil {
		t.Fatalf("FetchReclamations() error = %v", err)
	}

	err := d.AssignSyndic(context.Background(), recID, primitive.NewObjectID())
	if err == nil {
		t.Fatal("AssignSyndic() on treated réclamation succeeded")
	}
	if got := api.count("POST /api/assign_syndic"); got != 0 {
		t.Fatalf("assign_syndic requests = %d, want none", got)
	}
	notice, ok := d.Notices.Current()
	if !ok || notice.Kind != dashboard.NoticeError {
		t.Fatalf("notice = %+v, want error banner", notice)
	}
}

func TestAssignSyndicRequestsAndRefetches(t *testing.T) {
	api := newFakeAPI()
	recID := primitive.NewObjectID()
	api.reclamations = []dto.ReclamationRecord{{ID: recID.Hex(), Problem: "Fuite", Status: "Ouverte"}}

	d, stop := newTestDashboard(t, api)
	defer stop()

	if err := d.FetchReclamations(context.Background()); err != nil {
		t.Fatalf("FetchReclamations() error = %v", err)
	}
	syndicID := primitive.NewObjectID()
	if err := d.AssignSyndic(context.Background(), recID, syndicID); err != nil {
		t.Fatalf("AssignSyndic() error = %v", err)
	}

	if got := api.count("POST /api/assign_syndic"); got != 1 {
		t.Fatalf("assign_syndic requests = %d, want 1", got)
	}
	if got := api.count("GET /api/reclamation_api"); got != 2 {
		t.Fatalf("reclamation fetches = %d, want refetch after mutation", got)
	}

	items := d.Reclamations.Snapshot().Items
	if items[0].SyndicID == nil || *items[0].SyndicID != syndicID {
		t.Fatalf("store not refreshed, syndicId = %v", items[0].SyndicID)
	}
}

func TestCreateUserRoundTrip(t *testing.T) {
	api := newFakeAPI()
	d, stop := newTestDashboard(t, api)
	defer stop()

	err := d.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "new@example.com",
		Password: "secret",
		Name:     "Nadia",
		UserType: "user",
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	items := d.Users.Snapshot().Items
	if len(items) != 1 || items[0].Email != "new@example.com" {
		t.Fatalf("items = %v, want the created user after refetch", items)
	}
	notice, ok := d.Notices.Current()
	if !ok || notice.Kind != dashboard.NoticeSuccess || notice.Message != "User created successfully" {
		t.Fatalf("notice = %+v", notice)
	}
}

func TestCreateUserErrorSurfacesServerMessage(t *testing.T) {
	api := newFakeAPI()
	d, stop := newTestDashboard(t, api)
	defer stop()

	err := d.CreateUser(context.Background(), dto.CreateUserRequest{Email: "new@example.com"})
	if err == nil {
		t.Fatal("CreateUser() without password succeeded")
	}
	if err.Error() != "Le mot de passe est requis" {
		t.Fatalf("error = %q, want the server message verbatim", err.Error())
	}
	if got := api.count("GET /api/appuser_api"); got != 0 {
		t.Fatalf("refetched after failed mutation, fetches = %d", got)
	}
}

func TestConvertAccessRequestPartialFailureRefetchesBoth(t *testing.T) {
	api := newFakeAPI()
	api.failDeleteAccessRequest = true
	request := domain.AccessRequest{
		ID:    primitive.NewObjectID(),
		Email: "cand@example.com",
		Name:  "Candidate",
	}
	api.requests = []dto.AccessRequestRecord{{
		ID: request.ID.Hex(), Email: request.Email, Name: request.Name,
		Status: "pending", CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}}

	d, stop := newTestDashboard(t, api)
	defer stop()

	err := d.ConvertAccessRequest(context.Background(), request, "secret", domain.UserTypeResident)
	if err == nil {
		t.Fatal("ConvertAccessRequest() succeeded despite failed cleanup")
	}

	// The user was created, the request survived; both stores refetch so the
	// intermediate state is visible.
	if got := api.count("GET /api/appuser_api"); got != 1 {
		t.Fatalf("user fetches = %d, want 1", got)
	}
	if got := api.count("GET /api/access_request_api"); got != 1 {
		t.Fatalf("access-request fetches = %d, want 1", got)
	}
	if len(d.Users.Snapshot().Items) != 1 {
		t.Fatal("created user missing from store")
	}
	if len(d.AccessRequests.Snapshot().Items) != 1 {
		t.Fatal("surviving request missing from store")
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api)
	defer server.Close()

	client := dashboard.NewClient(server.URL, nil)
	client.SetToken("session-token")
	d := dashboard.New(client, time.Minute, nil)

	if err := d.FetchUsers(context.Background()); err != nil {
		t.Fatalf("FetchUsers() error = %v", err)
	}
	if got := api.lastAuth(); got != "Bearer session-token" {
		t.Fatalf("authorization header = %q", got)
	}
}
