package service_test

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/service"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

func TestCreateUserDefaultsToResident(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := service.NewUserService(repo, nil, bcrypt.MinCost)

	user, err := svc.Create(context.Background(), service.UserCreateInput{
		Email:    "new@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.UserType != domain.UserTypeResident {
		t.Fatalf("userType = %q, want %q", user.UserType, domain.UserTypeResident)
	}
	if user.PasswordHash != "" {
		t.Fatal("credential hash leaked on the returned user")
	}
	if repo.users[0].PasswordHash == "" {
		t.Fatal("stored user missing credential hash")
	}
}

func TestCreateUserRequiresPassword(t *testing.T) {
	svc := service.NewUserService(&fakeUserRepo{}, nil, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), service.UserCreateInput{Email: "new@example.com"})
	if err == nil {
		t.Fatal("Create() without password succeeded")
	}
	derr := apperrors.ToDomainError(err)
	if derr.Message != "Le mot de passe est requis" {
		t.Fatalf("message = %q", derr.Message)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := seedUsers()
	svc := service.NewUserService(repo, nil, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), service.UserCreateInput{
		Email:    "a@example.com",
		Password: "secret",
	})
	if err == nil {
		t.Fatal("Create() with duplicate email succeeded")
	}
	if derr := apperrors.ToDomainError(err); derr.HTTPStatus != http.StatusConflict {
		t.Fatalf("status = %d, want 409", derr.HTTPStatus)
	}
}

func TestCreateUserRejectsUnknownType(t *testing.T) {
	svc := service.NewUserService(&fakeUserRepo{}, nil, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), service.UserCreateInput{
		Email:    "new@example.com",
		Password: "secret",
		UserType: "admin",
	})
	if err == nil {
		t.Fatal("Create() with unknown userType succeeded")
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := service.NewUserService(&fakeUserRepo{}, nil, bcrypt.MinCost)

	name := "nouveau"
	err := svc.Update(context.Background(), primitive.NewObjectID(), domain.AppUserUpdate{Name: &name})
	if err == nil {
		t.Fatal("Update() on missing user succeeded")
	}
	derr := apperrors.ToDomainError(err)
	if derr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", derr.HTTPStatus)
	}
	if derr.Message != "User not found or no changes made" {
		t.Fatalf("message = %q", derr.Message)
	}
}

func TestDeleteUserTwice(t *testing.T) {
	repo := seedUsers()
	id := repo.users[0].ID
	svc := service.NewUserService(repo, nil, bcrypt.MinCost)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	err := svc.Delete(context.Background(), id)
	if err == nil {
		t.Fatal("second Delete() succeeded, want not found")
	}
	derr := apperrors.ToDomainError(err)
	if derr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", derr.HTTPStatus)
	}
	if derr.Message != "Utilisateur non trouvé" {
		t.Fatalf("message = %q", derr.Message)
	}
}
