package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/application/service"
	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByGoogleID(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]*entity.User, int64, error) {
	return r.users, int64(len(r.users)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ *entity.User) error      { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ uuid.UUID) error         { return nil }
func (r *fakeUserRepo) AssignRole(_ context.Context, _, _ uuid.UUID) error  { return nil }
func (r *fakeUserRepo) RemoveRole(_ context.Context, _, _ uuid.UUID) error  { return nil }

type fakeRoleRepo struct {
	roles []*entity.Role
}

func (r *fakeRoleRepo) Create(_ context.Context, role *entity.Role) error {
	r.roles = append(r.roles, role)
	return nil
}

func (r *fakeRoleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List(_ context.Context) ([]*entity.Role, error) { return r.roles, nil }
func (r *fakeRoleRepo) Update(_ context.Context, _ *entity.Role) error { return nil }
func (r *fakeRoleRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

func TestUserHandlerCreateAssignsRequestedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userRepo := &fakeUserRepo{}
	roleRepo := &fakeRoleRepo{roles: []*entity.Role{
		{ID: uuid.New(), Name: "accountant"},
	}}
	h := NewUserHandler(service.NewUserService(userRepo, roleRepo))

	router := gin.New()
	router.POST("/users", h.Create)

	body := `{"email":"karim@citycenter.local","password":"s3cret-pass","first_name":"کریم","role":"accountant"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	if len(userRepo.users) != 1 {
		t.Fatalf("stored %d users, want 1", len(userRepo.users))
	}
	created := userRepo.users[0]
	if len(created.Roles) != 1 || created.Roles[0].Name != "accountant" {
		t.Errorf("roles = %+v, want the requested role attached", created.Roles)
	}
	if created.Password == "s3cret-pass" {
		t.Error("password stored in plain text")
	}

	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Error("success = false in the response envelope")
	}
}

func TestUserHandlerCreateUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewUserHandler(service.NewUserService(&fakeUserRepo{}, &fakeRoleRepo{}))

	router := gin.New()
	router.POST("/users", h.Create)

	body := `{"email":"karim@citycenter.local","password":"s3cret-pass","role":"ghost"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an unknown role", w.Code)
	}
}
