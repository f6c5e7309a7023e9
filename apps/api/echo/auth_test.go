package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/maitrya143/pravah/core/user"
)

func Test_authApi_register(t *testing.T) {
	server, _ := setup(t)

	tests := []httpTest{
		{
			name:     "register succeeds",
			body:     []byte(`{"volunteerId": "25ngp050", "name": "Asha", "password": "pw1"}`),
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, SuccessResponse{Success: true}),
		},
		{
			name:     "duplicate ID (any case)",
			body:     []byte(`{"volunteerId": "25NGP050", "name": "Other", "password": "secret"}`),
			wantCode: http.StatusBadRequest,
			wantData: errJSON(t, "this Volunteer ID is already registered"),
		},
		{
			name:     "missing password",
			body:     []byte(`{"volunteerId": "25NGP051", "name": "Asha"}`),
			wantCode: http.StatusBadRequest,
			wantData: errJSON(t, map[string]string{"password": "this field is required"}),
		},
		{
			name:     "no recognizable city code",
			body:     []byte(`{"volunteerId": "25XYZ001", "name": "Asha", "password": "pw1"}`),
			wantCode: http.StatusBadRequest,
			wantData: errJSON(t, map[string]string{"volunteerId": "must contain a valid City Code (MDA or NGP)"}),
		},
		{
			name:     "ID too short",
			body:     []byte(`{"volunteerId": "NGP1", "name": "Asha", "password": "pw1"}`),
			wantCode: http.StatusBadRequest,
			wantData: errJSON(t, map[string]string{"volunteerId": "volunteerId must be at least 5 characters in length"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/auth/register", tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_authApi_login(t *testing.T) {
	server, deps := setup(t)

	usr, err := deps.UserSvc.Register(context.Background(), "25NGP050", "Asha", "pw1")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	tests := []httpTest{
		{
			name:     "login succeeds",
			body:     []byte(`{"volunteerId": "25NGP050", "password": "pw1"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, AuthResponse{Success: true, User: usr}),
		},
		{
			name:     "ID is case-insensitive",
			body:     []byte(`{"volunteerId": "25ngp050", "password": "pw1"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, AuthResponse{Success: true, User: usr}),
		},
		{
			name:     "password is case-sensitive",
			body:     []byte(`{"volunteerId": "25NGP050", "password": "PW1"}`),
			wantCode: http.StatusUnauthorized,
			wantData: errJSON(t, "invalid Volunteer ID or password"),
		},
		{
			name:     "unknown ID",
			body:     []byte(`{"volunteerId": "25MDA999", "password": "pw1"}`),
			wantCode: http.StatusUnauthorized,
			wantData: errJSON(t, "invalid Volunteer ID or password"),
		},
		{
			name:     "missing fields",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: errJSON(t, map[string]string{
				"volunteerId": "this field is required",
				"password":    "this field is required",
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/auth/login", tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_authApi_update(t *testing.T) {
	server, deps := setup(t)

	if _, err := deps.UserSvc.Register(context.Background(), "25NGP050", "Asha", "pw1"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	updated := user.User{VolunteerID: "25NGP050", Name: "Asha K", Password: "pw1"}
	tests := []httpTest{
		{
			name:     "partial update keeps password",
			path:     "/auth/update/25ngp050",
			body:     []byte(`{"name": "Asha K"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, AuthResponse{Success: true, User: updated}),
		},
		{
			name:     "empty update rejected",
			path:     "/auth/update/25NGP050",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: errJSON(t, "no fields to update"),
		},
		{
			name:     "unknown volunteer",
			path:     "/auth/update/25MDA999",
			body:     []byte(`{"name": "Nobody"}`),
			wantCode: http.StatusNotFound,
			wantData: errJSON(t, "not found"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPut, tt.path, tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
