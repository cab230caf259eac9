package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/agil-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "tester",
		Email:    "Test@Ex.com",
		Password: "pw123",
		Phone:    "1234567890",
		FullName: "Test User",
	}
}

func TestAccountValidator_Register(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(r *models.RegisterRequest)
		wantErr   bool
		wantField string
	}{
		{name: "valid", mutate: func(r *models.RegisterRequest) {}},
		{name: "missing username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, wantErr: true, wantField: FieldUsername},
		{name: "missing email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: true, wantField: FieldEmail},
		{name: "blank email", mutate: func(r *models.RegisterRequest) { r.Email = "   " }, wantErr: true, wantField: FieldEmail},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: true, wantField: FieldPassword},
		{name: "missing phone", mutate: func(r *models.RegisterRequest) { r.Phone = "" }, wantErr: true, wantField: FieldPhone},
		{name: "missing full name", mutate: func(r *models.RegisterRequest) { r.FullName = "" }, wantErr: true, wantField: FieldFullName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestAccountValidator_Register_Pointer(t *testing.T) {
	req := validRegister()
	assert.NoError(t, NewAccountValidator().Validate(context.Background(), &req))
}

func TestAccountValidator_Login(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.c", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.c"}), ErrMissingField)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Password: "x"}), ErrMissingField)
}

func TestAccountValidator_FieldScoping(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	req := validRegister()
	req.Phone = ""

	assert.NoError(t, v.Validate(ctx, req, FieldEmail, FieldPassword))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldPhone), ErrMissingField)
}

func TestAccountValidator_UnknownField(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), validRegister(), "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestAccountValidator_UnsupportedType(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.LoginRequest)(nil)), ErrUnsupportedType)
}
