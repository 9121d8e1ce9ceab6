package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("secret", time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWT_GetClaims_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret", time.Hour).Generate(ctx, uuid.New())
	require.NoError(t, err)

	_, err = New("other-secret", time.Hour).GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_Validate_Expired(t *testing.T) {
	j := New("secret", -time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
}

func TestJWT_Validate_Garbage(t *testing.T) {
	j := New("secret", time.Hour)
	assert.Error(t, j.Validate(context.Background(), "not-a-token"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Hour)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase_scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing", header: "", wantErr: true},
		{name: "no_scheme", header: "abc.def.ghi", wantErr: true},
		{name: "wrong_scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
