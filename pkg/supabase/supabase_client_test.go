package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/users", r.URL.Path)
		require.Equal(t, "count", r.URL.Query().Get("select"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestClient_ProbeTable(t *testing.T) {
	t.Run("table exists", func(t *testing.T) {
		server := newServer(t, http.StatusOK, `[{"count":3}]`)
		defer server.Close()

		c := Client{HttpClient: server.Client(), Url: server.URL, ApiKey: "anon-key"}
		require.NoError(t, c.ProbeTable(context.Background(), "users"))
	})

	t.Run("relation missing", func(t *testing.T) {
		server := newServer(t, http.StatusNotFound, `{"code":"42P01","message":"relation \"public.users\" does not exist"}`)
		defer server.Close()

		c := Client{HttpClient: server.Client(), Url: server.URL, ApiKey: "anon-key"}
		err := c.ProbeTable(context.Background(), "users")
		require.True(t, errors.Is(err, ErrRelationMissing))
	})

	t.Run("schema cache miss", func(t *testing.T) {
		server := newServer(t, http.StatusNotFound, `{"code":"PGRST205","message":"Could not find the table 'public.users' in the schema cache"}`)
		defer server.Close()

		c := Client{HttpClient: server.Client(), Url: server.URL, ApiKey: "anon-key"}
		err := c.ProbeTable(context.Background(), "users")
		require.ErrorIs(t, err, ErrRelationMissing)
	})

	t.Run("relation named without a code", func(t *testing.T) {
		server := newServer(t, http.StatusBadRequest, `{"message":"relation \"users\" does not exist"}`)
		defer server.Close()

		c := Client{HttpClient: server.Client(), Url: server.URL, ApiKey: "anon-key"}
		err := c.ProbeTable(context.Background(), "users")
		require.ErrorIs(t, err, ErrRelationMissing)
	})

	t.Run("other missing objects are failures", func(t *testing.T) {
		for _, body := range []string{
			`{"code":"42703","message":"column \"count\" does not exist"}`,
			`{"code":"28000","message":"role \"authenticator\" does not exist"}`,
			`{"message":"relation \"profiles\" does not exist"}`,
		} {
			server := newServer(t, http.StatusBadRequest, body)
			c := Client{HttpClient: server.Client(), Url: server.URL, ApiKey: "anon-key"}
			err := c.ProbeTable(context.Background(), "users")
			server.Close()

			require.Error(t, err)
			require.False(t, errors.Is(err, ErrRelationMissing), body)
		}
	})

	t.Run("bad key", func(t *testing.T) {
		server := newServer(t, http.StatusUnauthorized, `{"message":"Invalid API key","hint":"Double check your Supabase anon key."}`)
		defer server.Close()

		c := Client{HttpClient: server.Client(), Url: server.URL, ApiKey: "anon-key"}
		err := c.ProbeTable(context.Background(), "users")
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrRelationMissing))
		require.ErrorContains(t, err, "Invalid API key")
	})
}

func TestDecodeApiKey(t *testing.T) {
	t.Run("anon key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"iss":  "supabase",
			"ref":  "abcdefgh",
			"role": "anon",
		})
		signed, err := token.SignedString([]byte("not-the-real-secret"))
		require.NoError(t, err)

		claims, err := DecodeApiKey(signed)
		require.NoError(t, err)
		require.Equal(t, "anon", claims.Role)
		require.Equal(t, "abcdefgh", claims.Ref)
		require.Equal(t, "supabase", claims.Issuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := DecodeApiKey("definitely-not-a-jwt")
		require.Error(t, err)
	})

	t.Run("publishable key", func(t *testing.T) {
		require.True(t, IsPublishableKey("sb_publishable_abc"))
		require.False(t, IsPublishableKey("eyJhbGciOi"))
	})
}
