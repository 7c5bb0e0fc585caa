package facades

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

func TestRateSourceClient_FetchQuote(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantQuote string
		wantErr   error
	}{
		{
			name:      "success",
			status:    http.StatusOK,
			body:      `{"result":"success","conversion_rate":0.00021}`,
			wantQuote: "0.00021",
		},
		{
			name:    "unsupported currency",
			status:  http.StatusOK,
			body:    `{"result":"error","error-type":"unsupported-code"}`,
			wantErr: apperrors.ErrQuoteNotFound,
		},
		{
			name:    "non-positive quote",
			status:  http.StatusOK,
			body:    `{"result":"success","conversion_rate":0}`,
			wantErr: apperrors.ErrQuoteNotFound,
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantErr: apperrors.ErrQuoteNotFound,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantErr: apperrors.ErrSourceUnavailable,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: apperrors.ErrSourceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, fmt.Sprintf("/testkey/pair/%s/USD", models.BaseCurrency), r.URL.Path)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := NewRateSourceClient(srv.URL, "testkey", 5*time.Second)
			quote, err := client.FetchQuote(context.Background(), "USD")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantQuote, quote.String())
		})
	}
}

func TestRateSourceClient_FetchLatest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, fmt.Sprintf("/testkey/latest/%s", models.BaseCurrency), r.URL.Path)
			fmt.Fprint(w, `{"result":"success","conversion_rates":{"USD":0.00022,"EUR":0.00021}}`)
		}))
		defer srv.Close()

		client := NewRateSourceClient(srv.URL, "testkey", 5*time.Second)
		quotes, err := client.FetchLatest(context.Background())

		assert.NoError(t, err)
		assert.Len(t, quotes, 2)
		assert.Equal(t, "0.00022", quotes["USD"].String())
		assert.Equal(t, "0.00021", quotes["EUR"].String())
	})

	t.Run("provider failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"result":"error","error-type":"invalid-key"}`)
		}))
		defer srv.Close()

		client := NewRateSourceClient(srv.URL, "testkey", 5*time.Second)
		_, err := client.FetchLatest(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
	})

	t.Run("unreachable provider", func(t *testing.T) {
		client := NewRateSourceClient("http://127.0.0.1:1", "testkey", time.Second)
		_, err := client.FetchLatest(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			fmt.Fprint(w, `{"result":"success","conversion_rates":{}}`)
		}))
		defer srv.Close()

		client := NewRateSourceClient(srv.URL, "testkey", 50*time.Millisecond)
		_, err := client.FetchLatest(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
	})
}
