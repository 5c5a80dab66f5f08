package vpic_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizo-ux/tm-auto-elite-shop/pkg/vpic"
)

func TestDecodeVin(t *testing.T) {
	t.Run("Success - Full Decode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/vehicles/decodevinvalues/1HGCM82633A004352")
			assert.Equal(t, "json", r.URL.Query().Get("format"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"Results":[{
				"Make":"HONDA","Model":"Accord","ModelYear":"2003",
				"EngineModel":"J30A4","DisplacementL":"3.0",
				"BodyClass":"Coupe","FuelTypePrimary":"Gasoline","DriveType":"FWD",
				"ErrorCode":"0","ErrorText":""
			}]}`))
		}))
		defer server.Close()

		client := vpic.NewClient(server.URL, 0)

		info, err := client.DecodeVin(t.Context(), "1HGCM82633A004352")

		require.NoError(t, err)
		assert.Equal(t, "HONDA", info.Make)
		assert.Equal(t, "Accord", info.Model)
		assert.Equal(t, "2003", info.Year)
		assert.Equal(t, "3.0L J30A4", info.Engine)
		assert.Equal(t, "Coupe", info.BodyClass)
	})

	t.Run("Success - Missing Fields Fall Back To Unknown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Results":[{"Make":"","Model":"","ModelYear":"","ErrorCode":"0"}]}`))
		}))
		defer server.Close()

		client := vpic.NewClient(server.URL, 0)

		info, err := client.DecodeVin(t.Context(), "11111111111111111")

		require.NoError(t, err)
		assert.Equal(t, "Unknown", info.Make)
		assert.Equal(t, "Unknown", info.Model)
		assert.Equal(t, "Unknown", info.Year)
		assert.Empty(t, info.Engine)
	})

	t.Run("Failure - vPIC Error Code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Results":[{"ErrorCode":"11","ErrorText":"Incorrect Model Year"}]}`))
		}))
		defer server.Close()

		client := vpic.NewClient(server.URL, 0)

		_, err := client.DecodeVin(t.Context(), "11111111111111111")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect Model Year")
	})

	t.Run("Failure - Non-200 Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := vpic.NewClient(server.URL, 0)

		_, err := client.DecodeVin(t.Context(), "11111111111111111")

		assert.Error(t, err)
	})

	t.Run("Failure - Empty Results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Results":[]}`))
		}))
		defer server.Close()

		client := vpic.NewClient(server.URL, 0)

		_, err := client.DecodeVin(t.Context(), "11111111111111111")

		assert.Error(t, err)
	})
}

func TestPing(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/vehicles/getallmakes")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := vpic.NewClient(server.URL, 0)

		assert.NoError(t, client.Ping(t.Context()))
	})

	t.Run("Failure - Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := vpic.NewClient(server.URL, 0)

		assert.Error(t, client.Ping(t.Context()))
	})
}
