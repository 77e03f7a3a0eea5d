package main

import (
	"encoding/json"
	"github.com/bbernstein/linkstation/backend-go/internal/config"
	"github.com/bbernstein/linkstation/backend-go/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewServer(t *testing.T) {
	srv := newServer(config.New(config.WithPort("9191")))
	assert.Equal(t, ":9191", srv.Addr)

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	body := `{"device": {"coordinates": {"x": 12,"y": 25}},"linkStations": [{"coordinates": {"x": 10,"y": 10},"reach": 20}, {"coordinates": {"x": 3,"y": 3},"reach": 2}, {"coordinates": {"x": 11,"y": 14},"reach": 20}]}`
	resp, err := http.Post(ts.URL+server.FinderPath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "Best link station for point 12,25 is 11,14 with power 80.18555931250957", response["finding"])
}
