//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/fretforge/cmd"
	"github.com/jsphweid/fretforge/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func postJSON(t *testing.T, server *httptest.Server, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	res, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestShapesEndpointE2E(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(cmd.NewRouter())
	defer server.Close()

	res := postJSON(t, server, "/shapes", model.ShapeRequestBody{Root: model.G, Quality: model.QualityMajor})
	assert.Equal(200, res.StatusCode)

	var shapes []model.RuntimeChordShape
	assert.NoError(json.NewDecoder(res.Body).Decode(&shapes))
	assert.NotEmpty(shapes)
	for _, s := range shapes {
		assert.Equal(model.G, s.Root)
	}
}

func TestTriadsEndpointE2E(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(cmd.NewRouter())
	defer server.Close()

	res := postJSON(t, server, "/triads", model.TriadRequestBody{Root: model.C, Quality: model.QualityMajor})
	assert.Equal(200, res.StatusCode)

	var positions []model.TriadPosition
	assert.NoError(json.NewDecoder(res.Body).Decode(&positions))
	assert.NotEmpty(positions)
}

func TestRiffMidiEndpointE2E(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(cmd.NewRouter())
	defer server.Close()

	res := postJSON(t, server, "/riff/midi", model.RiffRequestBody{
		Progression: "I-IV-V",
		Root:        model.A,
		Style:       model.StyleMelodic,
		Bpm:         140,
	})
	assert.Equal(200, res.StatusCode)
	assert.Equal("audio/midi", res.Header.Get("Content-Type"))

	data, err := io.ReadAll(res.Body)
	assert.NoError(err)
	parsed, err := smf.ReadFrom(bytes.NewReader(data))
	assert.NoError(err)
	assert.Len(parsed.Tracks, 1)
}

func TestUnknownProgressionE2E(t *testing.T) {
	server := httptest.NewServer(cmd.NewRouter())
	defer server.Close()

	res := postJSON(t, server, "/riff", model.RiffRequestBody{Progression: "nope", Root: model.C})
	assert.Equal(t, 400, res.StatusCode)
}
