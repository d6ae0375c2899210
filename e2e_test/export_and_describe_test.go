//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/config"
	"github.com/jsphweid/harmonia/midi"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, target string, out interface{}) int {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, out))
	return resp.StatusCode
}

// A progression written to MIDI, read back and named, describes the same
// chords through the HTTP API.
func TestProgressionRoundTripE2E(t *testing.T) {
	assert := assert.New(t)
	names := []string{"Dm7", "G7", "CM7", "Am"}

	var groups [][]pitch.Pitch
	for _, name := range names {
		groups = append(groups, chord.MustParse(name, 3).Notes())
	}
	path := filepath.Join(t.TempDir(), "ii-V-I.mid")
	require.NoError(t, midi.WritePitches(path, groups, midi.WriteOptions{}))

	_, chords, err := midi.ReadChords(path)
	require.NoError(t, err)
	require.Len(t, chords, len(names))

	h := server.New(config.Default()).Handler()
	for i, c := range chords {
		var view model.ChordView
		status := get(t, h, "/chords/"+url.PathEscape(c.Name())+"?octave=3", &view)
		assert.Equal(http.StatusOK, status)
		assert.Equal(names[i], view.Name)
		assert.Equal(c.Quality(), view.Quality)
	}
}

func TestScaleMembershipE2E(t *testing.T) {
	h := server.New(config.Default()).Handler()

	var sc model.ScaleView
	require.Equal(t, http.StatusOK, get(t, h, "/scales/G3/mixolydian", &sc))

	for _, name := range sc.Notes {
		var p model.PitchView
		require.Equal(t, http.StatusOK, get(t, h, "/pitches/"+url.PathEscape(name), &p))
		assert.Equal(t, name, p.Name)
	}
	assert.Equal(t, []string{"g", "a", "b", "c", "d", "e", "f"}, sc.Simple)
}
