package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/scale"
	"github.com/pkg/errors"
)

var errNoIntervals = errors.New("no intervals to add")

func (s *Server) handlePitch(w http.ResponseWriter, r *http.Request) {
	p, err := pitch.Parse(mux.Vars(r)["name"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, s.pitchView(p))
}

func convention(r *http.Request) (interval.Convention, error) {
	c := interval.FromContext(r.Context())
	if v := r.URL.Query().Get("octave_is_simple"); v != "" {
		simple, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrap(err, "octave_is_simple")
		}
		c.OctaveIsSimple = simple
	}
	return c, nil
}

func (s *Server) handleInterval(w http.ResponseWriter, r *http.Request) {
	c, err := convention(r)
	if err != nil {
		respondError(w, err)
		return
	}
	i, err := interval.Parse(mux.Vars(r)["name"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, intervalView(i, c))
}

func (s *Server) handleAddIntervals(w http.ResponseWriter, r *http.Request) {
	c, err := convention(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var input model.AddIntervalsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, errors.Wrap(err, "decoding request body"))
		return
	}
	if len(input.Intervals) == 0 {
		respondError(w, errNoIntervals)
		return
	}

	var sum interval.Interval
	for _, name := range input.Intervals {
		i, err := interval.Parse(name)
		if err != nil {
			respondError(w, err)
			return
		}
		sum = sum.Add(i)
	}
	respond(w, http.StatusOK, intervalView(sum, c))
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	octave := s.cfg.Theory.DefaultOctave
	if v := r.URL.Query().Get("octave"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, errors.Wrap(err, "octave"))
			return
		}
		octave = n
	}
	c, err := chord.Parse(mux.Vars(r)["name"], octave)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, chordView(c))
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, err := scale.Parse(vars["tonic"], vars["name"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, scaleView(sc))
}

func (s *Server) handleScaleNames(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, model.ScaleNames{Names: scale.Names()})
}
