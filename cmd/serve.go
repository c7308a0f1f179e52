package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/midi"
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/progression"
	"github.com/jsphweid/fretforge/riff"
	"github.com/jsphweid/fretforge/shape"
	"github.com/jsphweid/fretforge/tab"
	"github.com/jsphweid/fretforge/triad"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over http",
	Long:  `Serves the engine over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return false
	}
	if err = json.Unmarshal(reqBody, v); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return false
	}
	return true
}

func handleShapes(w http.ResponseWriter, r *http.Request) {
	var input model.ShapeRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	res := shape.BuildShapes(tuning.Standard(), input.Root, input.Quality)
	json.NewEncoder(w).Encode(res)
}

func handleTriads(w http.ResponseWriter, r *http.Request) {
	var input model.TriadRequestBody
	if !decodeBody(w, r, &input) {
		return
	}
	res := triad.Enumerate(tuning.Standard(), input.Root, input.Quality)
	json.NewEncoder(w).Encode(res)
}

func riffFromRequest(w http.ResponseWriter, r *http.Request) (model.ProgressionRiff, bool) {
	var input model.RiffRequestBody
	if !decodeBody(w, r, &input) {
		return model.ProgressionRiff{}, false
	}
	prog, ok := progression.Catalog[input.Progression]
	if !ok {
		writeError(w, 400, "Unknown progression: "+input.Progression)
		return model.ProgressionRiff{}, false
	}
	bpm := input.Bpm
	if bpm <= 0 {
		bpm = constants.DefaultBpm
	}
	t := tuning.Standard()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := riff.NewGenerator(t, rnd)
	chords := progression.Transpose(prog, input.Root)
	return gen.Generate(chords, input.Style, bpm), true
}

func handleRiff(w http.ResponseWriter, r *http.Request) {
	generated, ok := riffFromRequest(w, r)
	if !ok {
		return
	}
	json.NewEncoder(w).Encode(model.RiffResponse{
		Id:   uuid.New().String(),
		Riff: generated,
	})
}

func handleRiffMidi(w http.ResponseWriter, r *http.Request) {
	generated, ok := riffFromRequest(w, r)
	if !ok {
		return
	}
	data := midi.ExportRiff(tuning.Standard(), generated)
	w.Header().Set("Content-Type", "audio/midi")
	w.Write(data)
}

func handleRiffTab(w http.ResponseWriter, r *http.Request) {
	generated, ok := riffFromRequest(w, r)
	if !ok {
		return
	}
	sheet := tab.Build(generated, 0)
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, tab.RenderAscii(sheet))
}

// NewRouter builds the http surface; exported so tests can run against it
// with httptest.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/shapes", handleShapes).Methods("POST")
	router.HandleFunc("/triads", handleTriads).Methods("POST")
	router.HandleFunc("/riff", handleRiff).Methods("POST")
	router.HandleFunc("/riff/midi", handleRiffMidi).Methods("POST")
	router.HandleFunc("/riff/tab", handleRiffTab).Methods("POST")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
