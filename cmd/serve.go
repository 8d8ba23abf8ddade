package cmd

import (
	"encoding/hex"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/quaverd/midievent/event"
	"github.com/quaverd/midievent/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves event decode/transform over HTTP",
	Long:  `Serves event decode/transform over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serveAddr() string {
	if addr := os.Getenv("MIDIEVENT_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func handleDecode(w http.ResponseWriter, r *http.Request) {
	var input model.DecodeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}
	buf, err := hex.DecodeString(input.Bytes)
	if err != nil {
		writeError(w, 400, "bytes must be hex-encoded: "+err.Error())
		return
	}
	e := event.New()
	if !e.SetMidiEvent(event.Pulse(input.Timestamp), buf, input.Count, input.ConvertZeroVel) {
		writeError(w, 400, "malformed midi message")
		return
	}
	json.NewEncoder(w).Encode(model.FromEvent(&e))
}

func handleTransform(w http.ResponseWriter, r *http.Request) {
	var input model.TransformRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}

	evs := make([]event.Event, 0, len(input.Events))
	for _, v := range input.Events {
		evs = append(evs, v.ToEvent())
	}
	seqLen := event.Pulse(input.SeqLength)
	if seqLen <= 0 {
		seqLen = seqLength(evs)
	}
	rng := rand.New(rand.NewSource(input.Seed))

	changed := 0
	for i := range evs {
		var ok bool
		switch input.Op {
		case "jitter":
			ok = evs[i].Jitter(rng, input.Range, seqLen)
		case "randomize":
			ok = evs[i].Randomize(rng, input.Range)
		case "tighten":
			ok = evs[i].Tighten(input.Snap, seqLen)
		case "quantize":
			ok = evs[i].Quantize(input.Snap, seqLen)
		default:
			writeError(w, 400, "unknown op: "+input.Op)
			return
		}
		if ok {
			changed++
		}
	}
	event.Sort(evs)

	res := model.TransformResponse{Changed: changed, Events: make([]model.EventView, 0, len(evs))}
	for i := range evs {
		res.Events = append(res.Events, model.FromEvent(&evs[i]))
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/decode", handleDecode).Methods("POST")
	router.HandleFunc("/transform", handleTransform).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(serveAddr(), handler))
}
