package server

import (
	"log"
	"net/http"
	"os"

	"github.com/evdash/evdash/pkg/evdash/dal"
	"github.com/evdash/evdash/pkg/evdash/summary"
	"github.com/gorilla/mux"
)

// NewHTTPServer returns a new HTTP server over the given dataset
func NewHTTPServer(addr string, records []dal.Record) *http.Server {
	server := newHTTPServer(records)
	r := mux.NewRouter()
	r.HandleFunc("/summary", server.GetSummary).Methods(http.MethodGet)
	r.HandleFunc("/summary/latest", server.GetLatestSummary).Methods(http.MethodGet)
	return &http.Server{
		Addr:    addr,
		Handler: r,
	}
}

type httpServer struct {
	log     *log.Logger
	records []dal.Record
	store   *summary.Store
}

func newHTTPServer(records []dal.Record) *httpServer {
	return &httpServer{
		log:     log.New(os.Stdout, "logs: ", log.LstdFlags),
		records: records,
		store:   summary.NewStore(),
	}
}
