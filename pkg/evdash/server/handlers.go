package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/evdash/evdash/pkg/evdash/dal"
)

// GetSummary defines a GET handler that recomputes the summary bundle
// for the filter criteria carried in the query string
func (h *httpServer) GetSummary(w http.ResponseWriter, r *http.Request) {
	vars := r.URL.Query()
	w.Header().Add("Content-Type", "application/json")

	criteria := dal.NewFilterCriteria()
	criteria.County = validateCategory(vars, "county")
	criteria.Model = validateCategory(vars, "model")
	criteria.City = validateCategory(vars, "city")

	yearMin, err := validateYear(w, vars, "yearMin", criteria.YearMin)
	if err != nil {
		h.log.Printf("yearMin validation failed: %v", err)
		return
	}
	yearMax, err := validateYear(w, vars, "yearMax", criteria.YearMax)
	if err != nil {
		h.log.Printf("yearMax validation failed: %v", err)
		return
	}
	if yearMin > yearMax {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(fmt.Sprintf("yearMin must not exceed yearMax: %d > %d", yearMin, yearMax)))
		h.log.Printf("year range validation failed: %d > %d", yearMin, yearMax)
		return
	}
	criteria.YearMin = yearMin
	criteria.YearMax = yearMax

	bundle := h.store.Recompute(h.records, criteria)

	err = json.NewEncoder(w).Encode(bundle)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
}

// GetLatestSummary defines a GET handler that returns the most recently
// published bundle without recomputing
func (h *httpServer) GetLatestSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(h.store.Latest())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
}

func validateCategory(vars url.Values, name string) string {
	value := vars.Get(name)
	if value != "" {
		return value
	}
	return dal.AllValues
}

func validateYear(w http.ResponseWriter, vars url.Values, name string, fallback int) (int, error) {
	year := vars.Get(name)
	if year != "" {
		yearInt, err := strconv.Atoi(year)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return 0, err
		}
		if yearInt < 0 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(fmt.Sprintf("%s must be a positive number: %d", name, yearInt)))
			return 0, errors.New(name + " must be a positive number")
		}
		return yearInt, nil
	}
	return fallback, nil
}
