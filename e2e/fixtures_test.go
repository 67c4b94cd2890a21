//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var compounds = []map[string]any{
	{"id": 1, "name": "Sodium Chloride", "formula": "NaCl", "molecular_weight": 58.44},
	{"id": 2, "name": "Sodium Bicarbonate", "formula": "NaHCO3", "molecular_weight": 84.007},
	{"id": 3, "name": "Water", "formula": "H2O", "molecular_weight": 18.015},
}

// StartSearchServer serves /api/search from a fixed compound list. A query
// equal to a compound id also matches, which is how compound pages resolve.
func StartSearchServer(t *testing.T) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))
		out := []map[string]any{}
		for _, c := range compounds {
			name := strings.ToLower(c["name"].(string))
			formula := strings.ToLower(c["formula"].(string))
			if fmt.Sprint(c["id"]) == q || strings.Contains(name, q) || strings.Contains(formula, q) {
				out = append(out, c)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

// StartChemVista starts the app against a fresh search server and waits
// for the first frame
func (tf *TUITestFramework) StartChemVista() error {
	tf.t.Helper()
	return tf.StartApp("--base-url", StartSearchServer(tf.t))
}
