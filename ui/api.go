package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dhamidi/dba/army"
	"github.com/dhamidi/dba/catalog"
	"github.com/dhamidi/dba/format"
	"github.com/dhamidi/dba/troop"
)

var queryKeys = []string{"year", "terrain", "aggression", "element", "troops", "units", "region"}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %s", err)
	}
}

type errorResponse struct {
	Error *format.ASTJSONError `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Infof("request failed: %s", err)
	writeJSON(w, status, errorResponse{Error: format.ErrorToJSON(err)})
}

func requireParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing query parameter %q", name))
		return "", false
	}
	return v, true
}

type parseResponse struct {
	Source       string   `json:"source"`
	Expression   string   `json:"expression"`
	Units        []string `json:"units"`
	Permutations int      `json:"permutations"`
	Tree         any      `json:"tree"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	q, ok := requireParam(w, r, "q")
	if !ok {
		return
	}
	expr, err := s.catalog.Cache().Parse(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{
		Source:       expr.Source(),
		Expression:   expr.String(),
		Units:        expr.UnitList(),
		Permutations: expr.PermutationCount(),
		Tree:         format.NodeToJSON(expr.Root()),
	})
}

type matchResponse struct {
	Pattern   string `json:"pattern"`
	Candidate string `json:"candidate"`
	Matches   bool   `json:"matches"`
	Instance  bool   `json:"instance"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	p, ok := requireParam(w, r, "pattern")
	if !ok {
		return
	}
	c, ok := requireParam(w, r, "candidate")
	if !ok {
		return
	}
	pattern, err := s.catalog.Cache().Parse(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("pattern: %w", err))
		return
	}
	candidate, err := s.catalog.Cache().Parse(c)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("candidate: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, matchResponse{
		Pattern:   pattern.String(),
		Candidate: candidate.String(),
		Matches:   pattern.Matches(candidate),
		Instance:  pattern.IsInstance(candidate),
	})
}

type permuteResponse struct {
	Expression   string   `json:"expression"`
	Count        int      `json:"count"`
	Compositions []string `json:"compositions"`
}

func (s *Server) handlePermute(w http.ResponseWriter, r *http.Request) {
	q, ok := requireParam(w, r, "q")
	if !ok {
		return
	}
	limit := s.permutationLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("limit %q is not a positive number", l))
			return
		}
		if limit <= 0 || n < limit {
			limit = n
		}
	}

	expr, err := s.catalog.Cache().Parse(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	compositions, err := expr.PermuteLimit(limit)
	if errors.Is(err, troop.ErrTooManyPermutations) {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, permuteResponse{
		Expression:   expr.String(),
		Count:        len(compositions),
		Compositions: compositions,
	})
}

// parseQuery reads the catalog filters from the URL.
func parseQuery(r *http.Request) (catalog.Query, error) {
	values := r.URL.Query()
	q := catalog.Query{
		Terrain: strings.TrimSpace(values.Get("terrain")),
		Element: strings.TrimSpace(values.Get("element")),
		Troops:  strings.TrimSpace(values.Get("troops")),
		Units:   strings.TrimSpace(values.Get("units")),
		Region:  strings.TrimSpace(values.Get("region")),
	}
	if y := strings.TrimSpace(values.Get("year")); y != "" {
		year, err := army.ParseYear(y)
		if err != nil {
			return q, err
		}
		q.Year = &year
	}
	if a := strings.TrimSpace(values.Get("aggression")); a != "" {
		n, err := strconv.Atoi(a)
		if err != nil {
			return q, fmt.Errorf("aggression %q is not a number", a)
		}
		q.Aggression = &n
	}
	return q, nil
}

func (s *Server) handleArmies(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	variants, err := s.catalog.Search(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, format.Variants(variants))
}

type armyResponse struct {
	Ref      string               `json:"ref"`
	Name     string               `json:"name"`
	Names    []string             `json:"names"`
	Years    []string             `json:"years"`
	Variants []format.JSONVariant `json:"variants"`
}

func (s *Server) handleArmy(w http.ResponseWriter, r *http.Request) {
	ref, err := army.ParseRef(r.PathValue("ref"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a, ok := s.catalog.Army(ref)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("could not find army %s", ref))
		return
	}

	variants := a.Variants
	if ref.Version != 0 {
		v, ok := a.Variant(ref)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Errorf("could not find variant %s", ref))
			return
		}
		variants = []*army.Variant{v}
	}

	resp := armyResponse{
		Ref:      a.Ref().String(),
		Name:     a.Header.GroupName,
		Names:    a.Header.Names,
		Variants: format.Variants(variants),
	}
	for _, y := range a.Header.Years {
		resp.Years = append(resp.Years, y.String())
	}
	writeJSON(w, http.StatusOK, resp)
}
