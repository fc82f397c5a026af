package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/dhamidi/dba/army"
	"github.com/dhamidi/dba/catalog"
	"github.com/dhamidi/dba/config"
	"github.com/tliron/commonlog"
)

//go:embed templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("dba.ui")

type Server struct {
	catalog          *catalog.Catalog
	permutationLimit int
	templates        *template.Template
	mux              *http.ServeMux
}

type Option func(*Server)

// WithPermutationLimit caps the compositions /api/permute enumerates.
func WithPermutationLimit(limit int) Option {
	return func(s *Server) {
		s.permutationLimit = limit
	}
}

// NewServer serves the HTML pages and the JSON API over cat. A nil catalog
// serves the expression endpoints only.
func NewServer(cat *catalog.Catalog, opts ...Option) (*Server, error) {
	if cat == nil {
		cat = catalog.New()
	}

	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))
	funcMap := template.FuncMap{
		"terrain": army.JoinTerrains,
		"regions": army.World.AllNames,
		"years": func(r *army.YearRange) string {
			if r == nil {
				return ""
			}
			return r.String()
		},
		"refs": func(refs []army.Ref) string {
			names := make([]string, len(refs))
			for i, r := range refs {
				names[i] = r.String()
			}
			return strings.Join(names, ", ")
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		catalog:          cat,
		permutationLimit: config.DefaultPermutationLimit,
		templates:        tmpl,
		mux:              http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /api/parse", s.handleParse)
	s.mux.HandleFunc("GET /api/match", s.handleMatch)
	s.mux.HandleFunc("GET /api/permute", s.handlePermute)
	s.mux.HandleFunc("GET /api/armies", s.handleArmies)
	s.mux.HandleFunc("GET /api/armies/{ref...}", s.handleArmy)
	s.mux.HandleFunc("GET /armies/{ref...}", s.handleArmyPage)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debugf("%s %s", r.Method, r.URL)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %s", name, err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// overlayFSType prefers files from a directory on disk over the embedded
// ones, so templates can be edited without rebuilding.
type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)
	for _, fsys := range []fs.FS{o.secondary, o.primary} {
		if list, err := fs.ReadDir(fsys, name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}

type indexData struct {
	Params   map[string]string
	Query    bool
	Variants []*army.Variant
	Armies   []*army.Army
	Error    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{Params: make(map[string]string)}
	for _, key := range queryKeys {
		data.Params[key] = r.URL.Query().Get(key)
	}

	q, err := parseQuery(r)
	switch {
	case err != nil:
		data.Error = err.Error()
	case q.IsZero():
		data.Armies = s.catalog.Armies()
	default:
		data.Query = true
		data.Variants, err = s.catalog.Search(q)
		if err != nil {
			data.Error = err.Error()
		}
	}
	s.render(w, "index.html", data)
}

type armyData struct {
	Army    *army.Army
	Enemies map[army.Ref][]*army.Variant
	Allies  map[army.Ref][]*army.Variant
}

func (s *Server) handleArmyPage(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookupArmy(w, r)
	if !ok {
		return
	}
	data := armyData{
		Army:    a,
		Enemies: make(map[army.Ref][]*army.Variant),
		Allies:  make(map[army.Ref][]*army.Variant),
	}
	for _, v := range a.Variants {
		data.Enemies[v.Ref] = s.catalog.Enemies(v)
		data.Allies[v.Ref] = s.catalog.Allies(v)
	}
	s.render(w, "army.html", data)
}

func (s *Server) lookupArmy(w http.ResponseWriter, r *http.Request) (*army.Army, bool) {
	ref, err := army.ParseRef(r.PathValue("ref"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	a, ok := s.catalog.Army(ref)
	if !ok {
		http.Error(w, "army not found", http.StatusNotFound)
		return nil, false
	}
	return a, true
}
