/*
DESCRIPTION
  server.go provides the wave counter web front end: a video upload form, an
  upload handler that runs the analysis and removes the file afterwards, and
  a results page.

AUTHORS
  Trek Hopton <trek@ausocean.org>
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package server provides an HTTP front end for the wave counter. Uploaded
// videos are persisted to a working directory, analysed, and deleted once a
// count has been obtained.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/waves/counter"
)

// Used to indicate package in logging.
const pkg = "server: "

// Upload handling defaults.
const (
	defaultMaxUpload  = 100 << 20 // 100 MB.
	defaultFormMemory = 16 << 20  // Bytes of multipart form held in memory.
)

//go:embed templates/*.html
var templatesFS embed.FS

// Analyzer is the interface the server expects for running the wave counter
// over an uploaded file.
type Analyzer interface {
	Analyze(path string) (*counter.Report, error)
}

// AnalyzerFunc adapts a plain function to the Analyzer interface.
type AnalyzerFunc func(path string) (*counter.Report, error)

// Analyze calls f(path).
func (f AnalyzerFunc) Analyze(path string) (*counter.Report, error) { return f(path) }

// Option is a functional option for the Server.
type Option func(*Server)

// MaxUpload sets the maximum accepted upload size in bytes.
func MaxUpload(n int64) Option {
	return func(s *Server) { s.maxUpload = n }
}

// Extensions sets the allowed video file extensions, e.g. ".mp4", ".avi".
func Extensions(exts ...string) Option {
	return func(s *Server) {
		s.exts = make(map[string]bool)
		for _, e := range exts {
			s.exts[strings.ToLower(e)] = true
		}
	}
}

// Server handles video uploads and renders wave counting results.
type Server struct {
	analyzer  Analyzer
	dir       string
	log       logging.Logger
	maxUpload int64
	exts      map[string]bool
	tmpl      *template.Template
	mux       *http.ServeMux
}

// New returns a new Server that stores uploads under dir and analyses them
// with the given Analyzer. The directory is created if it does not exist.
func New(a Analyzer, dir string, l logging.Logger, opts ...Option) (*Server, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}

	s := &Server{
		analyzer:  a,
		dir:       dir,
		log:       l,
		maxUpload: defaultMaxUpload,
		exts:      map[string]bool{".mp4": true},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tmpl, err = template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse templates: %w", err)
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/upload", s.handleUpload)
	s.mux.HandleFunc("/results", s.handleResults)
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleIndex renders the video upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	err := s.tmpl.ExecuteTemplate(w, "upload.html", nil)
	if err != nil {
		s.log.Error(pkg+"could not render upload form", "error", err.Error())
	}
}

// handleUpload receives a video over a multipart form, persists it under the
// upload directory, runs the analysis, removes the file, and redirects to
// the results page. The file is removed regardless of the analysis outcome.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	err := r.ParseMultipartForm(defaultFormMemory)
	if err != nil {
		s.log.Warning(pkg+"could not parse upload form", "error", err.Error())
		http.Error(w, "upload too large or malformed", http.StatusBadRequest)
		return
	}

	f, hdr, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file in request", http.StatusBadRequest)
		return
	}
	defer f.Close()

	name := secureName(hdr.Filename)
	if name == "" || !s.exts[strings.ToLower(filepath.Ext(name))] {
		http.Error(w, "invalid file type, please upload a video file", http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		s.log.Error(pkg+"could not create upload file", "path", path, "error", err.Error())
		http.Error(w, "could not save upload", http.StatusInternalServerError)
		return
	}

	_, err = io.Copy(dst, f)
	dst.Close()
	if err != nil {
		os.Remove(path)
		s.log.Error(pkg+"could not save upload", "path", path, "error", err.Error())
		http.Error(w, "could not save upload", http.StatusInternalServerError)
		return
	}

	// The upload is only needed for the duration of the analysis.
	defer os.Remove(path)

	s.log.Info(pkg+"processing video", "path", path)
	rep, err := s.analyzer.Analyze(path)
	if err != nil {
		s.log.Error(pkg+"could not analyse video", "path", path, "error", err.Error())
		http.Error(w, "could not process video", http.StatusUnprocessableEntity)
		return
	}
	s.log.Info(pkg+"finished processing", "path", path, "waves", rep.Count)

	http.Redirect(w, r, "/results?count="+url.QueryEscape(fmt.Sprint(rep.Count)), http.StatusSeeOther)
}

// handleResults renders the wave counting results page.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	count := r.URL.Query().Get("count")
	if count == "" {
		count = "N/A"
	}
	err := s.tmpl.ExecuteTemplate(w, "results.html", struct{ Count string }{Count: count})
	if err != nil {
		s.log.Error(pkg+"could not render results", "error", err.Error())
	}
}

// secureName reduces an uploaded filename to a safe basename, keeping only
// alphanumerics, dots, dashes and underscores.
func secureName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" || strings.Trim(out, "._-") == "" {
		return ""
	}
	return out
}
