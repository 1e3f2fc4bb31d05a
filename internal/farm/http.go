package farm

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"NodeFarm/internal/catalog"
	"NodeFarm/internal/contenttype"
	"NodeFarm/internal/render"
	"NodeFarm/pkg/kit"
)

const (
	fileNotFoundBody  = "404 - File not found"
	imageNotFoundBody = "404 - Image not found"
)

type Server struct {
	Catalog   *catalog.Catalog
	Templates *render.Templates

	Public *AssetDir
	Images *AssetDir
	HTML   *AssetDir

	Log *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.GetHead)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)

	r.Get("/", s.overview)
	r.Get("/overview", s.overview)
	r.Get("/product", s.product)
	r.Get("/api", s.api)

	r.Get("/public/*", s.public)
	r.Get("/images/*", s.image("/images/"))
	r.Get("/img/*", s.image("/img/"))
	r.Get("/html/*", s.html)

	r.NotFound(s.notFound)

	return r
}

func (s *Server) overview(w http.ResponseWriter, _ *http.Request) {
	kit.WriteHTML(w, http.StatusOK, s.Templates.Overview(s.Catalog.All()))
}

func (s *Server) product(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(r.URL.Query().Get("id"))
	if !ok {
		s.notFound(w, r)
		return
	}

	p, ok := s.Catalog.At(id)
	if !ok {
		s.notFound(w, r)
		return
	}
	kit.WriteHTML(w, http.StatusOK, s.Templates.Product(p))
}

func (s *Server) api(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Catalog.All())
}

func (s *Server) public(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/public/")
	b, err := s.Public.ReadFile(name)
	if err != nil {
		s.assetMiss("public", name, err)
		kit.WriteText(w, http.StatusNotFound, fileNotFoundBody)
		return
	}
	kit.WriteBytes(w, http.StatusOK, contenttype.Resolve(name), b)
}

// image serves from the images root for either of the image prefixes.
// r.URL.Path is already percent-decoded.
func (s *Server) image(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		b, err := s.Images.ReadFile(name)
		if err != nil {
			s.assetMiss("images", name, err)
			kit.WriteText(w, http.StatusNotFound, imageNotFoundBody)
			return
		}
		kit.WriteBytes(w, http.StatusOK, contenttype.Resolve(name), b)
	}
}

func (s *Server) html(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/html/")
	b, err := s.HTML.ReadFile(name)
	if err != nil {
		s.assetMiss("html", name, err)
		s.notFound(w, r)
		return
	}
	kit.WriteBytes(w, http.StatusOK, kit.ContentTypeHTML, b)
}

func (s *Server) notFound(w http.ResponseWriter, _ *http.Request) {
	kit.WriteHTML(w, http.StatusNotFound, s.Templates.NotFound())
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	for name, d := range map[string]*AssetDir{"public": s.Public, "images": s.Images, "html": s.HTML} {
		if err := d.Check(); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.String("root", name), zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", map[string]any{"root": name})
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) assetMiss(root, name string, err error) {
	if s.Log != nil {
		s.Log.Debug("asset miss", zap.String("root", root), zap.String("name", name), zap.Error(err))
	}
}

// ParseID accepts a product id made of ASCII digits only. Signs,
// whitespace and values that overflow int are rejected.
func ParseID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
