// Package backendtest runs an in-memory REST backend that speaks the same
// contract as the invoice service, for tests of the gateway and above.
package backendtest

import (
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"invoicedesk/internal/domain/entity"
	logs "invoicedesk/internal/infra/log"

	"github.com/labstack/echo/v4"
)

// Request is one call the server received.
type Request struct {
	Method    string
	Path      string
	RequestID string
}

// Upload is one document the server received.
type Upload struct {
	Filename string
	Content  []byte
}

// Reply is a canned response.
type Reply struct {
	Status int
	Body   any
}

// Server is the fake backend. All methods are safe for concurrent use.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[entity.Kind][]map[string]any
	requests    []Request
	uploads     []Upload
	listFailure map[entity.Kind]Reply
	putFailure  map[entity.Kind]Reply
	uploadReply *Reply
	uploadGate  chan struct{}
}

// New starts a server and closes it when t finishes.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		collections: map[entity.Kind][]map[string]any{},
		listFailure: map[entity.Kind]Reply{},
		putFailure:  map[entity.Kind]Reply{},
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(s.record)

	api := e.Group("/api")
	api.GET("/status", s.status)
	api.POST("/upload", s.upload)
	api.GET("/:kind", s.list)
	api.PUT("/:kind/:id", s.update)

	return e
}

// record keeps every request with the X-Request-Id it carried and echoes
// the id on the response.
func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := req.Header.Get(logs.HeaderXRequestID)

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    req.Method,
			Path:      req.URL.Path,
			RequestID: requestID,
		})
		s.mu.Unlock()

		if requestID != "" {
			c.Response().Header().Set(logs.HeaderXRequestID, requestID)
		}

		return next(c)
	}
}

func (s *Server) status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"status": "Backend is running"})
}

func (s *Server) list(c echo.Context) error {
	kind, err := entity.ParseKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "Not found"})
	}

	s.mu.Lock()
	failure, failing := s.listFailure[kind]
	items := cloneAll(s.collections[kind])
	s.mu.Unlock()

	if failing {
		return c.JSON(failure.Status, failure.Body)
	}
	if items == nil {
		items = []map[string]any{}
	}

	return c.JSON(http.StatusOK, items)
}

// update applies the body with $set semantics to the first record whose
// identity matches the path.
func (s *Server) update(c echo.Context) error {
	kind, err := entity.ParseKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "Not found"})
	}

	var body map[string]any
	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()
	if err = decoder.Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if failure, failing := s.putFailure[kind]; failing {
		return c.JSON(failure.Status, failure.Body)
	}

	id := c.Param("id")
	items := s.collections[kind]
	index := slices.IndexFunc(items, func(item map[string]any) bool {
		return kind.IdentityOf(entity.Record(item)) == id
	})
	if index < 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "Not found"})
	}
	maps.Copy(items[index], body)

	return c.JSON(http.StatusOK, map[string]any{"message": "Updated successfully"})
}

func (s *Server) upload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "No file uploaded"})
	}
	file, err := header.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	s.mu.Lock()
	s.uploads = append(s.uploads, Upload{Filename: header.Filename, Content: content})
	gate := s.uploadGate
	reply := s.uploadReply
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	}

	if reply == nil {
		return c.JSON(http.StatusOK, map[string]any{
			"message": "File processed successfully!",
			"data": map[string]any{
				"invoices":  []any{},
				"products":  []any{},
				"customers": []any{},
			},
		})
	}
	if raw, ok := reply.Body.(string); ok {
		return c.String(reply.Status, raw)
	}

	return c.JSON(reply.Status, reply.Body)
}

// Seed replaces the collection of kind.
func (s *Server) Seed(kind entity.Kind, records ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[kind] = cloneAll(records)
}

// Records returns a copy of the collection of kind.
func (s *Server) Records(kind entity.Kind) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneAll(s.collections[kind])
}

// FailList makes GET /api/<kind> answer with reply until cleared by
// passing a zero Reply.
func (s *Server) FailList(kind entity.Kind, reply Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reply.Status == 0 {
		delete(s.listFailure, kind)

		return
	}
	s.listFailure[kind] = reply
}

// FailUpdate makes PUT /api/<kind>/<id> answer with reply.
func (s *Server) FailUpdate(kind entity.Kind, reply Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putFailure[kind] = reply
}

// ReplyToUpload sets the response of POST /api/upload. A string body is
// sent verbatim as text.
func (s *Server) ReplyToUpload(reply Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploadReply = &reply
}

// HoldUploads makes upload handlers wait until the returned function is
// called.
func (s *Server) HoldUploads() (release func()) {
	gate := make(chan struct{})

	s.mu.Lock()
	s.uploadGate = gate
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { close(gate) })
	}
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.requests)
}

// Count returns how many requests matched method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}

	return n
}

// Uploads returns the documents received so far.
func (s *Server) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.uploads)
}

func cloneAll(records []map[string]any) []map[string]any {
	if records == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, maps.Clone(r))
	}

	return out
}
