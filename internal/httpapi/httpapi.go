package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/nordport/terminal-orders/internal/application"
	"github.com/nordport/terminal-orders/internal/domain"
	"github.com/nordport/terminal-orders/internal/observability"
	"github.com/nordport/terminal-orders/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type OrderService interface {
	List(ctx context.Context, c domain.Criteria) ([]domain.Order, application.ListStats, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, validation.Result, error)
	Update(ctx context.Context, orderID string, order *domain.Order) (*domain.Order, validation.Result, error)
	Delete(ctx context.Context, orderID string) error
	CheckReference(ctx context.Context, reference, terminalID, excludeOrderID string) validation.ReferenceResult
	Terminals(ctx context.Context) ([]domain.Terminal, error)
}

type Server struct {
	service OrderService
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(service OrderService, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.Noop{}
	}
	s := &Server{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		ServerTimingApp(s.metrics),
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", s.listOrders)
		r.Post("/", s.createOrder)
		r.Get("/unique-reference", s.checkReference)
		r.Get("/{order_id}", s.getOrder)
		r.Patch("/{order_id}", s.updateOrder)
		r.Delete("/{order_id}", s.deleteOrder)
	})

	r.Get("/terminals", s.listTerminals)

	s.router = r
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, st, err := s.service.List(r.Context(), criteria)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	observability.AppendServerTiming(w, "fetch", st.FetchMs, "")
	observability.AppendServerTiming(w, "filter", st.FilterMs, "")
	w.Header().Set("X-Total-Count", strconv.Itoa(st.Total))

	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	order, err := s.service.Get(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := s.decodeOrder(w, r)
	if !ok {
		return
	}
	if order.Reference == "" {
		http.Error(w, "reference is required", http.StatusBadRequest)
		return
	}

	created, res, err := s.service.Create(r.Context(), order)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if !res.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	order, ok := s.decodeOrder(w, r)
	if !ok {
		return
	}

	updated, res, err := s.service.Update(r.Context(), orderID, order)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if !res.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if err := s.service.Delete(r.Context(), orderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) checkReference(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := s.service.CheckReference(
		r.Context(),
		q.Get("reference"),
		q.Get("terminal_id"),
		q.Get("exclude_order_id"),
	)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) listTerminals(w http.ResponseWriter, r *http.Request) {
	terminals, err := s.service.Terminals(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if terminals == nil {
		terminals = []domain.Terminal{}
	}
	writeJSON(w, http.StatusOK, terminals)
}

func (s *Server) decodeOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return nil, false
	}

	var order domain.Order
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&order); err != nil {
		s.logger.Error("bad order json", zap.Error(err))
		http.Error(w, "bad json", http.StatusBadRequest)
		return nil, false
	}
	return &order, true
}

// criteriaFromQuery reads the board filters from query params. Absent
// params stay unconstrained.
func criteriaFromQuery(r *http.Request) (domain.Criteria, error) {
	q := r.URL.Query()
	c := domain.Criteria{
		Bucket:   domain.DateBucket(q.Get("bucket")),
		Location: q.Get("location"),
		Search:   q.Get("q"),
	}

	switch c.Bucket {
	case "", domain.BucketAll, domain.BucketToday, domain.BucketTomorrow,
		domain.BucketThisWeek, domain.BucketNextWeek, domain.BucketThisMonth:
	default:
		return c, errors.New("unknown bucket")
	}

	if v := q.Get("status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.New("status must be an integer")
		}
		st := domain.ProcessStatus(n)
		c.Status = &st
	}
	if v := q.Get("service"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.New("service must be an integer")
		}
		svc := domain.ServiceType(n)
		c.Service = &svc
	}
	if v := q.Get("commodity"); v != "" {
		com := domain.Commodity(v)
		c.Commodity = &com
	}
	if v := q.Get("priority"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.New("priority must be a boolean")
		}
		c.Priority = &b
	}
	if v := q.Get("in_terminal"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.New("in_terminal must be a boolean")
		}
		c.InTerminal = &b
	}
	return c, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}
