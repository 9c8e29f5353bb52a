// Package server exposes the journal and the statistics engine over a
// small JSON API. It is a thin adapter: all derivation happens in stats.
package server

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/pkg/id"
	"github.com/rustyeddy/tradelog/stats"
	"github.com/rustyeddy/tradelog/trade"
)

type Server struct {
	addr   string
	owner  string
	store  journal.Store
	log    *zap.Logger
	router *gin.Engine
	now    func() time.Time
}

type Config struct {
	Addr   string
	Owner  string
	Store  journal.Store
	Logger *zap.Logger
}

func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Owner == "" {
		return nil, errors.New("must be signed in: no owner configured")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		addr:   cfg.Addr,
		owner:  cfg.Owner,
		store:  cfg.Store,
		log:    cfg.Logger,
		router: router,
		now:    time.Now,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	api.GET("/trades", s.handleListTrades)
	api.POST("/trades", s.handleAddTrade)
	api.GET("/stats", s.handleStats)
	api.GET("/equity", s.handleEquity)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	s.log.Info("listening", zap.String("addr", s.addr), zap.String("owner", s.owner))
	return s.router.Run(s.addr)
}

// loadTrades fetches the owner's records. A storage failure is recoverable:
// it degrades to an empty set so every derived figure reads as zero.
func (s *Server) loadTrades() []trade.Record {
	recs, err := s.store.ListTrades(s.owner)
	if err != nil {
		s.log.Warn("list trades failed, serving empty set", zap.Error(err))
		return nil
	}
	return recs
}

func (s *Server) startingCapital() float64 {
	v, err := s.store.StartingCapital()
	if err != nil {
		s.log.Warn("starting capital unavailable, using default", zap.Error(err))
		return journal.DefaultStartingCapital
	}
	return v
}

func (s *Server) parseFilter(c *gin.Context) (stats.Filter, error) {
	side, err := stats.ParseSide(c.Query("direction"))
	if err != nil {
		return stats.Filter{}, err
	}
	window, err := stats.ParseWindow(c.Query("window"))
	if err != nil {
		return stats.Filter{}, err
	}
	return stats.Filter{Side: side, Window: window}, nil
}

func (s *Server) handleListTrades(c *gin.Context) {
	f, err := s.parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs := f.Apply(s.loadTrades(), s.now())
	out := make([]tradeJSON, 0, len(recs))
	for _, r := range recs {
		out = append(out, toTradeJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"trades": out})
}

func (s *Server) handleAddTrade(c *gin.Context) {
	var req struct {
		Date      string   `json:"date"`
		Symbol    string   `json:"symbol" binding:"required"`
		Direction string   `json:"direction" binding:"required"`
		Entry     float64  `json:"entry"`
		Exit      float64  `json:"exit"`
		Size      float64  `json:"size"`
		Stop      *float64 `json:"stop"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	direction := trade.ParseDirection(req.Direction)
	if direction == trade.Unknown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be long or short"})
		return
	}
	if !finite(req.Entry) || !finite(req.Exit) || !finite(req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry, exit and size must be finite numbers"})
		return
	}

	date := s.now()
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	rec := trade.Record{
		ID:        id.New(),
		OwnerID:   s.owner,
		Date:      date,
		Symbol:    req.Symbol,
		Direction: direction,
		Entry:     req.Entry,
		Exit:      req.Exit,
		Size:      req.Size,
		Stop:      req.Stop,
		PnLUSD:    trade.RealizedPnL(direction, req.Entry, req.Exit, req.Size),
	}
	if notional := req.Entry * req.Size; notional != 0 {
		pct := rec.PnLUSD / math.Abs(notional) * 100
		rec.PnLPct = &pct
	}

	if err := s.store.InsertTrade(rec); err != nil {
		s.log.Error("insert trade failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trade": toTradeJSON(rec)})
}

func (s *Server) handleStats(c *gin.Context) {
	f, err := s.parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := stats.Compute(s.loadTrades(), s.startingCapital(), f, s.now())
	c.JSON(http.StatusOK, toSnapshotJSON(snap))
}

func (s *Server) handleEquity(c *gin.Context) {
	f, err := s.parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	curve := stats.EquityCurve(f.Apply(s.loadTrades(), s.now()))
	points := make([]equityJSON, 0, len(curve))
	for _, p := range curve {
		points = append(points, equityJSON{
			Date:       p.Date.Format(time.DateOnly),
			Cumulative: p.Cumulative,
		})
	}
	c.JSON(http.StatusOK, gin.H{"equity": points})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
