// Package httpadapter exposes the usecase service as a JSON API over gin.
package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/csudoku/internal/domain"
	"svw.info/csudoku/internal/grid"
	"svw.info/csudoku/internal/usecase"
)

type Handler struct {
	UC      *usecase.Service
	logger  *slog.Logger
	metrics *Metrics
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{UC: uc, logger: logger}
}

// Register mounts the API routes, the health check, and the Prometheus
// endpoint on the engine.
func (h *Handler) Register(r *gin.Engine, reg *prometheus.Registry) {
	if reg != nil {
		h.metrics = NewMetrics(reg)
		r.Use(h.metrics.Middleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	api.POST("/solve", h.handleSolve)
	api.POST("/generate", h.handleGenerate)
	api.POST("/validate", h.handleValidate)
	api.POST("/hint", h.handleHint)
	api.POST("/save", h.handleSave)
	api.POST("/load", h.handleLoad)
	api.GET("/list", h.handleList)
}

// ---- Solve ----

type solveReq struct {
	// Either an 81-character puzzle string or a 9x9 value matrix.
	Grid  string       `json:"grid,omitempty"`
	Board *[9][9]uint8 `json:"board,omitempty"`
}

type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	Grid       string      `json:"grid,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := boardFrom(req.Grid, req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), in)
	if err != nil {
		h.metrics.countSolve("failure")
		h.logger.Info("solve rejected", "err", err, "nodes", st.Nodes, "dur", st.Duration)
		c.JSON(http.StatusUnprocessableEntity, solveResp{
			Error:      err.Error(),
			DurationMs: st.Duration.Milliseconds(),
			Nodes:      st.Nodes,
		})
		return
	}
	h.metrics.countSolve("success")
	c.JSON(http.StatusOK, solveResp{
		Board:      out.Values,
		Grid:       grid.FromBoard(out),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// boardFrom accepts either input form, preferring the puzzle string.
func boardFrom(g string, board *[9][9]uint8) (*domain.Board, error) {
	if g != "" {
		cells, err := grid.Parse(g)
		if err != nil {
			return nil, err
		}
		return grid.ToBoard(cells), nil
	}
	if board == nil {
		return nil, errMissingBoard
	}
	return &domain.Board{Values: *board}, nil
}

var errMissingBoard = &apiError{"request needs a grid string or a board"}

type apiError struct{ msg string }

func (e *apiError) Error() string { return e.msg }

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board,omitempty"`
	Grid       string       `json:"grid,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(c.Request.Context(), seed, parseDifficulty(req.Difficulty))
	if err != nil {
		c.JSON(http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Board:      p.Board,
		Grid:       grid.FromBoard(&p.Board),
		Seed:       seed,
		Difficulty: req.Difficulty,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		c.JSON(http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(c.Request.Context(), &domain.Board{Values: req.Board}, parseTier(req.MaxTier))
	if err != nil {
		c.JSON(http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id" binding:"required"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Puzzles: ps})
}
