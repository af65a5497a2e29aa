package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JustJay7/court-case-sync/internal/cache"
	"github.com/JustJay7/court-case-sync/internal/casetype"
	"github.com/JustJay7/court-case-sync/internal/config"
	"github.com/JustJay7/court-case-sync/internal/database"
	"github.com/JustJay7/court-case-sync/internal/deadline"
	"github.com/JustJay7/court-case-sync/internal/syncer"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

// Syncer runs sync passes on demand.
type Syncer interface {
	SyncCase(ctx context.Context, caseID string) (*syncer.Result, error)
	SyncAll(ctx context.Context) (*syncer.Summary, error)
}

type Handlers struct {
	store  *database.Store
	cache  cache.Cache
	syncer Syncer
	logger *logger.Logger
	cfg    *config.Config
}

func NewHandlers(store *database.Store, cache cache.Cache, s Syncer, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		store:  store,
		cache:  cache,
		syncer: s,
		logger: logger,
		cfg:    cfg,
	}
}

func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func queryLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit < 1 {
		return def
	}
	return limit
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	dbHealthy := h.store.Ping(c.Request.Context()) == nil

	status := http.StatusOK
	state := "healthy"
	if !dbHealthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status":   state,
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.cache.Stats(),
	})
}

type createCaseRequest struct {
	CaseNumber string `json:"case_number" binding:"required"`
	CourtName  string `json:"court_name" binding:"required"`
	PartyName  string `json:"party_name"`
	Title      string `json:"title"`
}

// CreateCase starts tracking a case.
func (h *Handlers) CreateCase(c *gin.Context) {
	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	rec := &database.CaseRecord{
		CaseNumber: req.CaseNumber,
		CourtName:  req.CourtName,
		PartyName:  req.PartyName,
		Title:      req.Title,
	}
	if err := h.store.CreateCase(c.Request.Context(), rec); err != nil {
		h.logger.Error("Failed to create case", "case_number", req.CaseNumber, "error", err)
		fail(c, http.StatusInternalServerError, err)
		return
	}

	resp := gin.H{
		"success": true,
		"data":    rec,
	}
	if res, ok := casetype.Resolve(rec.CaseNumber); ok {
		resp["caseType"] = res
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCases returns tracked cases. ?all=true includes inactive ones.
func (h *Handlers) ListCases(c *gin.Context) {
	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))
	cases, err := h.store.ListCases(c.Request.Context(), !all)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cases,
		"total":   len(cases),
	})
}

// GetCase returns one case.
func (h *Handlers) GetCase(c *gin.Context) {
	rec, err := h.store.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.caseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rec,
	})
}

func (h *Handlers) caseError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrCaseNotFound) {
		fail(c, http.StatusNotFound, err)
		return
	}
	fail(c, http.StatusInternalServerError, err)
}

// SyncCase runs one pass for a case and returns its result. A failed pass
// still reports its result alongside the error.
func (h *Handlers) SyncCase(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.syncTimeout())
	defer cancel()

	result, err := h.syncer.SyncCase(ctx, c.Param("id"))
	if result == nil {
		h.caseError(c, err)
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   err.Error(),
			"data":    result,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// SyncAll runs a pass for every active case.
func (h *Handlers) SyncAll(c *gin.Context) {
	summary, err := h.syncer.SyncAll(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summary,
	})
}

func (h *Handlers) syncTimeout() time.Duration {
	if h.cfg == nil || h.cfg.ScraperTimeout <= 0 {
		return 2 * time.Minute
	}
	attempts := h.cfg.FetchMaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return h.cfg.ScraperTimeout*time.Duration(attempts) + h.cfg.FetchMaxBackoff*time.Duration(attempts)
}

// ListUpdates returns a case's detected updates, newest first.
func (h *Handlers) ListUpdates(c *gin.Context) {
	updates, err := h.store.ListUpdates(c.Request.Context(), c.Param("id"), queryLimit(c, 50))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updates,
	})
}

// ListDeadlines returns a case's deadlines.
func (h *Handlers) ListDeadlines(c *gin.Context) {
	deadlines, err := h.store.ListDeadlines(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    deadlines,
	})
}

// ListParties returns a case's parties and representatives.
func (h *Handlers) ListParties(c *gin.Context) {
	ctx := c.Request.Context()
	parties, err := h.store.ListPartyRecords(ctx, c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	reps, err := h.store.ListRepresentatives(ctx, c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"parties":         parties,
		"representatives": reps,
	})
}

// ListSyncRuns returns a case's recent sync passes.
func (h *Handlers) ListSyncRuns(c *gin.Context) {
	runs, err := h.store.ListSyncRuns(c.Request.Context(), c.Param("id"), queryLimit(c, 20))
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    runs,
	})
}

// CompleteDeadline marks a deadline done.
func (h *Handlers) CompleteDeadline(c *gin.Context) {
	rec, err := h.store.CompleteDeadline(c.Request.Context(), c.Param("id"), time.Now())
	if errors.Is(err, database.ErrDeadlineNotFound) {
		fail(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rec,
	})
}

// ResolveCaseType classifies a case number.
func (h *Handlers) ResolveCaseType(c *gin.Context) {
	res, ok := casetype.Resolve(c.Param("number"))
	if !ok {
		fail(c, http.StatusNotFound, errors.New("unknown case type"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res,
	})
}

// DeadlineCatalog lists the statutory deadline kinds.
func (h *Handlers) DeadlineCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"version": deadline.CatalogVersion,
		"data":    deadline.Catalog(),
	})
}
