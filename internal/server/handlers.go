// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/internal/chat"
	"github.com/pdiddy/pubflow/internal/dataset"
	"github.com/pdiddy/pubflow/internal/network"
	"github.com/pdiddy/pubflow/internal/query"
	"github.com/pdiddy/pubflow/internal/sankey"
	"github.com/pdiddy/pubflow/internal/stats"
	"github.com/pdiddy/pubflow/pkg/types"
)

type handlers struct {
	store     *dataset.Store
	assistant *chat.Assistant
	defaults  types.NetworkConfig
	logger    *log.Logger
}

type summaryResponse struct {
	types.Summary
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
}

type publicationPage struct {
	Total  int                       `json:"total"`
	Offset int                       `json:"offset"`
	Data   []types.PublicationRecord `json:"data"`
}

type reloadResponse struct {
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	LoadedAt time.Time `json:"loadedAt"`
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorBody(paramMessage(err)))
}

// snapshot returns the current dataset, writing a 503 when it cannot be read.
func (h *handlers) snapshot(c echo.Context) (*dataset.Snapshot, bool) {
	snap, err := h.store.Load(c.Request().Context())
	if err != nil {
		h.logger.Error("loading dataset", "err", err)
		_ = c.JSON(http.StatusServiceUnavailable, errorBody("Dataset unavailable"))
		return nil, false
	}
	return snap, true
}

func (h *handlers) summary(c echo.Context) error {
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, summaryResponse{
		Summary:  stats.Summarize(snap.Records, stats.Options{}),
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt,
	})
}

func (h *handlers) publications(c echo.Context) error {
	params := new(publicationParams)
	if err := bindQuery(c, params); err != nil {
		return badRequest(c, err)
	}
	criteria, err := params.criteria()
	if err != nil {
		return badRequest(c, err)
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	matched := criteria.Apply(snap.Records)
	if author := strings.ToLower(strings.TrimSpace(params.Author)); author != "" {
		matched = aggregate.Where(matched, func(r types.PublicationRecord) bool {
			return strings.Contains(strings.ToLower(r.AuthorsRaw), author)
		})
	}
	if params.Sort == "impact" {
		matched = aggregate.RankByImpact(matched, 0)
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	start := min(params.Offset, len(matched))
	end := min(start+limit, len(matched))

	return c.JSON(http.StatusOK, publicationPage{
		Total:  len(matched),
		Offset: start,
		Data:   matched[start:end],
	})
}

func (h *handlers) network(c echo.Context) error {
	params := new(networkParams)
	if err := bindQuery(c, params); err != nil {
		return badRequest(c, err)
	}
	if err := params.check(); err != nil {
		return badRequest(c, err)
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	maxNodes := params.MaxNodes
	if maxNodes == 0 {
		maxNodes = h.defaults.MaxNodes
	}
	topK := params.TopK
	if topK == 0 {
		topK = h.defaults.TopK
	}
	graph := network.Build(snap.Records, network.Filter{
		YearFrom:          params.YearFrom,
		YearTo:            params.YearTo,
		Domains:           params.Domains,
		MinCollaborations: params.MinCollaborations,
		MaxNodes:          maxNodes,
		AuthorContains:    params.Author,
	}, network.Options{AsOfYear: snap.AsOfYear, TopK: topK})
	return c.JSON(http.StatusOK, graph)
}

func (h *handlers) sankey(c echo.Context) error {
	params := new(sankeyParams)
	if err := bindQuery(c, params); err != nil {
		return badRequest(c, err)
	}
	criteria, err := params.criteria()
	if err != nil {
		return badRequest(c, err)
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}

	flow, err := sankey.Build(snap.Records, sankey.Filter{
		YearFrom:         criteria.YearFrom,
		YearTo:           criteria.YearTo,
		PublicationTypes: criteria.PublicationTypes,
		UsageTypes:       criteria.UsageTypes,
		Domains:          criteria.Domains,
		MinLinkValue:     params.MinLinkValue,
	}, sankey.Options{AsOfYear: snap.AsOfYear})
	if err != nil {
		return h.buildFailed(c, err)
	}
	return c.JSON(http.StatusOK, flow)
}

// buildFailed maps builder errors to responses. Structural errors mean the
// flow graph is inconsistent and are reported as unprocessable.
func (h *handlers) buildFailed(c echo.Context, err error) error {
	var structural *sankey.StructuralError
	if errors.As(err, &structural) {
		h.logger.Error("flow graph failed validation", "problems", len(structural.Problems), "err", err)
		return c.JSON(http.StatusUnprocessableEntity, errorBody(err.Error()))
	}
	h.logger.Error("building flow graph", "err", err)
	return c.JSON(http.StatusInternalServerError, errorBody("Internal server error"))
}

func (h *handlers) query(c echo.Context) error {
	req := new(queryRequest)
	if err := bindBody(c, req); err != nil {
		return badRequest(c, err)
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}
	if req.Context.AsOfYear == 0 {
		req.Context.AsOfYear = snap.AsOfYear
	}
	return c.JSON(http.StatusOK, query.Ask(req.Text, snap.Records, req.Context))
}

func (h *handlers) chat(c echo.Context) error {
	req := new(chatRequest)
	if err := bindBody(c, req); err != nil {
		return badRequest(c, err)
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return nil
	}
	if req.Context.AsOfYear == 0 {
		req.Context.AsOfYear = snap.AsOfYear
	}
	reply := h.assistant.Respond(c.Request().Context(), chat.Request{
		Question: req.Question,
		History:  req.History,
		Context:  req.Context,
	}, snap.Records)
	return c.JSON(http.StatusOK, reply)
}

func (h *handlers) reload(c echo.Context) error {
	snap, err := h.store.Reload(c.Request().Context())
	if err != nil {
		h.logger.Error("reloading dataset", "err", err)
		return c.JSON(http.StatusInternalServerError, errorBody("Reload failed: "+err.Error()))
	}
	return c.JSON(http.StatusOK, reloadResponse{
		Source:   snap.Source,
		Records:  len(snap.Records),
		LoadedAt: snap.LoadedAt,
	})
}
