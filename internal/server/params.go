// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/internal/chat"
	"github.com/pdiddy/pubflow/internal/enrich"
	"github.com/pdiddy/pubflow/pkg/types"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ScopeParams narrows records by year and domain. It is exported so echo can
// bind it when embedded.
type ScopeParams struct {
	YearFrom int      `query:"yearFrom" validate:"omitempty,min=1900,max=2100"`
	YearTo   int      `query:"yearTo" validate:"omitempty,min=1900,max=2100"`
	Domains  []string `query:"domain"`
}

func (p ScopeParams) check() error {
	if p.YearFrom > 0 && p.YearTo > 0 && p.YearFrom > p.YearTo {
		return fmt.Errorf("yearFrom %d is after yearTo %d", p.YearFrom, p.YearTo)
	}
	return nil
}

// FilterParams adds the categorical filters to ScopeParams.
type FilterParams struct {
	ScopeParams
	Types []string `query:"type"`
	Usage []string `query:"usage"`
}

func (p FilterParams) criteria() (aggregate.Criteria, error) {
	if err := p.check(); err != nil {
		return aggregate.Criteria{}, err
	}
	c := aggregate.Criteria{YearFrom: p.YearFrom, YearTo: p.YearTo, Domains: p.Domains}
	for _, raw := range p.Types {
		pt, _, ok := enrich.NormalizePublicationType(raw, "", "")
		if !ok {
			return aggregate.Criteria{}, fmt.Errorf("unknown publication type %q", raw)
		}
		c.PublicationTypes = append(c.PublicationTypes, pt)
	}
	for _, raw := range p.Usage {
		ut, _, ok := enrich.NormalizeUsageType(raw)
		if !ok {
			return aggregate.Criteria{}, fmt.Errorf("unknown usage type %q", raw)
		}
		c.UsageTypes = append(c.UsageTypes, ut)
	}
	return c, nil
}

type publicationParams struct {
	FilterParams
	Author string `query:"author"`
	Sort   string `query:"sort" validate:"omitempty,oneof=id impact"`
	Limit  int    `query:"limit" validate:"gte=0,lte=500"`
	Offset int    `query:"offset" validate:"gte=0"`
}

type networkParams struct {
	ScopeParams
	Author            string `query:"author"`
	MinCollaborations int    `query:"minCollaborations" validate:"gte=0"`
	MaxNodes          int    `query:"maxNodes" validate:"gte=0"`
	TopK              int    `query:"topK" validate:"gte=0,lte=100"`
}

type sankeyParams struct {
	FilterParams
	MinLinkValue float64 `query:"minLinkValue" validate:"gte=0"`
}

type queryRequest struct {
	Text    string             `json:"text" validate:"required,max=500"`
	Context types.QueryContext `json:"context"`
}

type chatRequest struct {
	Question string             `json:"question" validate:"required,max=1000"`
	History  []chat.Message     `json:"history" validate:"max=50"`
	Context  types.QueryContext `json:"context"`
}

func bindQuery(c echo.Context, p any) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindQueryParams(c, p); err != nil {
		return err
	}
	return c.Validate(p)
}

func bindBody(c echo.Context, p any) error {
	if err := c.Bind(p); err != nil {
		return err
	}
	return c.Validate(p)
}

// paramMessage turns a binding or validation error into a client message.
func paramMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Sprintf("invalid value for %s", ve[0].Field())
	}
	return err.Error()
}
