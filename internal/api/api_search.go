package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/pkg/kmp"
)

type searchRequestBody struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
	Mode    string `json:"mode"`
}

type searchResponseBody struct {
	Mode    kmp.Mode `json:"mode"`
	Offsets []int    `json:"offsets"`
}

type bordersRequestBody struct {
	Sequence string `json:"sequence"`
	Special  bool   `json:"special"`
}

type bordersResponseBody struct {
	Table []int `json:"table"`
}

type APISearch struct {
	Config *core.Config
	Echo   *Echo
}

func (a APISearch) Init(_ context.Context) error {
	a.Echo.POST("/search", a.Search)
	a.Echo.POST("/borders", a.Borders)

	return nil
}

// Search returns the offsets of pattern in text. Mode defaults to special.
func (a APISearch) Search(c *echo.Context) error {
	r := searchRequestBody{}
	if err := c.Bind(&r); err != nil {
		return err
	}

	mode := kmp.ModeSpecial

	if r.Mode != "" {
		var err error

		mode, err = kmp.ParseMode(r.Mode)
		if err != nil {
			return err
		}
	}

	offsets, err := kmp.Find(mode, []byte(r.Text), []byte(r.Pattern), a.Config.Symbols())
	if err != nil {
		return err
	}

	if offsets == nil {
		offsets = []int{}
	}

	return c.JSON(http.StatusOK, searchResponseBody{Mode: mode, Offsets: offsets})
}

// Borders returns the border table of a sequence.
func (a APISearch) Borders(c *echo.Context) error {
	r := bordersRequestBody{}
	if err := c.Bind(&r); err != nil {
		return err
	}

	build := kmp.BuildBorders
	if r.Special {
		build = kmp.BuildBordersSpecial
	}

	table := build([]byte(r.Sequence), a.Config.Symbols())
	if table == nil {
		table = []int{}
	}

	return c.JSON(http.StatusOK, bordersResponseBody{Table: table})
}
