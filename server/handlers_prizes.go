package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/prize"
)

// listPrizes returns the filtered and sorted display records. Query params
// update the kiosk's filter state before the list is built, mirroring the
// settings widget: sortBy, order, rarity, showOutOfStock.
func (s *Server) listPrizes(c *gin.Context) {
	if v, ok := c.GetQuery("sortBy"); ok {
		by, valid := parseSortBy(v)
		if !valid {
			c.JSON(http.StatusBadRequest, apiError{Error: "unknown sortBy " + strconv.Quote(v), Code: "validation"})
			return
		}
		s.filters.SetSortBy(by)
	}
	if v, ok := c.GetQuery("order"); ok {
		order, valid := parseOrder(v)
		if !valid {
			c.JSON(http.StatusBadRequest, apiError{Error: "unknown order " + strconv.Quote(v), Code: "validation"})
			return
		}
		s.filters.SetOrder(order)
	}
	if v, ok := c.GetQuery("rarity"); ok {
		filter, valid := parseRarity(v)
		if !valid {
			c.JSON(http.StatusBadRequest, apiError{Error: "unknown rarity " + strconv.Quote(v), Code: "validation"})
			return
		}
		s.filters.SetRarity(filter)
	}
	if v, ok := c.GetQuery("showOutOfStock"); ok {
		show, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apiError{Error: "showOutOfStock must be a boolean", Code: "validation"})
			return
		}
		s.filters.SetShowOutOfStock(show)
	}

	c.JSON(http.StatusOK, s.display.FilteredAndSorted())
}

func (s *Server) prizeStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.display.Stats())
}

func (s *Server) getPrize(c *gin.Context) {
	info, err := s.display.DisplayInfo(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) addPrize(c *gin.Context) {
	var req prize.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError{Error: "invalid request body", Code: "validation"})
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(c, err)
		return
	}
	p, err := s.prizes.Add(req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePrize(c *gin.Context) {
	var req prize.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError{Error: "invalid request body", Code: "validation"})
		return
	}
	req.ID = c.Param("id")
	if err := req.Validate(); err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.prizes.Update(req); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deletePrize(c *gin.Context) {
	if err := s.prizes.Delete(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseSortBy(v string) (prize.SortBy, bool) {
	switch prize.SortBy(v) {
	case prize.SortByProbability, prize.SortByStock, prize.SortByName, prize.SortByCreatedAt:
		return prize.SortBy(v), true
	}
	return "", false
}

func parseOrder(v string) (prize.SortOrder, bool) {
	switch prize.SortOrder(v) {
	case prize.OrderAsc, prize.OrderDesc:
		return prize.SortOrder(v), true
	}
	return "", false
}

func parseRarity(v string) (prize.RarityFilter, bool) {
	switch {
	case prize.RarityFilter(v) == prize.RarityFilterAll:
		return prize.RarityFilterAll, true
	case prize.Rarity(v) == prize.RarityNormal,
		prize.Rarity(v) == prize.RarityRare,
		prize.Rarity(v) == prize.RaritySuperRare:
		return prize.RarityFilter(v), true
	}
	return "", false
}
