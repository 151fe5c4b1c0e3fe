package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// drawResponse is the visitor-facing draw result. Prize is null when the
// whole pool is out of stock; that is a normal outcome, not an error.
type drawResponse struct {
	Prize   any   `json:"prize"`
	DrawnAt int64 `json:"drawnAt,omitempty"`
}

// draw runs one gacha: pick a prize uniformly among those in stock, take
// one unit of stock immediately (the front-end animation timing has no say
// in it) and report the result.
func (s *Server) draw(c *gin.Context) {
	p := s.prizes.Draw()
	if p == nil {
		c.JSON(http.StatusOK, drawResponse{Prize: nil})
		return
	}

	s.sounds.Notify(SoundSpin)
	if err := s.prizes.DecrementStock(p.ID); err != nil {
		s.writeError(c, err)
		return
	}
	s.sounds.Notify(SoundReveal)
	s.sounds.Notify(SoundResult)

	c.JSON(http.StatusOK, drawResponse{Prize: p, DrawnAt: time.Now().UnixMilli()})
}
