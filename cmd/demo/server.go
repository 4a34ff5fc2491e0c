package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/0right/regionquad/pkg/quadtree"
)

// rectQueryHandler serves range queries against the demo's tree.
// Grounded on the teacher's ParcelHandler.Handle (parse query params,
// survey, write JSON), with the view-params lx/rx/ty/by renamed to a
// single x/y/w/h rectangle and GeoRunner's gin.Context-based request
// parsing in place of net/http's raw form.
type rectQueryHandler struct {
	tree *parcelTree
}

type parcelResponse struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

func (h *rectQueryHandler) handle(c *gin.Context) {
	q, err := parseRectQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hits := h.tree.GetObjects(q)
	results := make([]parcelResponse, 0, len(hits))
	for _, p := range hits {
		results = append(results, parcelResponse{ID: p.ID, X: p.Rect.X, Y: p.Rect.Y, W: p.Rect.W, H: p.Rect.H})
	}
	c.JSON(http.StatusOK, results)
}

func (h *rectQueryHandler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.tree.Stats())
}

func parseRectQuery(c *gin.Context) (quadtree.Rect, error) {
	x, err := strconv.ParseFloat(c.Query("x"), 64)
	if err != nil {
		return quadtree.Rect{}, err
	}
	y, err := strconv.ParseFloat(c.Query("y"), 64)
	if err != nil {
		return quadtree.Rect{}, err
	}
	w, err := strconv.ParseFloat(c.Query("w"), 64)
	if err != nil {
		return quadtree.Rect{}, err
	}
	h, err := strconv.ParseFloat(c.Query("h"), 64)
	if err != nil {
		return quadtree.Rect{}, err
	}
	return quadtree.Rect{X: x, Y: y, W: w, H: h}, nil
}
