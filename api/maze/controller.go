package mazeapi

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/report"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves generated and stored mazes.
type MazeController struct {
	mazeService i.MazeService
	newSeed     func() int64
	now         func() time.Time
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{
		mazeService: ms,
		newSeed:     func() int64 { return time.Now().UnixNano() },
		now:         time.Now,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", mc.layout)
		mazes.GET("/ascii", mc.ascii)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	records := route.Group("/maze/records")
	{
		records.POST("", mc.save)
		records.GET("/:ID", mc.record)
	}
}

// layout generates (or fetches from cache) a maze and returns it as JSON.
func (mc *MazeController) layout(ctx *gin.Context) {
	var query LayoutQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := mc.seed(query.Seed)

	l, err := mc.mazeService.Generate(ctx.Request.Context(), query.Rows, query.Columns, seed)
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, layoutResponse(l, seed))
}

// ascii returns the human readable report of a maze.
func (mc *MazeController) ascii(ctx *gin.Context) {
	var query LayoutQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	l, err := mc.mazeService.Generate(ctx.Request.Context(), query.Rows, query.Columns, mc.seed(query.Seed))
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := report.WriteASCII(&buf, l, mc.now()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// save generates a maze and stores it.
func (mc *MazeController) save(ctx *gin.Context) {
	var request SaveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Save(ctx.Request.Context(), request.Rows, request.Columns, mc.seed(request.Seed))
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, SaveResponse{ID: record.ID.String()})
}

// record retrieves a stored maze.
func (mc *MazeController) record(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := mc.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, recordResponse(record))
}

func (mc *MazeController) seed(requested *int64) int64 {
	if requested != nil {
		return *requested
	}
	return mc.newSeed()
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrOutOfRange),
		errors.Is(err, service.ErrDimensionTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
