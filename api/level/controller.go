package levelapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-pcg/api/identity"
	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/beka-birhanu/vinom-pcg/service"
	"github.com/beka-birhanu/vinom-pcg/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxBatch bounds the levels of one batch request.
const MaxBatch = 32

// LevelController serves level generation, storage and replay.
type LevelController struct {
	levels i.LevelService
	logger i.Logger
}

// NewLevelController initializes a LevelController.
func NewLevelController(ls i.LevelService, logger i.Logger) (*LevelController, error) {
	if ls == nil || logger == nil {
		return nil, service.ErrNilDependency
	}
	return &LevelController{
		levels: ls,
		logger: logger,
	}, nil
}

// RegisterPublic registers public routes.
func (lc *LevelController) RegisterPublic(route *gin.RouterGroup) {
	levels := route.Group("/levels")
	{
		levels.POST("/generate", lc.generate)
		levels.POST("/batch", lc.batch)
		levels.GET("/:ID", lc.replay)
	}
}

// RegisterProtected registers protected routes.
func (lc *LevelController) RegisterProtected(route *gin.RouterGroup) {
	levels := route.Group("/levels")
	{
		levels.POST("", lc.save)
		levels.GET("", lc.mine)
	}
}

// generate handles single level generation. Omitted fields take their defaults.
func (lc *LevelController) generate(ctx *gin.Context) {
	params := pcg.DefaultParameters()
	if err := ctx.ShouldBindJSON(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lvl, err := lc.levels.Generate(ctx, params)
	if err != nil {
		lc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewLevelResponse(lvl))
}

// batch generates several levels concurrently.
func (lc *LevelController) batch(ctx *gin.Context) {
	var request BatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Levels) > MaxBatch {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d levels per batch", MaxBatch)})
		return
	}

	levels, err := lc.levels.Pregenerate(ctx, request.Parameters())
	if err != nil {
		lc.fail(ctx, err)
		return
	}

	response := make([]*LevelResponse, 0, len(levels))
	for _, lvl := range levels {
		response = append(response, NewLevelResponse(lvl))
	}
	ctx.JSON(http.StatusOK, response)
}

// replay regenerates a stored level.
func (lc *LevelController) replay(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid level id"})
		return
	}

	lvl, err := lc.levels.Replay(ctx, ID)
	if err != nil {
		lc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewLevelResponse(lvl))
}

// save stores a level for the authenticated user.
func (lc *LevelController) save(ctx *gin.Context) {
	author, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	params := pcg.DefaultParameters()
	if err := ctx.ShouldBindJSON(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := lc.levels.Save(ctx, params, author)
	if err != nil {
		lc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, &SaveResponse{ID: rec.ID.String()})
}

// mine lists the levels saved by the authenticated user.
func (lc *LevelController) mine(ctx *gin.Context) {
	author, ok := identity.UserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	recs, err := lc.levels.ByAuthor(ctx, author)
	if err != nil {
		lc.fail(ctx, err)
		return
	}

	response := make([]*RecordResponse, 0, len(recs))
	for _, rec := range recs {
		response = append(response, NewRecordResponse(rec))
	}
	ctx.JSON(http.StatusOK, response)
}

func (lc *LevelController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParameters):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLevelNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		lc.logger.Error(fmt.Sprintf("%s %s: %v", ctx.Request.Method, ctx.FullPath(), err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while handling level"})
	}
}
