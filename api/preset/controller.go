// Package presetapi exposes the named parameter presets.
package presetapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	levelapi "github.com/beka-birhanu/vinom-pcg/api/level"
	"github.com/beka-birhanu/vinom-pcg/service"
	"github.com/beka-birhanu/vinom-pcg/service/i"
	"github.com/gin-gonic/gin"
)

// PresetController lists presets and generates levels from them.
type PresetController struct {
	presets i.PresetSource
	levels  i.LevelService
	logger  i.Logger
}

// NewPresetController initializes a PresetController.
func NewPresetController(ps i.PresetSource, ls i.LevelService, logger i.Logger) (*PresetController, error) {
	if ps == nil || ls == nil || logger == nil {
		return nil, service.ErrNilDependency
	}
	return &PresetController{
		presets: ps,
		levels:  ls,
		logger:  logger,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PresetController) RegisterPublic(route *gin.RouterGroup) {
	p := route.Group("/presets")
	{
		p.GET("", pc.list)
		p.GET("/:name", pc.preset)
		p.POST("/:name/generate", pc.generate)
	}
}

// RegisterProtected registers protected routes.
func (pc *PresetController) RegisterProtected(route *gin.RouterGroup) {}

func (pc *PresetController) list(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"presets": pc.presets.Names()})
}

func (pc *PresetController) preset(ctx *gin.Context) {
	params, err := pc.presets.Preset(ctx.Params.ByName("name"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, params)
}

// generate builds a level from a preset. The optional seed query overrides
// the preset seed.
func (pc *PresetController) generate(ctx *gin.Context) {
	params, err := pc.presets.Preset(ctx.Params.ByName("name"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if raw, ok := ctx.GetQuery("seed"); ok {
		seed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		params.Seed = seed
	}

	lvl, err := pc.levels.Generate(ctx, params)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, levelapi.NewLevelResponse(lvl))
	case errors.Is(err, service.ErrInvalidParameters):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		pc.logger.Error(fmt.Sprintf("generate preset %s: %v", ctx.Params.ByName("name"), err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating level"})
	}
}
