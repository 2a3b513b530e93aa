package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/service"
)

// GalleryController manages gallery images.
type GalleryController struct {
	BaseController

	galleryService service.GalleryService
}

func NewGalleryController(pub *gin.RouterGroup, protected *gin.RouterGroup) *GalleryController {
	a := &GalleryController{}
	a.initRouter(pub, protected)
	return a
}

func (a *GalleryController) initRouter(pub *gin.RouterGroup, protected *gin.RouterGroup) {
	pub.GET("/public/gallery", a.listPublic)

	protected.GET("/gallery", a.listPublic)
	protected.POST("/gallery", a.create)
	protected.PUT("/gallery/:id", a.update)
	protected.DELETE("/gallery/:id", a.delete)
}

func (a *GalleryController) listPublic(c *gin.Context) {
	items, err := a.galleryService.GetItems(c.Query("category"))
	jsonObj(c, items, err)
}

func (a *GalleryController) create(c *gin.Context) {
	item := &model.GalleryItem{}
	if err := c.ShouldBindJSON(item); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid gallery data")
		return
	}
	if item.ImageURL == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "imageUrl is required")
		return
	}

	if err := a.galleryService.AddItem(item); err != nil {
		jsonMsg(c, "create gallery item", err)
		return
	}
	jsonObj(c, item, nil)
}

func (a *GalleryController) update(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	item, err := a.galleryService.GetItem(id)
	if err != nil {
		notFoundOr(c, "get gallery item", err)
		return
	}

	if err := c.ShouldBindJSON(item); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid gallery data")
		return
	}
	item.Id = id

	if err := a.galleryService.UpdateItem(item); err != nil {
		jsonMsg(c, "update gallery item", err)
		return
	}
	jsonObj(c, item, nil)
}

func (a *GalleryController) delete(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	if err := a.galleryService.DeleteItem(id); err != nil {
		notFoundOr(c, "delete gallery item", err)
		return
	}
	jsonMsg(c, "gallery item deleted", nil)
}
