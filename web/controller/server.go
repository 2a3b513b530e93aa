package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web/service"
)

// ServerController exposes dashboard status and the upload endpoint.
type ServerController struct {
	BaseController

	serverService *service.ServerService
	uploadService service.UploadService
}

func NewServerController(g *gin.RouterGroup, serverService *service.ServerService) *ServerController {
	a := &ServerController{serverService: serverService}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g.GET("/status", a.status)
	g.GET("/logs", a.getLogs)
	g.POST("/upload", a.upload)
}

func (a *ServerController) status(c *gin.Context) {
	jsonObj(c, a.serverService.GetStatus(), nil)
}

// getLogs returns buffered log entries for the dashboard, newest first.
func (a *ServerController) getLogs(c *gin.Context) {
	count := queryInt(c, "count", 50)
	level := c.DefaultQuery("level", "info")
	jsonObj(c, logger.GetLogs(count, level), nil)
}

// upload stores one image and returns its public URL.
func (a *ServerController) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "missing file")
		return
	}

	url, err := a.uploadService.Save(c, file)
	if err != nil {
		if err == service.ErrUnsupportedMediaType {
			pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
			return
		}
		jsonMsg(c, "upload", err)
		return
	}
	jsonObj(c, gin.H{"url": url}, nil)
}
