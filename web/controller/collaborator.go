package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/service"
)

// CollaboratorController manages partner organizations.
type CollaboratorController struct {
	BaseController

	collaboratorService service.CollaboratorService
}

func NewCollaboratorController(pub *gin.RouterGroup, protected *gin.RouterGroup) *CollaboratorController {
	a := &CollaboratorController{}
	a.initRouter(pub, protected)
	return a
}

func (a *CollaboratorController) initRouter(pub *gin.RouterGroup, protected *gin.RouterGroup) {
	pub.GET("/public/collaborators", a.list)

	protected.GET("/collaborators", a.list)
	protected.POST("/collaborators", a.create)
	protected.PUT("/collaborators/:id", a.update)
	protected.DELETE("/collaborators/:id", a.delete)
}

func (a *CollaboratorController) list(c *gin.Context) {
	collaborators, err := a.collaboratorService.GetCollaborators()
	jsonObj(c, collaborators, err)
}

func (a *CollaboratorController) create(c *gin.Context) {
	collaborator := &model.Collaborator{}
	if err := c.ShouldBindJSON(collaborator); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid collaborator data")
		return
	}
	if collaborator.Name == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "name is required")
		return
	}

	if err := a.collaboratorService.AddCollaborator(collaborator); err != nil {
		jsonMsg(c, "create collaborator", err)
		return
	}
	jsonObj(c, collaborator, nil)
}

func (a *CollaboratorController) update(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	collaborator, err := a.collaboratorService.GetCollaborator(id)
	if err != nil {
		notFoundOr(c, "get collaborator", err)
		return
	}

	if err := c.ShouldBindJSON(collaborator); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid collaborator data")
		return
	}
	collaborator.Id = id

	if err := a.collaboratorService.UpdateCollaborator(collaborator); err != nil {
		jsonMsg(c, "update collaborator", err)
		return
	}
	jsonObj(c, collaborator, nil)
}

func (a *CollaboratorController) delete(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	if err := a.collaboratorService.DeleteCollaborator(id); err != nil {
		notFoundOr(c, "delete collaborator", err)
		return
	}
	jsonMsg(c, "collaborator deleted", nil)
}
