package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/service"
)

// EventController manages cultural events. Public visitors see only
// published ones.
type EventController struct {
	BaseController

	eventService service.EventService
}

func NewEventController(pub *gin.RouterGroup, protected *gin.RouterGroup) *EventController {
	a := &EventController{}
	a.initRouter(pub, protected)
	return a
}

func (a *EventController) initRouter(pub *gin.RouterGroup, protected *gin.RouterGroup) {
	pub.GET("/public/events", a.listPublished)

	protected.GET("/events", a.list)
	protected.POST("/events", a.create)
	protected.PUT("/events/:id", a.update)
	protected.DELETE("/events/:id", a.delete)
}

func (a *EventController) listPublished(c *gin.Context) {
	events, err := a.eventService.GetEvents(true)
	jsonObj(c, events, err)
}

func (a *EventController) list(c *gin.Context) {
	events, err := a.eventService.GetEvents(false)
	jsonObj(c, events, err)
}

func (a *EventController) create(c *gin.Context) {
	event := &model.Event{}
	if err := c.ShouldBindJSON(event); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid event data")
		return
	}
	if event.Title == "" || event.Slug == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "title and slug are required")
		return
	}

	if err := a.eventService.AddEvent(event); err != nil {
		jsonMsg(c, "create event", err)
		return
	}
	jsonObj(c, event, nil)
}

func (a *EventController) update(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	event, err := a.eventService.GetEvent(id)
	if err != nil {
		notFoundOr(c, "get event", err)
		return
	}

	if err := c.ShouldBindJSON(event); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid event data")
		return
	}
	event.Id = id

	if err := a.eventService.UpdateEvent(event); err != nil {
		jsonMsg(c, "update event", err)
		return
	}
	jsonObj(c, event, nil)
}

func (a *EventController) delete(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	if err := a.eventService.DeleteEvent(id); err != nil {
		notFoundOr(c, "delete event", err)
		return
	}
	jsonMsg(c, "event deleted", nil)
}
