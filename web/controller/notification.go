package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/web/service"
)

// NotificationController exposes the notification lifecycle to the
// admin dashboard.
type NotificationController struct {
	BaseController

	notificationService *service.NotificationService
}

func NewNotificationController(g *gin.RouterGroup, notificationService *service.NotificationService) *NotificationController {
	a := &NotificationController{notificationService: notificationService}
	a.initRouter(g)
	return a
}

func (a *NotificationController) initRouter(g *gin.RouterGroup) {
	g.GET("/notifications", a.list)
	g.PUT("/notifications/read-all", a.markAllRead)
	g.PUT("/notifications/:id/read", a.markRead)
	g.DELETE("/notifications/:id", a.delete)
}

// list returns notifications newest first with the authoritative
// unread count, which dashboards use to reconcile their local state.
func (a *NotificationController) list(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	notifications, unread, err := a.notificationService.List(limit, offset)
	if err != nil {
		jsonMsg(c, "list notifications", err)
		return
	}
	jsonObj(c, gin.H{"data": notifications, "unreadCount": unread}, nil)
}

func (a *NotificationController) markRead(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	notification, err := a.notificationService.MarkRead(id)
	if err != nil {
		notFoundOr(c, "mark notification read", err)
		return
	}
	jsonObj(c, notification, nil)
}

func (a *NotificationController) markAllRead(c *gin.Context) {
	if err := a.notificationService.MarkAllRead(); err != nil {
		jsonMsg(c, "mark all notifications read", err)
		return
	}
	jsonMsg(c, "all notifications marked read", nil)
}

func (a *NotificationController) delete(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	if err := a.notificationService.Delete(id); err != nil {
		notFoundOr(c, "delete notification", err)
		return
	}
	jsonMsg(c, "notification deleted", nil)
}
