package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/service"
)

// ContactForm is the public submission body.
type ContactForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactController handles the public contact form and the admin-side
// inbox.
type ContactController struct {
	BaseController

	contactService *service.ContactService
}

// NewContactController wires the public submission route on pub and the
// inbox management routes on protected.
func NewContactController(pub *gin.RouterGroup, protected *gin.RouterGroup, contactService *service.ContactService) *ContactController {
	a := &ContactController{contactService: contactService}
	a.initRouter(pub, protected)
	return a
}

func (a *ContactController) initRouter(pub *gin.RouterGroup, protected *gin.RouterGroup) {
	pub.POST("/contacts", a.submit)

	protected.GET("/contacts", a.list)
	protected.GET("/contacts/:id", a.get)
	protected.PUT("/contacts/:id/status", a.updateStatus)
	protected.PUT("/contacts/:id/reply", a.reply)
	protected.DELETE("/contacts/:id", a.delete)
}

// submit accepts a visitor inquiry. The notification broadcast to the
// admin room happens after the write commits, off this request's
// critical path.
func (a *ContactController) submit(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid contact data")
		return
	}

	contact := &model.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := a.contactService.Submit(contact); err != nil {
		jsonMsg(c, "submit contact", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "obj": contact})
}

func (a *ContactController) list(c *gin.Context) {
	status := c.Query("status")
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	contacts, err := a.contactService.List(status, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
			return
		}
		jsonMsg(c, "list contacts", err)
		return
	}
	jsonObj(c, contacts, nil)
}

// get returns one message; opening a new message marks it read.
func (a *ContactController) get(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	contact, err := a.contactService.Get(id)
	if err != nil {
		notFoundOr(c, "get contact", err)
		return
	}
	jsonObj(c, contact, nil)
}

func (a *ContactController) updateStatus(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid status data")
		return
	}

	contact, err := a.contactService.UpdateStatus(id, body.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
			return
		}
		notFoundOr(c, "update contact status", err)
		return
	}
	jsonObj(c, contact, nil)
}

func (a *ContactController) reply(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	var body struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid reply data")
		return
	}

	contact, err := a.contactService.Reply(id, body.Reply)
	if err != nil {
		notFoundOr(c, "reply to contact", err)
		return
	}
	jsonObj(c, contact, nil)
}

func (a *ContactController) delete(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	if err := a.contactService.Delete(id); err != nil {
		notFoundOr(c, "delete contact", err)
		return
	}
	jsonMsg(c, "contact deleted", nil)
}
