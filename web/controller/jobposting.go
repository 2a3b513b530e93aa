package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/database/model"
	"github.com/velmara/heritage-panel/web/service"
)

// JobPostingController manages job postings. Public visitors see only
// active ones.
type JobPostingController struct {
	BaseController

	jobService service.JobPostingService
}

func NewJobPostingController(pub *gin.RouterGroup, protected *gin.RouterGroup) *JobPostingController {
	a := &JobPostingController{}
	a.initRouter(pub, protected)
	return a
}

func (a *JobPostingController) initRouter(pub *gin.RouterGroup, protected *gin.RouterGroup) {
	pub.GET("/public/jobs", a.listActive)

	protected.GET("/jobs", a.list)
	protected.POST("/jobs", a.create)
	protected.PUT("/jobs/:id", a.update)
	protected.DELETE("/jobs/:id", a.delete)
}

func (a *JobPostingController) listActive(c *gin.Context) {
	postings, err := a.jobService.GetPostings(true)
	jsonObj(c, postings, err)
}

func (a *JobPostingController) list(c *gin.Context) {
	postings, err := a.jobService.GetPostings(false)
	jsonObj(c, postings, err)
}

func (a *JobPostingController) create(c *gin.Context) {
	posting := &model.JobPosting{}
	if err := c.ShouldBindJSON(posting); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid job data")
		return
	}
	if posting.Title == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "title is required")
		return
	}

	if err := a.jobService.AddPosting(posting); err != nil {
		jsonMsg(c, "create job posting", err)
		return
	}
	jsonObj(c, posting, nil)
}

func (a *JobPostingController) update(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	posting, err := a.jobService.GetPosting(id)
	if err != nil {
		notFoundOr(c, "get job posting", err)
		return
	}

	if err := c.ShouldBindJSON(posting); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid job data")
		return
	}
	posting.Id = id

	if err := a.jobService.UpdatePosting(posting); err != nil {
		jsonMsg(c, "update job posting", err)
		return
	}
	jsonObj(c, posting, nil)
}

func (a *JobPostingController) delete(c *gin.Context) {
	id, ok := pathParamInt(c, "id")
	if !ok {
		return
	}

	if err := a.jobService.DeletePosting(id); err != nil {
		notFoundOr(c, "delete job posting", err)
		return
	}
	jsonMsg(c, "job posting deleted", nil)
}
