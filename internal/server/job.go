package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spangleswebx/backoffice/internal/authorization"
	jobdomain "github.com/spangleswebx/backoffice/internal/job/domain"
)

func (s *Server) registerPublicRoutes() {
	// Career page listing, no session needed.
	s.engine.GET("/jobs/public", s.listPublicJobs)
}

func (s *Server) registerJobRoutes() {
	jobs := s.engine.Group("/jobs",
		s.AuthRequired(), s.requireFeature(authorization.ObjectJob))
	{
		jobs.GET("", s.listJobs)
		jobs.GET("/:id", s.getJob)
		jobs.POST("", s.createJob)
		jobs.PUT("/:id", s.updateJob)
		jobs.DELETE("/:id", s.deleteJob)
	}
}

func (s *Server) listPublicJobs(c *gin.Context) {
	jobs, err := s.jobSvc.ListPublic(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) listJobs(c *gin.Context) {
	jobs, err := s.jobSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) getJob(c *gin.Context) {
	job, err := s.jobSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) createJob(c *gin.Context) {
	var job jobdomain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.jobSvc.Create(c.Request.Context(), job)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateJob(c *gin.Context) {
	var job jobdomain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	updated, err := s.jobSvc.Update(c.Request.Context(), c.Param("id"), job)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteJob(c *gin.Context) {
	if err := s.jobSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
