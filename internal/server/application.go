package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	appdomain "github.com/spangleswebx/backoffice/internal/application/domain"
	"github.com/spangleswebx/backoffice/internal/authorization"
)

const maxResumeBytes = 10 << 20

func (s *Server) registerApplicationRoutes() {
	// Applicants submit from the public career page.
	s.engine.POST("/applications", s.createApplication)

	applications := s.engine.Group("/applications",
		s.AuthRequired(), s.requireFeature(authorization.ObjectApplicants))
	{
		applications.GET("", s.listApplications)
		applications.PUT("/:id", s.updateApplicationStatus)
		applications.GET("/:id/resume", s.downloadResume)
		applications.DELETE("/:id", s.deleteApplication)
	}
}

func (s *Server) listApplications(c *gin.Context) {
	apps, err := s.applicationSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (s *Server) createApplication(c *gin.Context) {
	app := appdomain.Application{
		YourName:          c.PostForm("yourName"),
		YourEmail:         c.PostForm("yourEmail"),
		MobileNumber:      c.PostForm("mobileNumber"),
		JobTitle:          c.PostForm("jobTitle"),
		Designation:       c.PostForm("designation"),
		ExperienceYears:   c.PostForm("experienceYears"),
		Skills:            c.PostForm("skills"),
		SalaryExpectation: c.PostForm("salaryExpectation"),
		Description:       c.PostForm("description"),
	}

	fileHeader, err := c.FormFile("pdfFile")
	if err != nil {
		AbortWithError(c, appdomain.ErrResumeMissing)
		return
	}
	if fileHeader.Size > maxResumeBytes {
		AbortWithError(c, newValidationError("pdfFile", "too_large", "resume exceeds 10MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	created, err := s.applicationSvc.Create(c.Request.Context(), app, appdomain.Resume{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type applicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) updateApplicationStatus(c *gin.Context) {
	var req applicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	updated, err := s.applicationSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) downloadResume(c *gin.Context) {
	resume, err := s.applicationSvc.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `inline; filename="`+resume.Filename+`"`)
	c.Data(http.StatusOK, contentType, resume.Data)
}

func (s *Server) deleteApplication(c *gin.Context) {
	if err := s.applicationSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
