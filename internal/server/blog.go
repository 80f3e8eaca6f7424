package server

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spangleswebx/backoffice/internal/authorization"
	blogdomain "github.com/spangleswebx/backoffice/internal/blog/domain"
)

func (s *Server) registerBlogRoutes() {
	blogs := s.engine.Group("/blogs",
		s.AuthRequired(), s.requireFeature(authorization.ObjectBlogs))
	{
		blogs.GET("", s.listBlogs)
		blogs.GET("/:id", s.getBlog)
		blogs.POST("", s.createBlog)
		blogs.PUT("/:id", s.updateBlog)
		blogs.DELETE("/:id", s.deleteBlog)
	}
}

func (s *Server) listBlogs(c *gin.Context) {
	blogs, err := s.blogSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (s *Server) getBlog(c *gin.Context) {
	blog, err := s.blogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (s *Server) createBlog(c *gin.Context) {
	blog := blogdomain.Blog{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}

	image, err := s.saveOptionalImage(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	created, err := s.blogSvc.Create(c.Request.Context(), blog, image)
	if err != nil {
		if image != "" {
			_ = s.store.Remove(image)
		}
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateBlog(c *gin.Context) {
	blog := blogdomain.Blog{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}

	image, err := s.saveOptionalImage(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.blogSvc.Update(c.Request.Context(), c.Param("id"), blog, image)
	if err != nil {
		if image != "" {
			_ = s.store.Remove(image)
		}
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteBlog(c *gin.Context) {
	if err := s.blogSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// saveOptionalImage stores the "image" multipart field if present and
// returns its stored name; absence is not an error.
func (s *Server) saveOptionalImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return "", err
	}
	return s.store.Save(fileHeader.Filename, data)
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
