package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spangleswebx/backoffice/internal/authorization"
	gallerydomain "github.com/spangleswebx/backoffice/internal/gallery/domain"
)

func (s *Server) registerGalleryRoutes() {
	gallery := s.engine.Group("/gallery",
		s.AuthRequired(), s.requireFeature(authorization.ObjectGallery))
	{
		gallery.GET("", s.listGalleries)
		gallery.GET("/:id", s.getGallery)
		gallery.POST("", s.createGallery)
		gallery.PUT("/:id", s.appendGalleryItems)
		gallery.DELETE("/:id/item/:filename", s.removeGalleryItem)
		gallery.DELETE("/:id", s.deleteGallery)
	}
}

func (s *Server) listGalleries(c *gin.Context) {
	galleries, err := s.gallerySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleries)
}

func (s *Server) getGallery(c *gin.Context) {
	g, err := s.gallerySvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (s *Server) createGallery(c *gin.Context) {
	uploads, err := collectUploads(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	created, err := s.gallerySvc.Create(c.Request.Context(), c.PostForm("title"), uploads)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) appendGalleryItems(c *gin.Context) {
	uploads, err := collectUploads(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.gallerySvc.Append(c.Request.Context(), c.Param("id"), uploads)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) removeGalleryItem(c *gin.Context) {
	updated, err := s.gallerySvc.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("filename"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteGallery(c *gin.Context) {
	if err := s.gallerySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func collectUploads(c *gin.Context) ([]gallerydomain.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, gallerydomain.ErrNoFiles
	}

	var uploads []gallerydomain.Upload
	for _, fh := range form.File["files"] {
		data, err := readMultipartFile(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, gallerydomain.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}
