package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spangleswebx/backoffice/internal/authorization"
	docdomain "github.com/spangleswebx/backoffice/internal/document/domain"
	"github.com/spangleswebx/backoffice/internal/render/pdfrender"
)

func (s *Server) registerDocumentRoutes() {
	invoices := s.engine.Group("/invoices",
		s.AuthRequired(), s.requireFeature(authorization.ObjectInvoice))
	{
		invoices.GET("", s.listDocuments(docdomain.TypeInvoice))
		invoices.GET("/next-number", s.nextDocumentNumber(docdomain.TypeInvoice))
		invoices.GET("/:id", s.getDocument(docdomain.TypeInvoice))
		invoices.POST("", s.createDocument(docdomain.TypeInvoice))
		invoices.PUT("/:id", s.updateDocument(docdomain.TypeInvoice))
		invoices.DELETE("/:id", s.deleteDocument(docdomain.TypeInvoice))
		invoices.GET("/:id/pdf", s.downloadDocumentPDF(docdomain.TypeInvoice))
	}

	quotations := s.engine.Group("/quotations",
		s.AuthRequired(), s.requireFeature(authorization.ObjectQuotation))
	{
		quotations.GET("", s.listDocuments(docdomain.TypeQuotation))
		quotations.GET("/next-number", s.nextDocumentNumber(docdomain.TypeQuotation))
		quotations.GET("/:id", s.getDocument(docdomain.TypeQuotation))
		quotations.POST("", s.createDocument(docdomain.TypeQuotation))
		quotations.PUT("/:id", s.updateDocument(docdomain.TypeQuotation))
		quotations.DELETE("/:id", s.deleteDocument(docdomain.TypeQuotation))
		quotations.GET("/:id/pdf", s.downloadDocumentPDF(docdomain.TypeQuotation))
	}
}

func (s *Server) listDocuments(docType docdomain.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := s.documentSvc.List(c.Request.Context(), docType)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func (s *Server) nextDocumentNumber(docType docdomain.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		number, err := s.documentSvc.NextNumber(c.Request.Context(), docType)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"number": number})
	}
}

func (s *Server) getDocument(docType docdomain.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := s.documentSvc.Get(c.Request.Context(), docType, c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func (s *Server) createDocument(docType docdomain.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc docdomain.Document
		if err := c.ShouldBindJSON(&doc); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
		doc.Type = docType

		created, err := s.documentSvc.Create(c.Request.Context(), doc)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (s *Server) updateDocument(docType docdomain.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc docdomain.Document
		if err := c.ShouldBindJSON(&doc); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}

		updated, err := s.documentSvc.Update(c.Request.Context(), docType, c.Param("id"), doc)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (s *Server) deleteDocument(docType docdomain.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.documentSvc.Delete(c.Request.Context(), docType, c.Param("id")); err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// downloadDocumentPDF serves the vector-drawn PDF for instant download.
func (s *Server) downloadDocumentPDF(docType docdomain.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := s.documentSvc.Get(c.Request.Context(), docType, c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		pdf, err := s.pdfRenderer.Generate(doc, pdfrender.Options{
			ColorMode: c.DefaultQuery("colorMode", pdfrender.ColorModeColor),
		})
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+doc.Number+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
