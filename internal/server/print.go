package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spangleswebx/backoffice/internal/authorization"
	docdomain "github.com/spangleswebx/backoffice/internal/document/domain"
	"github.com/spangleswebx/backoffice/internal/printing"
	"github.com/spangleswebx/backoffice/internal/render/htmlrender"
	"go.uber.org/zap"
)

const (
	destinationDownload = "download"
	destinationPrinter  = "printer"
)

func (s *Server) registerPrintRoutes() {
	s.engine.POST("/print", s.AuthRequired(), s.printDocument)
	s.engine.GET("/printers", s.AuthRequired(), s.listPrinters)
}

type printRequest struct {
	Record      docdomain.Document `json:"record" binding:"required"`
	PaperSize   string             `json:"paperSize"`
	ColorMode   string             `json:"colorMode"`
	Layout      string             `json:"layout"`
	Destination string             `json:"destination"`
	PrinterName string             `json:"printerName"`
}

// printDocument renders the posted record through the HTML pipeline and
// either streams the PDF back or hands it to the spooler. The temporary
// file is removed on every exit path.
func (s *Server) printDocument(c *gin.Context) {
	var req printRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := s.authorizeDocumentFeature(c, req.Record.Type); err != nil {
		AbortWithError(c, err)
		return
	}

	colorMode := req.ColorMode
	if colorMode == "" {
		colorMode = htmlrender.ColorModeColor
	}
	paperSize := req.PaperSize
	if paperSize == "" {
		paperSize = s.cfg.PaperSize
	}

	html, err := s.htmlRenderer.Render(req.Record, htmlrender.Options{ColorMode: colorMode})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	pdf, err := s.printEngine.RenderPDF(c.Request.Context(), html, printing.Options{
		PaperSize: paperSize,
		Landscape: req.Layout == "landscape",
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if req.Destination != destinationPrinter {
		c.Header("Content-Disposition", `attachment; filename="`+req.Record.Number+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
		return
	}

	printerName := req.PrinterName
	if printerName == "" {
		printerName = s.cfg.PrinterName
	}

	path := filepath.Join(os.TempDir(), uuid.NewString()+".pdf")
	if err := os.WriteFile(path, pdf, 0o600); err != nil {
		AbortWithError(c, err)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			s.log.Warn("temp pdf not removed", zap.String("path", path), zap.Error(err))
		}
	}()

	if err := s.spooler.Print(c.Request.Context(), path, printerName); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "queued",
		"printer": printerName,
	})
}

func (s *Server) listPrinters(c *gin.Context) {
	printers, err := s.spooler.Printers(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, printers)
}

func (s *Server) authorizeDocumentFeature(c *gin.Context, docType docdomain.Type) error {
	session, ok := currentSession(c)
	if !ok {
		return ErrUnauthorized
	}
	object := authorization.ObjectInvoice
	if docType == docdomain.TypeQuotation {
		object = authorization.ObjectQuotation
	}
	subject := "user:" + session.UserID.String()
	return s.authzSvc.Authorize(c.Request.Context(), subject, object, authorization.ActionAny)
}
