package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	appdomain "github.com/spangleswebx/backoffice/internal/application/domain"
	"github.com/spangleswebx/backoffice/internal/authorization"
	blogdomain "github.com/spangleswebx/backoffice/internal/blog/domain"
	"github.com/spangleswebx/backoffice/internal/config"
	docdomain "github.com/spangleswebx/backoffice/internal/document/domain"
	gallerydomain "github.com/spangleswebx/backoffice/internal/gallery/domain"
	jobdomain "github.com/spangleswebx/backoffice/internal/job/domain"
	"github.com/spangleswebx/backoffice/internal/printing"
	"github.com/spangleswebx/backoffice/internal/render/htmlrender"
	"github.com/spangleswebx/backoffice/internal/render/pdfrender"
	"github.com/spangleswebx/backoffice/internal/storage"
	userdomain "github.com/spangleswebx/backoffice/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Provide(htmlrender.New),
	fx.Provide(pdfrender.New),
	fx.Provide(func(cfg config.Config) *SessionManager {
		return NewSessionManager(cfg.SessionTTL)
	}),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config) *gin.Engine {
	return NewEngine(cfg)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	log            *zap.Logger
	genID          *snowflake.Node
	sessions       *SessionManager
	authzSvc       *authorization.Service
	documentSvc    docdomain.Service
	jobSvc         jobdomain.Service
	applicationSvc appdomain.Service
	blogSvc        blogdomain.Service
	gallerySvc     gallerydomain.Service
	userSvc        userdomain.Service
	store          storage.Store
	htmlRenderer   *htmlrender.Renderer
	pdfRenderer    *pdfrender.Renderer
	printEngine    printing.Engine
	spooler        printing.Spooler
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	Log            *zap.Logger
	GenID          *snowflake.Node
	Sessions       *SessionManager
	AuthzSvc       *authorization.Service
	DocumentSvc    docdomain.Service
	JobSvc         jobdomain.Service
	ApplicationSvc appdomain.Service
	BlogSvc        blogdomain.Service
	GallerySvc     gallerydomain.Service
	UserSvc        userdomain.Service
	Store          storage.Store
	HTMLRenderer   *htmlrender.Renderer
	PDFRenderer    *pdfrender.Renderer
	PrintEngine    printing.Engine
	Spooler        printing.Spooler
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		log:            p.Log.Named("server"),
		genID:          p.GenID,
		sessions:       p.Sessions,
		authzSvc:       p.AuthzSvc,
		documentSvc:    p.DocumentSvc,
		jobSvc:         p.JobSvc,
		applicationSvc: p.ApplicationSvc,
		blogSvc:        p.BlogSvc,
		gallerySvc:     p.GallerySvc,
		userSvc:        p.UserSvc,
		store:          p.Store,
		htmlRenderer:   p.HTMLRenderer,
		pdfRenderer:    p.PDFRenderer,
		printEngine:    p.PrintEngine,
		spooler:        p.Spooler,
	}

	svc.registerAuthRoutes()
	svc.registerPublicRoutes()
	svc.registerDocumentRoutes()
	svc.registerJobRoutes()
	svc.registerApplicationRoutes()
	svc.registerBlogRoutes()
	svc.registerGalleryRoutes()
	svc.registerUserRoutes()
	svc.registerPrintRoutes()

	return svc
}
