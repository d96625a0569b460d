package main

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aditya2671/portfolio/internal/config"
	"github.com/aditya2671/portfolio/internal/contact"
	"github.com/aditya2671/portfolio/internal/storage/sqlite"
	"github.com/aditya2671/portfolio/internal/theme"
)

type server struct {
	cfg       config.Config
	logger    *slog.Logger
	submitter *contact.Submitter
	prefs     *sqlite.Store // nil unless the sqlite theme store is selected
}

func newServer(ctx context.Context, cfg config.Config, sender contact.Sender, logger *slog.Logger) (*server, error) {
	s := &server{
		cfg:       cfg,
		logger:    logger,
		submitter: contact.NewSubmitter(cfg.Relay(), sender, cfg.Recipient, logger),
	}
	if cfg.ThemeStore == config.ThemeStoreSQLite {
		prefs, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		s.prefs = prefs
	}
	return s, nil
}

func (s *server) Close() error {
	return s.prefs.Close()
}

func (s *server) routes() *gin.Engine {
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"year": func() int { return time.Now().Year() },
	})
	r.LoadHTMLGlob(s.cfg.Templates)

	r.Static("/static", s.cfg.StaticDir)
	if s.prefs != nil {
		r.Use(visitorMiddleware())
	}

	// Home page route
	r.GET("/", s.home)

	r.POST("/theme", s.toggleTheme)

	// HTMX contact form submission
	r.POST("/contact", s.submitContact)

	// Resume download
	r.GET("/resume", s.resume)
	r.GET("/"+profile.ResumeFile, s.resume)

	api := r.Group("/api")
	if len(s.cfg.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins: s.cfg.CORSOrigins,
			AllowMethods: []string{http.MethodPost},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
		// preflight needs a route for the group middleware to run
		api.OPTIONS("/contact", func(c *gin.Context) {})
	}
	api.POST("/contact", s.submitContactJSON)

	return r
}

// themeFor picks the preference storage for this request: the database when a
// visitor id is available, the theme cookie otherwise.
func (s *server) themeFor(c *gin.Context) *theme.Controller {
	if s.prefs != nil {
		if id := visitorID(c); id != "" {
			return theme.NewController(s.prefs.Preferences(id))
		}
	}
	return theme.NewController(theme.NewCookieStore(c.Writer, c.Request))
}

func (s *server) home(c *gin.Context) {
	t := s.themeFor(c).Theme(c.Request.Context())
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":   profile,
		"theme":     t,
		"form":      contactView{},
		"recipient": s.submitter.Recipient(),
	})
}

func (s *server) toggleTheme(c *gin.Context) {
	t, err := s.themeFor(c).Toggle(c.Request.Context())
	if err != nil {
		s.logger.Error("toggle theme", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	s.logger.Debug("theme toggled", "theme", t)

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *server) resume(c *gin.Context) {
	c.FileAttachment(s.cfg.Resume, profile.ResumeFile)
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
