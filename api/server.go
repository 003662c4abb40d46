package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryotarai/machine/ec2"
	"github.com/ryotarai/machine/storage"
	"github.com/sirupsen/logrus"
)

type InstanceLister interface {
	ListInstances(ctx context.Context, selectors []string, states []string) (ec2.Instances, error)
}

type ImageLister interface {
	ListImages(ctx context.Context) ([]*ec2.Image, error)
}

// Server is a read-only HTTP view of instances, images and journaled spot
// batches.
type Server struct {
	Instances InstanceLister
	Images    ImageLister
	Journal   storage.Journal
	Logger    *logrus.Logger
}

func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequest)
	r.GET("/healthz", s.getHealthzHandler)
	r.GET("/instances", s.getInstancesHandler)
	r.GET("/images", s.getImagesHandler)
	r.GET("/batches", s.getBatchesHandler)
	return r
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.Logger.Infof("Starting HTTP API server on %q", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.Logger.WithFields(logrus.Fields{
		"method":   c.Request.Method,
		"path":     c.Request.URL.Path,
		"status":   c.Writer.Status(),
		"duration": time.Since(start),
	}).Debug("HTTP request")
}

func (s *Server) error(c *gin.Context, err error) {
	s.Logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) getHealthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getInstancesHandler accepts repeated "selector" parameters and a comma
// separated "state".
func (s *Server) getInstancesHandler(c *gin.Context) {
	var states []string
	if st := c.Query("state"); st != "" {
		states = strings.Split(st, ",")
	}

	instances, err := s.Instances.ListInstances(c.Request.Context(), c.QueryArray("selector"), states)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, instances)
}

func (s *Server) getImagesHandler(c *gin.Context) {
	images, err := s.Images.ListImages(c.Request.Context())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (s *Server) getBatchesHandler(c *gin.Context) {
	batches, err := s.Journal.List()
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}
