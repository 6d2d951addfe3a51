// Package server exposes the codec over HTTP for browser clients.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"pichide/carrier"
	"pichide/stego"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	random stego.RandFunc
}

// Router builds the gin engine with CORS configured for origin. The
// randomness source is injected so tests can fix payload placement.
func Router(origin string, random stego.RandFunc) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{origin}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.ExposeHeaders = []string{"Content-Disposition", "X-Embed-Name", "X-Embed-Level"}
	router.Use(cors.New(config))

	h := &Handler{random: random}

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.Health)

		st := api.Group("/stego")
		{
			st.POST("/encode", h.Encode)
			st.POST("/decode", h.Decode)
		}
	}

	return router
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": stego.FormatVersion,
	})
}

// Encode embeds an uploaded file into an uploaded carrier image and
// streams the result back as PNG. Multipart fields: "image", "file" and
// an optional "level" (low, medium or high).
func (h *Handler) Encode(c *gin.Context) {
	level, err := stego.ParseLevel(c.DefaultPostForm("level", "low"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageFile, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "carrier image is required"})
		return
	}
	defer imageFile.Close()

	pix, err := carrier.Decode(imageFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("could not decode carrier image: %v", err)})
		return
	}

	payloadFile, payloadHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload file is required"})
		return
	}
	defer payloadFile.Close()

	payload, err := io.ReadAll(payloadFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("could not read payload: %v", err)})
		return
	}

	name := filepath.Base(payloadHeader.Filename)
	if err := stego.Embed(pix.Slots(), level, name, payload, h.random); err != nil {
		c.JSON(embedStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="embedded.png"`)
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := pix.EncodePNG(c.Writer); err != nil {
		slog.Error("could not stream carrier image", "error", err)
	}
}

// Decode recovers the embedded file from an uploaded image and streams it
// back, with the recorded name in Content-Disposition and X-Embed-Name.
func (h *Handler) Decode(c *gin.Context) {
	imageFile, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "carrier image is required"})
		return
	}
	defer imageFile.Close()

	pix, err := carrier.Decode(imageFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("could not decode carrier image: %v", err)})
		return
	}

	header, payload, err := stego.Extract(pix.Slots())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, stego.ErrInvalidHeader) || errors.Is(err, stego.ErrCorruptPadding) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	name := filepath.Base(header.Name)
	c.Header("X-Embed-Name", name)
	c.Header("X-Embed-Level", header.Level.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/octet-stream", payload)
}

func embedStatus(err error) int {
	var capErr *stego.CapacityError
	if errors.As(err, &capErr) || errors.Is(err, stego.ErrNameTooLong) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
