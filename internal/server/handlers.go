package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oshokin/disk-bundler/internal/logger"
	"github.com/oshokin/disk-bundler/internal/service/disk"
)

// archiveFilename is the download name offered for every ZIP bundle.
const archiveFilename = "files.zip"

// mediaTypes lists the filter options offered on the index form.
// The values are the media_type strings the Disk API assigns to items.
var mediaTypes = []string{
	"audio",
	"backup",
	"book",
	"compressed",
	"data",
	"development",
	"diskimage",
	"document",
	"encoded",
	"executable",
	"flash",
	"font",
	"image",
	"settings",
	"spreadsheet",
	"text",
	"unknown",
	"video",
	"web",
}

// handleIndex renders the form for pasting a public folder link.
func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"MediaTypes": mediaTypes,
	})
}

// handleListing renders the contents of the submitted public folder.
func (s *Server) handleListing(c *gin.Context) {
	publicKey := c.PostForm("public_key")
	if publicKey == "" {
		c.String(http.StatusBadRequest, "public_key is required")

		return
	}

	mediaType := c.PostForm("media_type")
	items := s.diskService.ListItems(c.Request.Context(), publicKey, mediaType)

	c.HTML(http.StatusOK, "listing", gin.H{
		"PublicKey": publicKey,
		"MediaType": mediaType,
		"Items":     items,
	})
}

// handleDownload resolves a direct link for one file and redirects to it.
// An absent link is reported as a bad request.
func (s *Server) handleDownload(c *gin.Context) {
	publicKey := c.Param("public_key")
	filePath := c.Param("file_path")

	href, err := s.diskService.ResolveDownloadLink(c.Request.Context(), publicKey, filePath)
	if err != nil {
		logger.Errorf(c.Request.Context(), "Failed to resolve download link: %v", err)
		c.String(http.StatusInternalServerError, "failed to resolve download link")

		return
	}

	if href == "" {
		c.String(http.StatusBadRequest, "no download link available")

		return
	}

	c.Redirect(http.StatusFound, href)
}

// handleDownloadMultiple bundles the selected files of a public folder into
// a ZIP and serves it as an attachment.
func (s *Server) handleDownloadMultiple(c *gin.Context) {
	publicKey := c.Param("public_key")
	filePaths := c.PostFormArray("files")

	buffer, err := s.diskService.BuildArchive(c.Request.Context(), publicKey, filePaths)
	if err != nil {
		if errors.Is(err, disk.ErrNoFilesSelected) {
			c.String(http.StatusBadRequest, "no files selected")

			return
		}

		logger.Errorf(c.Request.Context(), "Failed to build archive: %v", err)
		c.String(http.StatusInternalServerError, "failed to build archive")

		return
	}

	s.serveArchive(c, buffer.Bytes())
}

// handleDownloadLocal bundles files from the media root into a ZIP.
func (s *Server) handleDownloadLocal(c *gin.Context) {
	filePaths := c.QueryArray("files")

	buffer, err := s.diskService.BuildLocalArchive(c.Request.Context(), filePaths)
	if err != nil {
		if errors.Is(err, disk.ErrNoFilesSelected) {
			c.String(http.StatusBadRequest, "no files selected")

			return
		}

		logger.Errorf(c.Request.Context(), "Failed to build local archive: %v", err)
		c.String(http.StatusInternalServerError, "failed to build archive")

		return
	}

	s.serveArchive(c, buffer.Bytes())
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serveArchive writes ZIP bytes as a file attachment.
func (s *Server) serveArchive(c *gin.Context, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+archiveFilename+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}
