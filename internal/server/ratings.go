package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxBatchBytes caps one rating request body at 32 MiB; a full daily
// switch export stays well under it.
const maxBatchBytes = 32 << 20

// rateBatch rates a batch of CDR lines posted as plain text, one line per
// record, and returns the rated records as JSON.
func (s *Server) rateBatch(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBatchBytes)

	records, err := s.pipeline.Process(c.Request.Context(), body)
	if err != nil {
		s.log.Error("rating batch failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"records": records,
	})
}

// listRates returns the persisted rate table.
func (s *Server) listRates(c *gin.Context) {
	entries, err := s.ratesrepo.List(c.Request.Context(), s.db)
	if err != nil {
		s.log.Error("listing rates failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(entries),
		"rates": entries,
	})
}
