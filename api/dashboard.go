package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pfmo-ng/facility-api/analytics"
	"github.com/pfmo-ng/facility-api/store"
)

func (s *Server) dashboardOverview(c *gin.Context) {
	overview, err := s.mongoStore.DashboardOverview(time.Now().UTC())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryDashboard, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (s *Server) geographicData(c *gin.Context) {
	points, err := s.mongoStore.GeographicData()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryDashboard, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"facilities": points})
}

// collectorStats joins per-collector submission counts with the accounts that
// made them. Counts for deleted accounts are kept, without a name.
func (s *Server) collectorStats(c *gin.Context) {
	counts, err := s.mongoStore.CollectorCounts()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryDashboard, err)
		return
	}

	collectors := make([]gin.H, 0, len(counts))
	for _, count := range counts {
		entry := gin.H{
			"collector_id":     count.CollectorID,
			"submission_count": count.Count,
		}

		user, err := s.store.GetUser(count.CollectorID)
		if err == nil {
			entry["username"] = user.Username
			entry["full_name"] = user.FullName
		} else if err != store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusInternalServerError, errorQueryDashboard, err)
			return
		}

		collectors = append(collectors, entry)
	}

	c.JSON(http.StatusOK, gin.H{"collectors": collectors})
}

// detailedAnalytics recomputes the full assessment report from every stored
// submission. Administrative read; no caching.
func (s *Server) detailedAnalytics(c *gin.Context) {
	submissions, err := s.mongoStore.FullScan()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorReportGeneration, err)
		return
	}

	c.JSON(http.StatusOK, analytics.Compose(submissions))
}
