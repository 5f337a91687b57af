package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pfmo-ng/facility-api/analytics"
	"github.com/pfmo-ng/facility-api/schema"
	"github.com/pfmo-ng/facility-api/store"
)

func (s *Server) submissionInsights(c *gin.Context) {
	u := c.MustGet("user")
	user, ok := u.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	submission, err := s.mongoStore.GetSubmission(c.Param("submissionID"))
	if err == store.ErrSubmissionNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSubmissionNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if user.Role != schema.RoleAdmin && submission.CollectorID != user.ID {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	c.JSON(http.StatusOK, analytics.SubmissionInsights(submission))
}

func (s *Server) atRiskFacilities(c *gin.Context) {
	submissions, err := s.mongoStore.FullScan()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorReportGeneration, err)
		return
	}

	atRisk := analytics.AtRiskFacilities(submissions)

	c.JSON(http.StatusOK, gin.H{
		"at_risk_facilities": atRisk,
		"total_at_risk":      len(atRisk),
	})
}

func (s *Server) recommendations(c *gin.Context) {
	var submissions []schema.Submission
	var err error

	if state := c.Query("state"); state != "" {
		submissions, err = s.mongoStore.ListSubmissions(store.SubmissionFilter{State: state})
	} else {
		submissions, err = s.mongoStore.FullScan()
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorReportGeneration, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": analytics.RouteRecommendations(submissions),
	})
}

func (s *Server) analyzeText(c *gin.Context) {
	var req struct {
		Issues   string `json:"issues"`
		Comments string `json:"comments"`
	}
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	c.JSON(http.StatusOK, analytics.AnalyzeText(req.Issues, req.Comments))
}
