package api

import (
	"encoding/json"
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/pfmo-ng/facility-api/consts"
	"github.com/pfmo-ng/facility-api/schema"
	"github.com/pfmo-ng/facility-api/store"
)

const syncSubmissionTaskName = "sync_submission"

// submitAssessment takes one facility assessment form from a field officer.
// The raw payload is kept verbatim next to the parsed record so upstream sync
// can replay exactly what was collected.
func (s *Server) submitAssessment(c *gin.Context) {
	u := c.MustGet("user")
	user, ok := u.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	var submission schema.Submission
	if err := json.Unmarshal(body, &submission); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	raw := make(schema.AttributeBlock)
	if err := json.Unmarshal(body, &raw); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	submission.CollectorID = user.ID
	submission.RawSubmissionData = raw
	s.resolveLocation(c, &submission)

	id, err := s.mongoStore.CreateSubmission(&submission)
	if shouldInterupt(err, c) {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: syncSubmissionTaskName,
		Args: []tasks.Arg{
			{
				Type:  "string",
				Value: id,
			},
		},
	}); err != nil {
		// sync is retried by the background sweep; intake already succeeded
		c.Error(err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":                id,
		"submission_status": submission.SubmissionStatus,
		"sync_status":       submission.SyncStatus,
	})
}

// resolveLocation fills state/LGA/zone from the GPS fix when the form left
// them empty. Resolution failures never block intake.
func (s *Server) resolveLocation(c *gin.Context, submission *schema.Submission) {
	if submission.State == "" &&
		submission.Latitude != nil && submission.Longitude != nil &&
		(*submission.Latitude != 0 || *submission.Longitude != 0) {
		loc, err := s.locationResolver.GetPoliticalInfo(schema.Location{
			Latitude:  *submission.Latitude,
			Longitude: *submission.Longitude,
		})
		if err != nil {
			c.Error(err)
		} else {
			submission.State = loc.State
			if submission.LGA == "" {
				submission.LGA = loc.LGA
			}
		}
	}

	if submission.State != "" && submission.GeopoliticalZone == "" {
		if zone, err := consts.ZoneOfState(submission.State); err == nil {
			submission.GeopoliticalZone = zone
		}
	}
}

// listSubmissions lists assessment records, newest first. Data collectors see
// their own submissions only.
func (s *Server) listSubmissions(c *gin.Context) {
	u := c.MustGet("user")
	user, ok := u.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		State      string `form:"state"`
		LGA        string `form:"lga"`
		SyncStatus string `form:"sync_status"`
		Skip       int64  `form:"skip"`
		Limit      int64  `form:"limit"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter := store.SubmissionFilter{
		State:      params.State,
		LGA:        params.LGA,
		SyncStatus: schema.SyncStatus(params.SyncStatus),
		Skip:       params.Skip,
		Limit:      params.Limit,
	}
	if user.Role != schema.RoleAdmin {
		filter.CollectorID = user.ID
	}

	submissions, err := s.mongoStore.ListSubmissions(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorQuerySubmissions, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"count":       len(submissions),
	})
}

func (s *Server) getSubmission(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"result": submission})
}

// updateSubmission changes workflow fields only. Assessment content is
// immutable after intake.
func (s *Server) updateSubmission(c *gin.Context) {
	u := c.MustGet("user")
	user, ok := u.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	id := c.Param("submissionID")

	submission, err := s.mongoStore.GetSubmission(id)
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

	var req struct {
		SubmissionStatus string `json:"submission_status"`
		SyncStatus       string `json:"sync_status"`
		Issues           string `json:"issues"`
		Comments         string `json:"comments"`
	}
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.UpdateSubmission(id, store.SubmissionUpdate{
		SubmissionStatus: schema.SubmissionStatus(req.SubmissionStatus),
		SyncStatus:       schema.SyncStatus(req.SyncStatus),
		Issues:           req.Issues,
		Comments:         req.Comments,
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorUpdateSubmission, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) deleteSubmission(c *gin.Context) {
	if err := s.mongoStore.DeleteSubmission(c.Param("submissionID")); err == store.ErrSubmissionNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorSubmissionNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
