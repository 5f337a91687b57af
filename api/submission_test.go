package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pfmo-ng/facility-api/api/mocks"
	"github.com/pfmo-ng/facility-api/schema"
	"github.com/pfmo-ng/facility-api/store"
)

func TestListSubmissionsScopedToCollector(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	p.EXPECT().GetUser(uint(2)).Return(collectorUser(), nil).Times(1)
	m.EXPECT().ListSubmissions(store.SubmissionFilter{
		State:       "Lagos",
		CollectorID: 2,
	}).Return([]schema.Submission{
		{FacilityName: "Ikeja PHC", State: "Lagos", CollectorID: 2},
	}, nil).Times(1)

	router := testRouter(&s, "2")
	router.GET("/", s.listSubmissions)

	req := httptest.NewRequest("GET", "/?state=Lagos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Submissions []schema.Submission `json:"submissions"`
		Count       int                 `json:"count"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, resp.Count, "wrong count")
	assert.Equal(t, "Ikeja PHC", resp.Submissions[0].FacilityName)
}

func TestListSubmissionsAdminUnscoped(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	p.EXPECT().GetUser(uint(1)).Return(adminUser(), nil).Times(1)
	m.EXPECT().ListSubmissions(store.SubmissionFilter{}).Return([]schema.Submission{}, nil).Times(1)

	router := testRouter(&s, "1")
	router.GET("/", s.listSubmissions)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestGetSubmissionForbiddenForOtherCollector(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	id := primitive.NewObjectID()
	p.EXPECT().GetUser(uint(2)).Return(collectorUser(), nil).Times(1)
	m.EXPECT().GetSubmission(id.Hex()).Return(&schema.Submission{
		ID:          id,
		CollectorID: 7,
	}, nil).Times(1)

	router := testRouter(&s, "2")
	router.GET("/:submissionID", s.getSubmission)

	req := httptest.NewRequest("GET", "/"+id.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
