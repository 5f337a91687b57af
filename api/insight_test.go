package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pfmo-ng/facility-api/api/mocks"
	"github.com/pfmo-ng/facility-api/schema"
	"github.com/pfmo-ng/facility-api/store"
)

func TestSubmissionInsights(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	id := primitive.NewObjectID()
	p.EXPECT().GetUser(uint(1)).Return(adminUser(), nil).Times(1)
	m.EXPECT().GetSubmission(id.Hex()).Return(&schema.Submission{
		ID:                id,
		FacilityName:      "Ikeja PHC",
		State:             "Lagos",
		LGA:               "Ikeja",
		FacilityCondition: "Poor",
	}, nil).Times(1)

	router := testRouter(&s, "1")
	router.GET("/submission/:submissionID/insights", s.submissionInsights)

	req := httptest.NewRequest("GET", "/submission/"+id.Hex()+"/insights", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var insights schema.SubmissionInsights
	err := json.Unmarshal(w.Body.Bytes(), &insights)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.PriorityHigh, insights.Predictions.PriorityLevel, "wrong priority")
	assert.Contains(t, insights.Summary, "Ikeja PHC in Lagos")
}

func TestSubmissionInsightsNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	p.EXPECT().GetUser(uint(1)).Return(adminUser(), nil).Times(1)
	m.EXPECT().GetSubmission("missing").Return(nil, store.ErrSubmissionNotFound).Times(1)

	router := testRouter(&s, "1")
	router.GET("/submission/:submissionID/insights", s.submissionInsights)

	req := httptest.NewRequest("GET", "/submission/missing/insights", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestAtRiskFacilities(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	p.EXPECT().GetUser(uint(1)).Return(adminUser(), nil).Times(1)
	m.EXPECT().FullScan().Return([]schema.Submission{
		{
			FacilityName:      "Kano General",
			State:             "Kano",
			LGA:               "Nassarawa",
			FacilityCondition: "Critical",
		},
		{
			FacilityName:      "Healthy Clinic",
			State:             "Lagos",
			LGA:               "Ikeja",
			FacilityCondition: "Good",
			FundingData:       schema.AttributeBlock{"bhcpf_status": "Received"},
			InfrastructureData: schema.AttributeBlock{
				"has_power": "Yes",
				"has_water": "Yes",
			},
			HumanResourcesData: schema.AttributeBlock{"total_staff": 12},
		},
	}, nil).Times(1)

	router := testRouter(&s, "1")
	router.GET("/facilities/at-risk", s.adminRequired(), s.atRiskFacilities)

	req := httptest.NewRequest("GET", "/facilities/at-risk", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		AtRiskFacilities []schema.AtRiskFacility `json:"at_risk_facilities"`
		TotalAtRisk      int                     `json:"total_at_risk"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, resp.TotalAtRisk, "wrong at-risk count")
	assert.Equal(t, "Kano General", resp.AtRiskFacilities[0].FacilityName)
}

func TestAnalyzeText(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	p.EXPECT().GetUser(uint(2)).Return(collectorUser(), nil).Times(1)

	router := testRouter(&s, "2")
	router.POST("/analyze-text", s.analyzeText)

	body := `{"issues": "The generator is broken and the situation is urgent", "comments": ""}`
	req := httptest.NewRequest("POST", "/analyze-text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var analysis schema.TextAnalysis
	err := json.Unmarshal(w.Body.Bytes(), &analysis)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.SentimentNegative, analysis.Sentiment, "wrong sentiment")
}
