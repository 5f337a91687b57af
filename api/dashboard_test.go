package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pfmo-ng/facility-api/api/mocks"
	"github.com/pfmo-ng/facility-api/schema"
	"github.com/pfmo-ng/facility-api/store"
)

func testRouter(s *Server, requester string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requester", requester)
		c.Next()
	})
	router.Use(s.recognizeUserMiddleware())
	return router
}

func adminUser() *schema.User {
	return &schema.User{
		ID:       1,
		Username: "admin",
		Role:     schema.RoleAdmin,
		IsActive: true,
	}
}

func collectorUser() *schema.User {
	return &schema.User{
		ID:       2,
		Username: "collector",
		Role:     schema.RoleDataCollector,
		IsActive: true,
	}
}

func TestDetailedAnalytics(t *testing.T) {
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
			FacilityName:      "Ikeja PHC",
			State:             "Lagos",
			FacilityCondition: "Good",
			OwnershipType:     "Public",
		},
		{
			FacilityName:      "Kano General",
			State:             "Kano",
			FacilityCondition: "Poor",
		},
	}, nil).Times(1)

	router := testRouter(&s, "1")
	router.GET("/", s.adminRequired(), s.detailedAnalytics)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var report schema.AnalyticsReport
	err := json.Unmarshal(w.Body.Bytes(), &report)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 2, report.Summary.TotalFacilities, "wrong total facilities")
	assert.Equal(t, 1, report.Summary.FacilitiesWithCompleteData, "wrong complete facilities")
}

func TestDetailedAnalyticsForbidden(t *testing.T) {
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
	router.GET("/", s.adminRequired(), s.detailedAnalytics)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestDashboardOverview(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPFMOCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
	}

	p.EXPECT().GetUser(uint(1)).Return(adminUser(), nil).Times(1)
	m.EXPECT().DashboardOverview(gomock.Any()).Return(&store.Overview{
		TotalSubmissions:   4,
		SyncedSubmissions:  3,
		PendingSubmissions: 1,
		SyncedPercentage:   75,
	}, nil).Times(1)

	router := testRouter(&s, "1")
	router.GET("/", s.adminRequired(), s.dashboardOverview)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, float64(4), resp["total_submissions"], "wrong total submissions")
	assert.Equal(t, float64(75), resp["synced_percentage"], "wrong synced percentage")
}
