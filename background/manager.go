package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pfmo-ng/facility-api/external/nphcda"
	"github.com/pfmo-ng/facility-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager runs the upstream sync jobs of the collection system.
type BackgroundManager struct {
	store store.PFMOCore

	mongoStore store.MongoStore

	upstream nphcda.NPHCDA

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	upstream := nphcda.New(
		viper.GetString("nphcda.apikey"),
		viper.GetString("nphcda.endpoint"),
	)

	return &BackgroundManager{
		store:      store.NewPFMOStore(ormDB, mongoStore),
		mongoStore: mongoStore,
		upstream:   upstream,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("facility-worker", 5)
	return m.worker.Launch()
}
