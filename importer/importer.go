package main

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/pfmo-ng/facility-api/consts"
	"github.com/pfmo-ng/facility-api/schema"
	"github.com/pfmo-ng/facility-api/store"
)

type submissionImporter struct {
	mongoStore store.MongoStore
	dir        string
}

// Run walks every .json file in the import directory and inserts it as a
// submission. A malformed file is logged and skipped; the run continues.
func (i submissionImporter) Run() {
	files, err := filepath.Glob(filepath.Join(i.dir, "*.json"))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"dir":    i.dir,
			"error":  err,
		}).Error("list import files")
		return
	}

	imported := 0
	for _, file := range files {
		if err := i.importFile(file); err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"file":   file,
				"error":  err,
			}).Error("import submission")
			continue
		}
		imported++
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"files":    len(files),
		"imported": imported,
	}).Info("import finished")
}

func (i submissionImporter) importFile(file string) error {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}

	var submission schema.Submission
	if err := json.Unmarshal(data, &submission); err != nil {
		return err
	}

	raw := make(schema.AttributeBlock)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	submission.RawSubmissionData = raw

	if submission.State != "" && submission.GeopoliticalZone == "" {
		if zone, err := consts.ZoneOfState(submission.State); err == nil {
			submission.GeopoliticalZone = zone
		}
	}

	_, err = i.mongoStore.CreateSubmission(&submission)
	return err
}

// newImporter - bulk loader for offline-collected submission exports
func newImporter(dir string, mongoStore store.MongoStore) *submissionImporter {
	return &submissionImporter{
		mongoStore: mongoStore,
		dir:        dir,
	}
}
