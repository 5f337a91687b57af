package background

const pendingSyncBatchSize = 100

// SyncSubmission is a background job to deliver one submission to the national
// reporting platform. It is enqueued by the API server right after intake.
func (m *BackgroundManager) SyncSubmission(id string) error {
	submission, err := m.mongoStore.GetSubmission(id)
	if err != nil {
		return err
	}

	if submission.IsSynced {
		return nil
	}

	if err := m.upstream.PushSubmission(submission); err != nil {
		log.WithField("submission_id", id).Error("push submission upstream: ", err)
		if markErr := m.mongoStore.MarkSyncFailed(id); markErr != nil {
			log.WithField("submission_id", id).Error("mark sync failed: ", markErr)
		}
		return err
	}

	return m.mongoStore.MarkSynced(id)
}

// SweepPendingSync is a background job to retry submissions whose delivery is
// still pending, oldest first. Individual failures do not stop the sweep.
func (m *BackgroundManager) SweepPendingSync() error {
	pending, err := m.mongoStore.ListPendingSync(pendingSyncBatchSize)
	if err != nil {
		return err
	}

	for i := range pending {
		id := pending[i].ID.Hex()
		if err := m.SyncSubmission(id); err != nil {
			log.WithField("submission_id", id).Error("sweep sync: ", err)
		}
	}

	return nil
}
