package nphcda

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pfmo-ng/facility-api/schema"
)

const (
	defaultTimeout = 30 * time.Second
)

var (
	errEmptyAPIKey = fmt.Errorf("empty api key")
)

// NPHCDA pushes facility assessments to the national reporting platform.
type NPHCDA interface {
	PushSubmission(submission *schema.Submission) error
}

type nphcda struct {
	apiKey string
	url    string
	client *http.Client
}

// PushSubmission delivers one assessment record upstream. Any non-2xx reply
// counts as a failed delivery.
func (n nphcda) PushSubmission(submission *schema.Submission) error {
	if n.apiKey == "" {
		return errEmptyAPIKey
	}

	// copy the raw payload; the stored record stays untouched
	payload := make(schema.AttributeBlock, len(submission.RawSubmissionData)+2)
	for key, value := range submission.RawSubmissionData {
		payload[key] = value
	}
	payload["submission_id"] = submission.ID.Hex()
	payload["submitted_at"] = submission.CreatedAt.Format(time.RFC3339)

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", n.url+"/submissions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upstream replied %d", resp.StatusCode)
	}

	return nil
}

func New(apiKey string, url string) NPHCDA {
	return &nphcda{
		apiKey: apiKey,
		url:    url,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
