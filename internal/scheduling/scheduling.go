// Package scheduling hands finished intake records to the downstream
// scheduling backend.
package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

// QA is one answered triage question.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Record carries everything the intake flow collected for one patient.
// Partial records are valid: the graceful-degradation paths save whatever
// was gathered before a collaborator failed.
type Record struct {
	Identity         string
	Name             string
	Age              int
	Gender           string
	ReasonForVisit   string
	DoctorCode       string
	DoctorName       string
	ConsultationDate string
	TriageResponses  []QA
}

// Result identifies the saved record in the scheduling backend.
type Result struct {
	ID string `json:"id"`
}

// Sink persists a finished intake record.
type Sink interface {
	Save(ctx context.Context, rec Record) (Result, error)
}

// savePayload is the wire shape the scheduling backend expects.
type savePayload struct {
	Patient struct {
		Name               string `json:"name"`
		Age                int    `json:"age"`
		Gender             string `json:"gender"`
		PhoneNumber        string `json:"phoneNumber"`
		RegistrationSource string `json:"registrationSource"`
	} `json:"patient"`
	Consultation struct {
		DoctorCode            string `json:"doctorCode"`
		ReasonForVisit        string `json:"reasonForVisit"`
		PreferredDate         string `json:"preferredDate,omitempty"`
		AdditionalInformation []QA   `json:"additionalInformation"`
	} `json:"consultation"`
	Metadata struct {
		CreatedAt string `json:"createdAt"`
		Status    string `json:"status"`
	} `json:"metadata"`
}

func buildPayload(rec Record, now time.Time) savePayload {
	var p savePayload
	p.Patient.Name = rec.Name
	p.Patient.Age = rec.Age
	p.Patient.Gender = rec.Gender
	p.Patient.PhoneNumber = rec.Identity
	p.Patient.RegistrationSource = "whatsapp"
	p.Consultation.DoctorCode = rec.DoctorCode
	p.Consultation.ReasonForVisit = rec.ReasonForVisit
	p.Consultation.PreferredDate = rec.ConsultationDate
	p.Consultation.AdditionalInformation = rec.TriageResponses
	if p.Consultation.AdditionalInformation == nil {
		p.Consultation.AdditionalInformation = []QA{}
	}
	p.Metadata.CreatedAt = now.UTC().Format(time.RFC3339)
	p.Metadata.Status = "pending"
	return p
}

// HTTPSink posts records to the scheduling backend's patients endpoint.
type HTTPSink struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPSink creates a sink against the given endpoint.
func NewHTTPSink(endpoint, apiKey string, timeout time.Duration) *HTTPSink {
	return &HTTPSink{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSink) Save(ctx context.Context, rec Record) (Result, error) {
	body, err := json.Marshal(buildPayload(rec, time.Now()))
	if err != nil {
		return Result{}, fmt.Errorf("scheduling: marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/patients", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("scheduling: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("scheduling: save record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Result{}, fmt.Errorf("scheduling: save record: unexpected status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("scheduling: decode response: %w", err)
	}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	return result, nil
}

// LogSink records completions to the log only. Used in development and as
// the fallback when no scheduling backend is configured.
type LogSink struct {
	logger *logging.Logger
}

func NewLogSink(logger *logging.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Save(_ context.Context, rec Record) (Result, error) {
	id := uuid.NewString()
	s.logger.Info("intake record saved",
		"record_id", id,
		"identity", rec.Identity,
		"doctor_code", rec.DoctorCode,
		"triage_answers", len(rec.TriageResponses),
	)
	return Result{ID: id}, nil
}
