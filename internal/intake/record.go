// Package intake implements the patient intake conversation: the dialogue
// state machine, the per-identity context store, and the service that ties
// them to the messaging channel and the downstream collaborators.
package intake

import (
	"time"

	"github.com/oppd-health/whatsapp-intake/internal/i18n"
	"github.com/oppd-health/whatsapp-intake/internal/triage"
)

// State is the conversation's position in the dialogue state machine.
type State string

const (
	StateInitial            State = "INITIAL"
	StateLanguageSelection  State = "LANGUAGE_SELECTION"
	StateDoctorCode         State = "DOCTOR_CODE"
	StateConfirmDoctor      State = "CONFIRM_DOCTOR"
	StatePatientName        State = "PATIENT_NAME"
	StatePatientAge         State = "PATIENT_AGE"
	StatePatientGender      State = "PATIENT_GENDER"
	StateReasonForVisit     State = "REASON_FOR_VISIT"
	StateAnsweringQuestions State = "ANSWERING_QUESTIONS"
	StateConsultationDate   State = "CONSULTATION_DATE"
	StateAppointmentConfirm State = "APPOINTMENT_CONFIRMATION"
	StateCompleted          State = "COMPLETED"
)

var knownStates = map[State]struct{}{
	StateInitial: {}, StateLanguageSelection: {}, StateDoctorCode: {},
	StateConfirmDoctor: {}, StatePatientName: {}, StatePatientAge: {},
	StatePatientGender: {}, StateReasonForVisit: {}, StateAnsweringQuestions: {},
	StateConsultationDate: {}, StateAppointmentConfirm: {}, StateCompleted: {},
}

// Valid reports whether s is a defined state. An invalid state on a loaded
// record is an anomaly the engine recovers from, not a crash.
func (s State) Valid() bool {
	_, ok := knownStates[s]
	return ok
}

// Patient holds the structured fields collected during intake.
type Patient struct {
	Name             string `json:"name,omitempty"`
	Age              int    `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	ReasonForVisit   string `json:"reasonForVisit,omitempty"`
	DoctorCode       string `json:"doctorCode,omitempty"`
	DoctorName       string `json:"doctorName,omitempty"`
	ConsultationDate string `json:"consultationDate,omitempty"`
}

// QA is one answered triage question. Insertion order defines undo order.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Turn is one history entry, append-only, never read by transition logic.
type Turn struct {
	Speaker   string    `json:"speaker"` // "user" or "bot"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Record is the full per-identity conversation context.
//
// QuestionPlan caches generated triage questions by index so back-navigation
// re-asks exactly the question the user is undoing instead of trusting the
// generator to be deterministic.
type Record struct {
	Identity        string            `json:"identity"`
	State           State             `json:"state"`
	Language        i18n.Locale       `json:"language,omitempty"`
	Patient         Patient           `json:"patient"`
	TriageResponses []QA              `json:"triageResponses"`
	CurrentQuestion string            `json:"currentQuestion,omitempty"`
	CurrentOptions  []string          `json:"currentOptions,omitempty"`
	QuestionPlan    []triage.Question `json:"questionPlan,omitempty"`
	History         []Turn            `json:"history"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// NewRecord creates a fresh record for an identity in the initial state.
func NewRecord(identity string) *Record {
	now := time.Now().UTC()
	return &Record{
		Identity:        identity,
		State:           StateInitial,
		TriageResponses: []QA{},
		History:         []Turn{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Locale returns the selected language, falling back to the base locale
// until one is chosen.
func (r *Record) Locale() i18n.Locale {
	if r.Language != "" && i18n.Valid(r.Language) {
		return r.Language
	}
	return i18n.Default()
}

func (r *Record) appendHistory(speaker, text string) {
	r.History = append(r.History, Turn{
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
}

// Clone returns a deep copy so stores never hand out aliased slices.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.TriageResponses = append([]QA(nil), r.TriageResponses...)
	out.CurrentOptions = append([]string(nil), r.CurrentOptions...)
	out.History = append([]Turn(nil), r.History...)
	out.QuestionPlan = make([]triage.Question, len(r.QuestionPlan))
	for i, q := range r.QuestionPlan {
		out.QuestionPlan[i] = triage.Question{
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
		}
	}
	return &out
}
