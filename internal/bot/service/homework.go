// Package service contains the core logic of the homework bot: validating
// API answers, rendering status messages and running one poll iteration.
package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Known homework review statuses.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

// HomeworkVerdicts maps a review status to its human-readable verdict.
var HomeworkVerdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

var (
	ErrNotMap           = errors.New("API response is not a JSON object")
	ErrMissingKeys      = errors.New("API response lacks homeworks or current_date")
	ErrHomeworksNotList = errors.New("homeworks field is not a list")
	ErrInvalidResponse  = errors.New("homework record lacks required fields")
	ErrUnknownStatus    = errors.New("unknown homework status")
)

// CheckResponse validates the decoded API answer and returns the homeworks
// list unchanged. The list may be empty.
func CheckResponse(response any) ([]any, error) {
	body, ok := response.(map[string]any)
	if !ok {
		logrus.Errorf("API response has type %T, expected a JSON object", response)
		return nil, ErrNotMap
	}
	homeworksRaw, hasHomeworks := body["homeworks"]
	if _, hasDate := body["current_date"]; !hasHomeworks || !hasDate {
		logrus.Error("API response lacks required keys")
		return nil, ErrMissingKeys
	}
	homeworks, ok := homeworksRaw.([]any)
	if !ok {
		logrus.Errorf("homeworks field has type %T, expected a list", homeworksRaw)
		return nil, ErrHomeworksNotList
	}
	logrus.Debug("API response passed validation")
	return homeworks, nil
}

// ParseStatus renders the notification message for one homework record.
func ParseStatus(homework any) (string, error) {
	record, ok := homework.(map[string]any)
	if !ok {
		logrus.Errorf("homework record has type %T, expected a JSON object", homework)
		return "", ErrInvalidResponse
	}
	name, okName := record["homework_name"].(string)
	status, okStatus := record["status"].(string)
	if !okName || !okStatus {
		logrus.Error("homework record lacks homework_name or status")
		return "", ErrInvalidResponse
	}
	verdict, ok := HomeworkVerdicts[status]
	if !ok {
		logrus.Errorf("unexpected homework status: %s", status)
		return "", fmt.Errorf("%w: %s", ErrUnknownStatus, status)
	}
	logrus.Infof("Status message composed for %s", name)
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

// HomeworkAPI defines the interface for requesting homework statuses.
type HomeworkAPI interface {
	HomeworkStatuses(fromDate int64) (any, error)
}

// Notifier defines the interface for best-effort message delivery.
type Notifier interface {
	SendMessage(text string)
}

// HomeworkBot polls the homework API and relays status changes. It owns
// the from_date cursor; the cursor lives only in memory.
type HomeworkBot struct {
	API      HomeworkAPI
	Notifier Notifier
	fromDate int64
}

// NewHomeworkBot creates a HomeworkBot polling for statuses changed since fromDate.
func NewHomeworkBot(api HomeworkAPI, notifier Notifier, fromDate int64) *HomeworkBot {
	return &HomeworkBot{
		API:      api,
		Notifier: notifier,
		fromDate: fromDate,
	}
}

// ProcessOnce runs a single poll iteration. Every failure is logged and
// reported to the chat as a failure notice; none is propagated, so the
// caller always proceeds to the next tick. The cursor advances right
// after validation, before formatting, so a malformed homework entry
// never blocks cursor progress.
func (b *HomeworkBot) ProcessOnce() {
	response, err := b.API.HomeworkStatuses(b.fromDate)
	if err != nil {
		b.reportFailure(err)
		return
	}

	homeworks, err := CheckResponse(response)
	if err != nil {
		b.reportFailure(err)
		return
	}

	if date, ok := response.(map[string]any)["current_date"].(float64); ok {
		b.fromDate = int64(date)
	}

	if len(homeworks) == 0 {
		logrus.Debug("No new homework statuses")
		return
	}

	message, err := ParseStatus(homeworks[0])
	if err != nil {
		b.reportFailure(err)
		return
	}
	b.Notifier.SendMessage(message)
}

func (b *HomeworkBot) reportFailure(err error) {
	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	logrus.Error(message)
	b.Notifier.SendMessage(message)
}
